/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package trifailable provides TriFailable, an outcome container with three
// states instead of the usual two: success, warning and failure.
//
// A success carries a result. A warning carries a result and a reason. A
// failure carries only a reason. The three states are three distinct types
// (Succeeded, Warned, Failed) behind the sealed TriFailable interface, so a
// failure holding a result cannot be expressed at all:
//
//	tf, err := trifailable.Warning(orbit, "eccentricity near 1, solution unstable")
//	if err != nil {
//	    return err // an argument was missing; no TriFailable was built
//	}
//
//	switch v := tf.(type) {
//	case trifailable.Succeeded[Orbit]:
//	    use(v.Value())
//	case trifailable.Warned[Orbit]:
//	    log.Warn(v.Reason())
//	    use(v.Value())
//	case trifailable.Failed[Orbit]:
//	    return fmt.Errorf("propagation failed: %s", v.Reason())
//	}
//
// Callers that do not switch on the type use the accessor methods instead.
// Result is the only fallible one; the reason accessors return "" when the
// state carries no such reason.
package trifailable

import (
	"fmt"
	"reflect"

	"dirpx.dev/celest/celcore/errors"
	"dirpx.dev/celest/celcore/model"
	"dirpx.dev/rxmerr"
)

// redactedResult replaces the carried result in Redacted output.
const redactedResult = "[REDACTED]"

// TriFailable is the outcome of an operation that can succeed, succeed with
// a warning, or fail.
//
// The interface is sealed: Succeeded, Warned and Failed are its only
// implementations. Exactly one of IsSuccess, IsWarning and IsFailure
// returns true for any value, and the state never changes after
// construction.
type TriFailable[T any] interface {
	model.Model

	// State returns the state the value was constructed with.
	State() State

	IsSuccess() bool
	IsWarning() bool
	IsFailure() bool

	// Result returns the carried result. It returns a *errors.NoResultError
	// (matching errors.ErrNoResult) for a failure.
	Result() (T, error)

	// WarningReason returns the warning reason, or "" unless the state is
	// StateWarning.
	WarningReason() string

	// FailureReason returns the failure reason, or "" unless the state is
	// StateFailure.
	FailureReason() string

	sealed()
}

// Success returns a successful TriFailable holding result.
//
// A nil result (nil pointer, interface, map, slice, channel or func) is
// rejected with a *errors.ArgumentError and no TriFailable is returned.
func Success[T any](result T) (TriFailable[T], error) {
	if isNil(result) {
		return nil, &errors.ArgumentError{Func: "trifailable.Success", Arg: "result", Reason: "must not be nil"}
	}
	return Succeeded[T]{result: result}, nil
}

// Warning returns a TriFailable holding result together with a warning
// reason.
//
// Both arguments are checked before anything is built. A nil result and an
// empty reason are each reported as a *errors.ArgumentError; when both are
// absent the two errors are combined.
func Warning[T any](result T, reason string) (TriFailable[T], error) {
	c := rxmerr.NewCollector()
	if isNil(result) {
		c.Append(&errors.ArgumentError{Func: "trifailable.Warning", Arg: "result", Reason: "must not be nil"})
	}
	if reason == "" {
		c.Append(&errors.ArgumentError{Func: "trifailable.Warning", Arg: "reason", Reason: "must not be empty"})
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return Warned[T]{result: result, reason: reason}, nil
}

// Failure returns a failed TriFailable carrying reason and no result.
//
// An empty reason is rejected with a *errors.ArgumentError.
func Failure[T any](reason string) (TriFailable[T], error) {
	if reason == "" {
		return nil, &errors.ArgumentError{Func: "trifailable.Failure", Arg: "reason", Reason: "must not be empty"}
	}
	return Failed[T]{reason: reason}, nil
}

// MustSuccess is like Success but panics if result is nil.
//
// It is intended for tests and package-level initialization only.
func MustSuccess[T any](result T) TriFailable[T] {
	tf, err := Success(result)
	if err != nil {
		panic(err)
	}
	return tf
}

// MustWarning is like Warning but panics if an argument is absent.
func MustWarning[T any](result T, reason string) TriFailable[T] {
	tf, err := Warning(result, reason)
	if err != nil {
		panic(err)
	}
	return tf
}

// MustFailure is like Failure but panics if reason is empty.
func MustFailure[T any](reason string) TriFailable[T] {
	tf, err := Failure[T](reason)
	if err != nil {
		panic(err)
	}
	return tf
}

// Succeeded is the success state of a TriFailable. Build it with Success.
type Succeeded[T any] struct {
	result T
}

// Value returns the result. It cannot fail.
func (s Succeeded[T]) Value() T { return s.result }

func (s Succeeded[T]) State() State    { return StateSuccess }
func (s Succeeded[T]) IsSuccess() bool { return true }
func (s Succeeded[T]) IsWarning() bool { return false }
func (s Succeeded[T]) IsFailure() bool { return false }

func (s Succeeded[T]) Result() (T, error) { return s.result, nil }

func (s Succeeded[T]) WarningReason() string { return "" }
func (s Succeeded[T]) FailureReason() string { return "" }

// TypeName returns "Succeeded".
func (s Succeeded[T]) TypeName() string { return "Succeeded" }

// IsZero reports whether the result is its type's zero value. A zero
// Succeeded of a pointer-like T is invalid; for other T it is not.
func (s Succeeded[T]) IsZero() bool { return isZero(s.result) }

// Validate rejects a Succeeded that was not built by Success and holds a
// nil result.
func (s Succeeded[T]) Validate() error {
	if isNil(s.result) {
		return &errors.ValidationError{Type: "Succeeded", Field: "Result", Reason: "must not be nil"}
	}
	return nil
}

// String returns e.g. "Success{Result:42}".
func (s Succeeded[T]) String() string {
	return "Success{Result:" + fmt.Sprint(s.result) + "}"
}

// Redacted returns "Success{Result:[REDACTED]}".
func (s Succeeded[T]) Redacted() string {
	return "Success{Result:" + redactedResult + "}"
}

func (Succeeded[T]) sealed() {}

// Warned is the warning state of a TriFailable. Build it with Warning.
type Warned[T any] struct {
	result T
	reason string
}

// Value returns the result. It cannot fail.
func (w Warned[T]) Value() T { return w.result }

// Reason returns the warning reason.
func (w Warned[T]) Reason() string { return w.reason }

func (w Warned[T]) State() State    { return StateWarning }
func (w Warned[T]) IsSuccess() bool { return false }
func (w Warned[T]) IsWarning() bool { return true }
func (w Warned[T]) IsFailure() bool { return false }

func (w Warned[T]) Result() (T, error) { return w.result, nil }

func (w Warned[T]) WarningReason() string { return w.reason }
func (w Warned[T]) FailureReason() string { return "" }

// TypeName returns "Warned".
func (w Warned[T]) TypeName() string { return "Warned" }

// IsZero reports whether both the result and the reason are zero.
func (w Warned[T]) IsZero() bool { return w.reason == "" && isZero(w.result) }

// Validate rejects a Warned that was not built by Warning and lacks its
// result or its reason.
func (w Warned[T]) Validate() error {
	if isNil(w.result) {
		return &errors.ValidationError{Type: "Warned", Field: "Result", Reason: "must not be nil"}
	}
	if w.reason == "" {
		return &errors.ValidationError{Type: "Warned", Field: "Reason", Reason: "must not be empty"}
	}
	return nil
}

// String returns e.g. "Warning{Result:42, Reason:low signal}".
func (w Warned[T]) String() string {
	return "Warning{Result:" + fmt.Sprint(w.result) + ", Reason:" + w.reason + "}"
}

// Redacted hides the result but keeps the reason.
func (w Warned[T]) Redacted() string {
	return "Warning{Result:" + redactedResult + ", Reason:" + w.reason + "}"
}

func (Warned[T]) sealed() {}

// Failed is the failure state of a TriFailable. Build it with Failure.
//
// Failed has no Value method; the only way to ask it for a result is
// Result, which returns a *errors.NoResultError.
type Failed[T any] struct {
	reason string
}

// Reason returns the failure reason.
func (f Failed[T]) Reason() string { return f.reason }

func (f Failed[T]) State() State    { return StateFailure }
func (f Failed[T]) IsSuccess() bool { return false }
func (f Failed[T]) IsWarning() bool { return false }
func (f Failed[T]) IsFailure() bool { return true }

// Result always fails: a failure never stored a result.
func (f Failed[T]) Result() (T, error) {
	var zero T
	return zero, &errors.NoResultError{Type: "Failed", State: StateFailureStr}
}

func (f Failed[T]) WarningReason() string { return "" }
func (f Failed[T]) FailureReason() string { return f.reason }

// TypeName returns "Failed".
func (f Failed[T]) TypeName() string { return "Failed" }

// IsZero reports whether the reason is empty.
func (f Failed[T]) IsZero() bool { return f.reason == "" }

// Validate rejects a Failed that was not built by Failure and has no reason.
func (f Failed[T]) Validate() error {
	if f.reason == "" {
		return &errors.ValidationError{Type: "Failed", Field: "Reason", Reason: "must not be empty"}
	}
	return nil
}

// String returns e.g. "Failure{Reason:no convergence}".
func (f Failed[T]) String() string {
	return "Failure{Reason:" + f.reason + "}"
}

// Redacted returns the same string as String; a failure carries no result.
func (f Failed[T]) Redacted() string {
	return f.String()
}

func (Failed[T]) sealed() {}

// isNil reports whether v is a nil pointer, interface, map, slice, channel
// or func.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func isZero(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.IsZero()
}

// Compile-time checks that every state implements TriFailable.
var (
	_ TriFailable[int] = Succeeded[int]{}
	_ TriFailable[int] = Warned[int]{}
	_ TriFailable[int] = Failed[int]{}
)
