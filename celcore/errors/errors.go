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


// Package errors provides reusable error types for celest value types.
//
// This package defines the error types shared by every celest model package
// (angle, trifailable) when parsing enum-like values, validating constructed
// values, rejecting missing constructor arguments and refusing access to a
// result that was never stored. Centralizing them gives the whole celest
// surface one consistent error handling story.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from constructors, parsers and Validate methods,
//   - easy to recognize via errors.As or errors.Is,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//     Use this when implementing ParseXxx helpers that accept textual input.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
//
//   - ArgumentError
//     Returned by constructors when a required argument is absent. The
//     constructor produces no value in that case. Matches ErrInvalidArgument.
//
//   - NoResultError
//     Returned when a result is requested from a value that never stored
//     one (for example, a failed TriFailable). Matches ErrNoResult.
//
// # Usage
//
//	tf, err := trifailable.Success[*Orbit](nil)
//	if errors.Is(err, celerrors.ErrInvalidArgument) {
//	    // handle the rejected construction at the call site
//	}
//
//	var ae *celerrors.ArgumentError
//	if errors.As(err, &ae) {
//	    fmt.Println(ae.Arg) // "result"
//	}
package errors

import stderrors "errors"

var (
	// ErrInvalidArgument is the sentinel matched by every *ArgumentError.
	//
	// Callers that only care about the error kind SHOULD use
	// errors.Is(err, ErrInvalidArgument) instead of asserting the concrete
	// type.
	ErrInvalidArgument = stderrors.New("celest: invalid argument")

	// ErrNoResult is the sentinel matched by every *NoResultError.
	ErrNoResult = stderrors.New("celest: no result present")
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Unit",
// "State"), and Value contains the exact string that could not be
// interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance to users or to translate errors into friendlier messages.
//
// # Example
//
//	func ParseUnit(s string) (Unit, error) {
//	    switch s {
//	    case "radian":
//	        return Radian, nil
//	    case "degree":
//	        return Degree, nil
//	    default:
//	        // Returned error will format as:
//	        // "celest: invalid Unit value: <value>"
//	        return Radian, &errors.ParseError{Type: "Unit", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Unit").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"celest: invalid {Type} value: {Value}"
//
// For example:
//
//	"celest: invalid Unit value: gradian"
func (e *ParseError) Error() string {
	return "celest: invalid " + e.Type + " value: " + e.Value
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Angle", "Failure"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the validation
// failure, and Value optionally contains the problematic value.
//
// # Example
//
//	func (a Angle) Validate() error {
//	    if !a.unit.Valid() {
//	        return &errors.ValidationError{
//	            Type:   "Angle",
//	            Field:  "Unit",
//	            Reason: "invalid Unit value",
//	            Value:  int(a.unit),
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"celest: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"celest: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "celest: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "celest: invalid " + e.Type + ": " + e.Reason
}

// ArgumentError is returned by a constructor when a required argument is
// absent.
//
// Func names the constructor that rejected the call (for example,
// "trifailable.Warning"), Arg names the offending parameter and Reason says
// what was wrong with it. A constructor that returns an ArgumentError MUST
// NOT also return a usable value; the zero value it returns alongside the
// error carries no meaning.
type ArgumentError struct {
	// Func is the qualified name of the constructor.
	Func string

	// Arg is the name of the rejected parameter.
	Arg string

	// Reason is a short explanation, for example "must not be nil".
	Reason string
}

// Error implements the error interface for ArgumentError.
//
// The error message format is:
//
//	"celest: {Func}: invalid argument {Arg}: {Reason}"
func (e *ArgumentError) Error() string {
	return "celest: " + e.Func + ": invalid argument " + e.Arg + ": " + e.Reason
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NoResultError is returned when a result is requested from a value that
// never stored one.
//
// Type is the logical type that was asked (for example, "Failure") and State
// is the textual state it was in when the request was made.
type NoResultError struct {
	// Type is the logical name of the type that holds no result.
	Type string

	// State is the textual state of the value, for example "failure".
	State string
}

// Error implements the error interface for NoResultError.
//
// The error message format is:
//
//	"celest: no result present in {Type} ({State})"
func (e *NoResultError) Error() string {
	return "celest: no result present in " + e.Type + " (" + e.State + ")"
}

// Is reports whether target is ErrNoResult.
func (e *NoResultError) Is(target error) bool {
	return target == ErrNoResult
}
