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


package trifailable

import (
	"dirpx.dev/celest/celcore/errors"
	"dirpx.dev/celest/celcore/model"
)

// State is the outcome a TriFailable was constructed with.
//
// The zero value is deliberately not a defined State: every TriFailable
// built through Success, Warning or Failure reports one of the three
// constants below.
type State int

const (
	// StateSuccess marks an outcome that produced a result with no
	// reservations.
	StateSuccess State = iota + 1

	// StateWarning marks an outcome that produced a usable result together
	// with a reason the caller should know about (for example, a solution
	// that converged outside the requested tolerance).
	StateWarning

	// StateFailure marks an outcome that produced no result. A reason is
	// always attached.
	StateFailure
)

// String constants for State values used in parsing and human-facing output.
const (
	StateSuccessStr = "success"
	StateWarningStr = "warning"
	StateFailureStr = "failure"
)

// ParseState converts a textual representation into a State value.
//
//	"success", "Success", "SUCCESS" -> StateSuccess
//	"warning", "Warning", "WARNING" -> StateWarning
//	"failure", "Failure", "FAILURE" -> StateFailure
//
// Any other input yields a *errors.ParseError.
func ParseState(s string) (State, error) {
	switch s {
	case StateSuccessStr, "Success", "SUCCESS":
		return StateSuccess, nil
	case StateWarningStr, "Warning", "WARNING":
		return StateWarning, nil
	case StateFailureStr, "Failure", "FAILURE":
		return StateFailure, nil
	default:
		return 0, &errors.ParseError{Type: "State", Value: s}
	}
}

// String returns the lowercase name of the state, or "unknown".
func (s State) String() string {
	switch s {
	case StateSuccess:
		return StateSuccessStr
	case StateWarning:
		return StateWarningStr
	case StateFailure:
		return StateFailureStr
	default:
		return "unknown"
	}
}

// Valid reports whether the State value is one of the defined constants.
func (s State) Valid() bool {
	return s == StateSuccess || s == StateWarning || s == StateFailure
}

// HasResult reports whether a TriFailable in this state carries a result.
func (s State) HasResult() bool {
	return s == StateSuccess || s == StateWarning
}

// TypeName returns "State".
func (s State) TypeName() string {
	return "State"
}

// Redacted returns the same string as String.
func (s State) Redacted() string {
	return s.String()
}

// IsZero reports whether s is the zero value. Unlike most enums in celest,
// the zero State is invalid.
func (s State) IsZero() bool {
	return s == 0
}

// Equal reports whether other is a State or *State holding the same
// constant.
func (s State) Equal(other any) bool {
	switch v := other.(type) {
	case State:
		return s == v
	case *State:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError when s is not a defined
// constant.
func (s State) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "State",
			Reason: "invalid State value",
			Value:  int(s),
		}
	}
	return nil
}

// Compile-time check that State implements model.Model interface.
var _ model.Model = (*State)(nil)
