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


package angle

import (
	"dirpx.dev/celest/celcore/errors"
	"dirpx.dev/celest/celcore/model"
)

// Unit identifies the angular unit an Angle's value is expressed in.
//
// Only two units exist. Radian is the zero value, so the zero Angle is a
// valid angle of zero radians.
type Unit int

const (
	// Radian marks a value expressed in radians.
	Radian Unit = iota

	// Degree marks a value expressed in degrees (1/360 of a full turn).
	Degree
)

// String constants for Unit values used in parsing and human-facing output.
const (
	RadianStr = "radian"
	DegreeStr = "degree"
)

// ParseUnit converts a textual representation into a Unit value.
//
// The accepted vocabulary is:
//
//	"radian", "Radian", "RADIAN", "rad" -> Radian
//	"degree", "Degree", "DEGREE", "deg" -> Degree
//
// Any other input yields a *errors.ParseError carrying the original string.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case RadianStr, "Radian", "RADIAN", "rad":
		return Radian, nil
	case DegreeStr, "Degree", "DEGREE", "deg":
		return Degree, nil
	default:
		return Radian, &errors.ParseError{Type: "Unit", Value: s}
	}
}

// String returns "radian" or "degree", or "unknown" for a value that is not
// one of the defined constants.
func (u Unit) String() string {
	switch u {
	case Radian:
		return RadianStr
	case Degree:
		return DegreeStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Unit value is one of the defined constants.
//
// Only a numeric cast can produce an invalid Unit; FromDegree and FromRadian
// never do.
func (u Unit) Valid() bool {
	return u == Radian || u == Degree
}

// TypeName returns "Unit".
func (u Unit) TypeName() string {
	return "Unit"
}

// Redacted returns the same string as String; units carry nothing sensitive.
func (u Unit) Redacted() string {
	return u.String()
}

// IsZero reports whether u is Radian, the zero value.
//
// The zero value is a valid Unit, so IsZero returning true does not indicate
// an error condition.
func (u Unit) IsZero() bool {
	return u == Radian
}

// Equal reports whether other is a Unit or *Unit holding the same constant.
func (u Unit) Equal(other any) bool {
	switch v := other.(type) {
	case Unit:
		return u == v
	case *Unit:
		if v == nil {
			return false
		}
		return u == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError when u is not a defined
// constant, nil otherwise.
func (u Unit) Validate() error {
	if !u.Valid() {
		return &errors.ValidationError{
			Type:   "Unit",
			Reason: "invalid Unit value",
			Value:  int(u),
		}
	}
	return nil
}

// Compile-time check that Unit implements model.Model interface.
var _ model.Model = (*Unit)(nil)
