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


// Package angle provides Angle, an angular measure coupled with its unit.
//
// An Angle remembers the unit it was built with and converts only when asked
// for the other unit, so reading a value back in its own unit is always
// exact:
//
//	a := angle.FromDegree(23.4392911)
//	a.ToDegree() // 23.4392911, bit-identical
//	a.ToRadian() // 0.4090928040284035
//
// Values are not normalized to [0, 360) or [0, 2π) and are not range
// checked. NaN and infinities are accepted and propagate through the
// conversions under IEEE-754 rules.
package angle

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"

	"dirpx.dev/celest/celcore/errors"
	"dirpx.dev/celest/celcore/model"
)

// Angle is an immutable angular measure: a float64 magnitude tagged with the
// Unit it is expressed in.
//
// The fields are unexported and only set by FromDegree, FromRadian and New,
// so an Angle never changes after construction and may be copied and shared
// freely, including across goroutines. The zero value is 0 radians.
//
// Angle is comparable with ==, but == follows IEEE-754 and therefore treats
// an Angle holding NaN as unequal to itself. Use Equal when that matters.
type Angle struct {
	value float64
	unit  Unit
}

// FromDegree returns an Angle of value degrees.
func FromDegree(value float64) Angle {
	return Angle{value: value, unit: Degree}
}

// FromRadian returns an Angle of value radians.
func FromRadian(value float64) Angle {
	return Angle{value: value, unit: Radian}
}

// New returns an Angle of value expressed in unit.
//
// It is meant for callers that carry the unit as data (for example, after
// ParseUnit). An invalid unit yields a *errors.ValidationError and the zero
// Angle.
func New(value float64, unit Unit) (Angle, error) {
	if !unit.Valid() {
		return Angle{}, &errors.ValidationError{
			Type:   "Angle",
			Field:  "Unit",
			Reason: "invalid Unit value",
			Value:  int(unit),
		}
	}
	return Angle{value: value, unit: unit}, nil
}

// Value returns the stored magnitude in the stored unit.
func (a Angle) Value() float64 {
	return a.value
}

// Unit returns the unit the Angle was constructed with.
func (a Angle) Unit() Unit {
	return a.unit
}

// ToDegree returns the measure in degrees.
//
// An Angle built in degrees returns its stored value unchanged; no
// round trip through radians happens.
func (a Angle) ToDegree() float64 {
	if a.unit == Degree {
		return a.value
	}
	return a.value * 180 / math.Pi
}

// ToRadian returns the measure in radians.
//
// An Angle built in radians returns its stored value unchanged.
func (a Angle) ToRadian() float64 {
	if a.unit == Radian {
		return a.value
	}
	return a.value * math.Pi / 180
}

// Equal reports whether a and other store the same value in the same unit.
//
// This is equality of the stored representation, not of the angular
// quantity: FromDegree(180) and FromRadian(math.Pi) are not equal. Values
// are compared by bit pattern, so +0 and -0 differ, and every NaN equals
// every other NaN.
func (a Angle) Equal(other Angle) bool {
	return a.unit == other.unit && canonicalBits(a.value) == canonicalBits(other.value)
}

// Hash returns an FNV-1a hash of the stored value and unit.
//
// It is consistent with Equal and stable across processes.
func (a Angle) Hash() uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], canonicalBits(a.value))
	buf[8] = byte(a.unit)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// canonicalBits returns the IEEE-754 bits of v, collapsing every NaN payload
// onto a single one.
func canonicalBits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaN
	}
	return math.Float64bits(v)
}

var canonicalNaN = math.Float64bits(math.NaN())

// String returns a debug representation such as
// "Angle{Value:180, Unit:degree}". It is not meant to be parsed.
func (a Angle) String() string {
	return "Angle{Value:" + strconv.FormatFloat(a.value, 'g', -1, 64) + ", Unit:" + a.unit.String() + "}"
}

// Redacted returns the same string as String; angles carry nothing
// sensitive.
func (a Angle) Redacted() string {
	return a.String()
}

// TypeName returns "Angle".
func (a Angle) TypeName() string {
	return "Angle"
}

// IsZero reports whether a is the zero value (+0 radians).
//
// The zero Angle is valid. -0 radians is not considered zero, matching
// Equal.
func (a Angle) IsZero() bool {
	return a.Equal(Angle{})
}

// Validate checks that the unit is a defined constant. The value itself is
// never rejected: any float64, including NaN and infinities, is a valid
// magnitude.
func (a Angle) Validate() error {
	if !a.unit.Valid() {
		return &errors.ValidationError{
			Type:   "Angle",
			Field:  "Unit",
			Reason: "invalid Unit value",
			Value:  int(a.unit),
		}
	}
	return nil
}

// Compile-time checks that Angle implements the model contracts.
var (
	_ model.Model           = (*Angle)(nil)
	_ model.Hashable[Angle] = Angle{}
)
