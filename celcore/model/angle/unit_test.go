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
	stderrors "errors"
	"testing"

	"dirpx.dev/celest/celcore/errors"
)

func TestUnit_String(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{"Radian", Radian, "radian"},
		{"Degree", Degree, "degree"},
		{"Unknown", Unit(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.String(); got != tt.want {
				t.Errorf("Unit.String() = %v, want %v", got, tt.want)
			}
			if got := tt.unit.Redacted(); got != tt.want {
				t.Errorf("Unit.Redacted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		// Valid inputs
		{"radian lowercase", "radian", Radian, false},
		{"radian title", "Radian", Radian, false},
		{"radian uppercase", "RADIAN", Radian, false},
		{"radian short", "rad", Radian, false},
		{"degree lowercase", "degree", Degree, false},
		{"degree title", "Degree", Degree, false},
		{"degree uppercase", "DEGREE", Degree, false},
		{"degree short", "deg", Degree, false},

		// Invalid inputs
		{"empty", "", Radian, true},
		{"gradian", "gradian", Radian, true},
		{"plural", "degrees", Radian, true},
		{"number", "1", Radian, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseUnit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("ParseUnit() error type = %T, want *errors.ParseError", err)
				} else if pe.Value != tt.input {
					t.Errorf("ParseError.Value = %q, want %q", pe.Value, tt.input)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseUnit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnit_Valid(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want bool
	}{
		{"Radian", Radian, true},
		{"Degree", Degree, true},
		{"Invalid negative", Unit(-1), false},
		{"Invalid positive", Unit(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Valid(); got != tt.want {
				t.Errorf("Unit.Valid() = %v, want %v", got, tt.want)
			}
			if err := tt.unit.Validate(); (err == nil) != tt.want {
				t.Errorf("Unit.Validate() error = %v, want valid %v", err, tt.want)
			}
		})
	}
}

func TestUnit_TypeName(t *testing.T) {
	var u Unit
	if got := u.TypeName(); got != "Unit" {
		t.Errorf("TypeName() = %v, want Unit", got)
	}
}

func TestUnit_IsZero(t *testing.T) {
	if !Radian.IsZero() {
		t.Error("Radian.IsZero() = false, want true")
	}
	if Degree.IsZero() {
		t.Error("Degree.IsZero() = true, want false")
	}
}

func TestUnit_Equal(t *testing.T) {
	tests := []struct {
		name string
		u1   Unit
		u2   any
		want bool
	}{
		{"equal Radian", Radian, Radian, true},
		{"equal Degree", Degree, Degree, true},
		{"different values", Radian, Degree, false},
		{"pointer equal", Degree, func() *Unit { u := Degree; return &u }(), true},
		{"pointer different", Degree, func() *Unit { u := Radian; return &u }(), false},
		{"nil pointer", Radian, (*Unit)(nil), false},
		{"different type", Degree, "degree", false},
		{"different type int", Radian, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u1.Equal(tt.u2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
