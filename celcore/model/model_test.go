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


package model_test

import (
	"math"
	"strings"
	"testing"

	"dirpx.dev/celest/celcore/model"
	"dirpx.dev/celest/celcore/model/angle"
	"dirpx.dev/celest/celcore/model/trifailable"
)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name     string
		models   []model.Model
		wantErr  bool
		contains []string
	}{
		{
			name:    "empty slice",
			models:  nil,
			wantErr: false,
		},
		{
			name: "all valid",
			models: []model.Model{
				angle.FromDegree(90),
				angle.Degree,
				trifailable.StateWarning,
				trifailable.MustFailure[int]("diverged"),
			},
			wantErr: false,
		},
		{
			name: "invalid entries are all reported",
			models: []model.Model{
				angle.FromRadian(1),
				angle.Unit(7),
				trifailable.Failed[int]{},
				trifailable.State(0),
			},
			wantErr:  true,
			contains: []string{"model[1] (Unit)", "model[2] (Failed)", "model[3] (State)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.contains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("ValidateAll() error = %q, want it to contain %q", err.Error(), want)
				}
			}
		})
	}
}

func TestFilterZero(t *testing.T) {
	angles := []angle.Angle{
		{},
		angle.FromDegree(0),
		angle.FromRadian(math.Pi),
		angle.FromRadian(0),
	}

	got := model.FilterZero(angles)
	if len(got) != 2 {
		t.Fatalf("FilterZero() returned %d angles, want 2: %v", len(got), got)
	}
	if !got[0].Equal(angle.FromDegree(0)) || !got[1].Equal(angle.FromRadian(math.Pi)) {
		t.Errorf("FilterZero() = %v", got)
	}

	if empty := model.FilterZero[angle.Angle](nil); empty == nil || len(empty) != 0 {
		t.Errorf("FilterZero(nil) = %#v, want empty non-nil slice", empty)
	}
}

func TestMustValidate(t *testing.T) {
	a := model.MustValidate(angle.FromDegree(45))
	if a.ToDegree() != 45 {
		t.Errorf("MustValidate() = %v, want 45 degrees", a)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate() did not panic on invalid model")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "Unit") {
			t.Errorf("panic = %v, want message naming Unit", r)
		}
	}()
	model.MustValidate(angle.Unit(42))
}

func TestSafeString(t *testing.T) {
	tf := trifailable.MustWarning("secret orbit", "low precision")

	safe := model.SafeString(tf, false)
	if strings.Contains(safe, "secret orbit") {
		t.Errorf("SafeString(unsafe=false) = %q, must not contain the result", safe)
	}
	if !strings.Contains(safe, "[REDACTED]") || !strings.Contains(safe, "low precision") {
		t.Errorf("SafeString(unsafe=false) = %q, want redacted result and visible reason", safe)
	}

	full := model.SafeString(tf, true)
	if !strings.Contains(full, "secret orbit") {
		t.Errorf("SafeString(unsafe=true) = %q, want full result", full)
	}

	a := angle.FromDegree(10)
	if model.SafeString(a, false) != model.SafeString(a, true) {
		t.Error("SafeString() for Angle should not depend on unsafe")
	}
}
