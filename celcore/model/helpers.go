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


package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first failure.
//
// Each failing model's error is wrapped with its zero-based position in the
// slice and its TypeName, then aggregated through an rxmerr.Collector into a
// single combined error. If every model is valid (or the slice is empty),
// ValidateAll returns nil. The whole slice is always processed.
//
// Example usage for checking a batch of observation angles:
//
//	angles := []angle.Angle{alt, az, hourAngle}
//	if err := ValidateAll(angles); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which IsZero
// reports false.
//
// The returned slice never shares a backing array with the input. For an
// empty or nil input, or when every model is zero, the result is an empty
// non-nil slice. FilterZero does not validate models.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails, returning
// the model unchanged otherwise.
//
// Callers MUST only use MustValidate where an invalid model is a programming
// error: test setup, package-level variable initialization, or constants
// computed at startup. It MUST NOT be used on values derived from user
// input.
//
//	var zenith = MustValidate(angle.FromDegree(90))
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns Redacted() by default, or String() when unsafe is true.
//
// It gives logging call sites a single place where the choice between the
// safe and the full representation is explicit:
//
//	log.Info("computed", "outcome", SafeString(outcome, false))
//	log.Debug("computed", "outcome", SafeString(outcome, true)) // full result
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}
