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


// Package model defines the core contracts that every celest value type
// implements so that angles, outcome containers and the types layered on top
// of them behave consistently across the library.
//
// Every value type (such as angle.Angle, angle.Unit, trifailable.State and
// the trifailable variants) implements the Model interface, which combines
// Validatable, Loggable, Identifiable and ZeroCheckable. The generic helpers
// in this package (ValidateAll, FilterZero, MustValidate, SafeString) rely on
// that contract and fail at compile time for types that do not implement it.
//
// celest value types are immutable after construction. Their fields are
// unexported and set only by constructors, so instances are naturally safe
// for concurrent use without synchronization. None of the contracts below
// perform I/O, logging or any other side effect.
//
// celest value types are in-memory values only. They deliberately carry no
// JSON or YAML encoding; persistence belongs to the callers that embed them.
package model

// Model is the root interface combining all fundamental contracts required
// for celest value types: validation of invariants, safe and full string
// representations for logs, a canonical type name, and zero-value
// detection.
//
// Implementations MUST satisfy all embedded interfaces. Methods defined on
// Model MUST NOT mutate the receiver.
//
// Example implementation:
//
//	type Distance struct {
//	    meters float64
//	}
//
//	func (d Distance) Validate() error {
//	    if d.meters < 0 {
//	        return &errors.ValidationError{Type: "Distance", Reason: "negative"}
//	    }
//	    return nil
//	}
//
//	func (d Distance) TypeName() string { return "Distance" }
//	func (d Distance) IsZero() bool     { return d.meters == 0 }
//	func (d Distance) Redacted() string { return d.String() }
//	func (d Distance) String() string   { return "Distance{Meters:...}" }
//
//	var _ model.Model = (*Distance)(nil) // Compile-time check
type Model interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Constructors in celest already refuse to build invalid values, so Validate
// mostly guards against values assembled some other way: the zero value of
// a struct whose zero value is not meaningful, or an enum produced by a
// numeric cast. Validate MUST return nil if and only if every invariant of
// the value holds, and otherwise a descriptive error, preferably a
// *errors.ValidationError naming the type and field.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver and MUST NOT have side effects such as logging.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logs. It MUST hide values the type cannot vouch for (for example, an
// arbitrary result carried by a generic container) while keeping enough
// structure to correlate log entries. Types whose fields are never sensitive
// (angles, enum constants) MAY return the same text as String.
//
// The String method returns a full, human-readable representation intended
// for debugging, test failures and diagnostics. It carries no parsing
// contract and MUST NOT be re-parsed.
//
// Both methods MUST be fast, MUST NOT mutate the receiver and MUST be safe
// to call concurrently.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance. It MAY
	// include data that Redacted hides.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The name MUST be constant for a given type, SHOULD be CamelCase and MUST
// NOT include a package prefix (for example, "Angle", "Unit", "Succeeded").
// Type names appear in error messages produced by ValidateAll and
// MustValidate.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. It SHOULD
	// return a string constant.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// IsZero MUST return true if and only if every field holds its type's zero
// value. Whether the zero value is also valid is type-specific: the zero
// angle.Angle is a valid zero radians, while a zero trifailable.Failed is
// invalid because it carries no reason.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for equality.
// This interface is optional but recommended for value types that require
// equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive (x.Equal(x) is always true), symmetric
// (x.Equal(y) implies y.Equal(x)), transitive and consistent. For types that
// hold floating point numbers, reflexivity means NaN values MUST compare
// equal to themselves, which plain == does not guarantee.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Hashable defines the contract for Comparable types that also expose a hash
// code, for callers that index values in hash-based structures keyed by
// something other than Go's built-in == (which treats NaN as unequal to
// itself).
//
// Hash MUST be consistent with Equal: if a.Equal(b) then
// a.Hash() == b.Hash(). The converse is not required.
type Hashable[T any] interface {
	Comparable[T]

	// Hash returns a hash code consistent with Equal.
	Hash() uint64
}
