/*
   Copyright 2025 The DIRPX Authors.

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

package table

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/signature"
	uref "dirpx.dev/mdx/utils/reflect"
)

var (
	// ErrNilImpl is returned when a nil implementation handle is provided.
	ErrNilImpl = errors.New("mdx(table): nil implementation provided")
	// ErrConflictingRegistration indicates an attempt to register an
	// implementation for a concrete signature that is already taken.
	ErrConflictingRegistration = errors.New("mdx(table): conflicting signature registration")
	// ErrNoMatch is returned when no registered signature accepts the
	// argument types of a resolution call.
	ErrNoMatch = errors.New("mdx(table): no implementation for argument types")
)

// New constructs an empty Table whose subtype relation follows cfg.
func New(cfg apis.Config) apis.Table {
	return &table{cfg: cfg}
}

// table keeps its entries as a slice linearizing the strict partial
// "is-more-specific-than" order: if X.Less(Y) then X appears before Y.
// The relation is not total, so the order between mutually unordered
// entries is insertion order, and Resolve's first-match scan silently
// prefers the earlier-inserted of two unordered candidates. Tests pin
// that tie-break; it must stay first-inserted-wins, not a rejection or
// a recency preference.
type table struct {
	// cfg is the configuration driving the subtype relation.
	cfg apis.Config
	// entries is ordered most-specific-first among comparable signatures.
	entries []entry
}

// entry is a single (signature, implementation) pair.
type entry struct {
	sig  signature.Signature
	impl any
}

// Register expands specs and inserts every produced signature, mapping
// each to impl. The call is atomic: a malformed spec or a conflict with
// an existing signature inserts nothing.
func (t *table) Register(specs []apis.ParamSpec, impl any) error {
	if impl == nil {
		return ErrNilImpl
	}

	sigs, err := signature.Expand(specs, t.cfg)
	if err != nil {
		return err
	}

	// Check the whole batch before touching the table. Batch members
	// are pairwise distinct by construction (unions deduplicate), so
	// only existing entries can conflict.
	for _, sig := range sigs {
		for _, e := range t.entries {
			if sig.Equal(e.sig) {
				return fmt.Errorf("%w: %s maps to both %v and %v",
					ErrConflictingRegistration, sig, e.impl, impl)
			}
		}
	}

	for _, sig := range sigs {
		t.insert(sig, impl)
	}
	return nil
}

// insert places sig immediately before the first entry it is strictly
// more specific than, or appends it. The relative order of existing
// entries is never disturbed, which keeps the sequence a valid
// linearization of the partial order. A sort would not: sorting
// assumes a total comparator.
func (t *table) insert(sig signature.Signature, impl any) {
	for i, e := range t.entries {
		if sig.Less(e.sig, t.cfg) {
			t.entries = append(t.entries, entry{})
			copy(t.entries[i+1:], t.entries[i:])
			t.entries[i] = entry{sig: sig, impl: impl}
			return
		}
	}
	t.entries = append(t.entries, entry{sig: sig, impl: impl})
}

// Resolve scans entries in stored order and returns the implementation
// of the first signature accepting args: equal arity, and each declared
// type a supertype of (or equal to) the corresponding runtime type.
// A nil element of args stands for an untyped nil argument.
func (t *table) Resolve(args []reflect.Type) (any, error) {
	for _, e := range t.entries {
		if e.sig.Arity() != len(args) {
			continue
		}
		if t.accepts(e.sig, args) {
			return e.impl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMatch, signature.Signature(args))
}

// accepts reports whether every runtime argument type satisfies the
// corresponding declared type.
func (t *table) accepts(sig signature.Signature, args []reflect.Type) bool {
	for i, declared := range sig {
		if !uref.Subtype(args[i], declared, t.cfg) {
			return false
		}
	}
	return true
}

// Entries returns an ordered snapshot for diagnostics/docs.
func (t *table) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, len(t.entries))
	for _, e := range t.entries {
		types := make([]reflect.Type, len(e.sig))
		copy(types, e.sig)
		entries = append(entries, apis.Entry{Types: types, Impl: e.impl})
	}
	return entries
}

// Count returns the number of concrete signatures registered.
func (t *table) Count() int {
	return len(t.entries)
}
