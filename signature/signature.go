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

package signature

import (
	"reflect"
	"strings"

	"dirpx.dev/mdx/apis"
	uref "dirpx.dev/mdx/utils/reflect"
)

// Signature is an ordered tuple of concrete types, one per parameter
// position. Its arity is fixed at creation; signatures of different
// arities are never equal and never ordered.
type Signature []reflect.Type

// Arity returns the number of parameter positions.
func (s Signature) Arity() int {
	return len(s)
}

// Equal reports pointwise type identity. Always false across arities.
func (s Signature) Equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !uref.Identical(s[i], o[i]) {
			return false
		}
	}
	return true
}

// Supersedes reports whether s is at least as specific as o in every
// position: for each i, s[i] is a subtype of (or equal to) o[i].
// Reflexive. Arity mismatch is a "never related" case, not a failure.
func (s Signature) Supersedes(o Signature, cfg apis.Config) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !uref.Subtype(s[i], o[i], cfg) {
			return false
		}
	}
	return true
}

// Less reports whether s is strictly more specific than o: s supersedes
// o and o does not supersede s. This is a strict partial order, not a
// total one; two unequal same-arity signatures may be mutually
// unordered (e.g. (string, int) and (int, string)).
func (s Signature) Less(o Signature, cfg apis.Config) bool {
	if len(s) != len(o) {
		return false
	}
	return s.Supersedes(o, cfg) && !o.Supersedes(s, cfg)
}

// String renders the signature as "(string, int)" for diagnostics.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		if t == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}
