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

package reflect

import (
	"reflect"
	"sync"

	"dirpx.dev/mdx/apis"
)

// cacheKey ensures memoization respects the config knob that affects
// the relation.
type cacheKey struct {
	a, b       reflect.Type
	assignable bool
}

// subtypeCache caches subtype verdicts by (type pair, config knobs).
var subtypeCache sync.Map // key: cacheKey, val: bool

// Subtype reports whether a is a subtype of b under cfg.
//
// Relation policy:
//   - identical types are subtypes of each other (reflexivity);
//   - if b is an interface, a is a subtype iff a implements b
//     (the empty interface is therefore a top type);
//   - a nil a stands for an untyped nil argument and is a subtype of
//     interface types only;
//   - if cfg.AssignableSubtyping is set, Go assignability also counts.
//
// The relation is reflexive and transitive, which the dispatch table's
// linearized insertion order depends on.
func Subtype(a, b reflect.Type, cfg apis.Config) bool {
	if b == nil {
		return false
	}
	if a == nil {
		// Untyped nil: only interface-typed parameters can hold it.
		return b.Kind() == reflect.Interface
	}
	if a == b {
		return true
	}

	key := cacheKey{a: a, b: b, assignable: cfg.AssignableSubtyping}
	if cfg.SubtypeCache {
		if v, ok := subtypeCache.Load(key); ok {
			return v.(bool)
		}
	}

	var ok bool
	switch {
	case b.Kind() == reflect.Interface:
		ok = a.Implements(b)
	case cfg.AssignableSubtyping:
		ok = a.AssignableTo(b)
	}

	if cfg.SubtypeCache {
		subtypeCache.Store(key, ok)
	}
	return ok
}

// Identical reports pointwise type identity. It exists so callers spell
// equality and subtyping through the same package.
func Identical(a, b reflect.Type) bool {
	return a == b
}
