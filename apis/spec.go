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

package apis

import "reflect"

// ParamSpec declares the acceptable types for one parameter position of
// a not-yet-expanded implementation: either a single type (One) or a
// union of alternatives (OneOf). A ParamSpec is an immutable value;
// validation of its members happens at expansion time, so a malformed
// spec (nil member, empty union) is reported on registration rather
// than on construction.
type ParamSpec struct {
	// types holds the declared alternatives in declaration order.
	types []reflect.Type
}

// One declares a parameter that accepts t (and its subtypes).
func One(t reflect.Type) ParamSpec {
	return ParamSpec{types: []reflect.Type{t}}
}

// Of is a convenience for One(reflect.TypeOf((*T)(nil)).Elem()): it
// declares a parameter by a Go type parameter, which is the only way
// to name an interface type directly.
func Of[T any]() ParamSpec {
	return One(reflect.TypeOf((*T)(nil)).Elem())
}

// OneOf declares a parameter that accepts any of ts. Duplicate members
// are collapsed, first occurrence wins, so the expansion of a spec list
// always yields pairwise-distinct signatures.
func OneOf(ts ...reflect.Type) ParamSpec {
	out := make([]reflect.Type, 0, len(ts))
	for _, t := range ts {
		dup := false
		for _, seen := range out {
			if seen == t && t != nil {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return ParamSpec{types: out}
}

// Types returns the declared alternatives in declaration order.
// The returned slice is a copy.
func (s ParamSpec) Types() []reflect.Type {
	out := make([]reflect.Type, len(s.types))
	copy(out, s.types)
	return out
}

// Size returns the number of declared alternatives.
func (s ParamSpec) Size() int {
	return len(s.types)
}
