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

// Config carries read-only dispatch knobs that influence the subtype
// relation and union expansion. It is passed by value and should be
// treated as immutable by implementations.
type Config struct {
	// AssignableSubtyping extends the subtype relation beyond interface
	// satisfaction to Go assignability (e.g. a named type and its
	// underlying type become mutual subtypes). Mutual assignability
	// widens the set of ambiguous signature pairs, so this is off by
	// default.
	AssignableSubtyping bool

	// MaxUnion limits the number of member types in a single parameter
	// union. Acts as a safety guard: signature expansion is a Cartesian
	// product and grows exponentially with union sizes.
	MaxUnion int

	// SubtypeCache controls memoization of subtype checks. Memoized
	// entries are keyed by both types and the knobs that affect the
	// relation, so differently-configured tables never share results.
	SubtypeCache bool
}
