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
	"errors"
	"fmt"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/config"
)

var (
	// ErrNilType is returned when a parameter spec contains a nil reflect.Type.
	ErrNilType = errors.New("mdx(signature): nil type in parameter spec")
	// ErrEmptyUnion is returned when a parameter spec declares zero types.
	// A spec must always denote at least one concrete type.
	ErrEmptyUnion = errors.New("mdx(signature): empty type union in parameter spec")
	// ErrUnionTooLarge is returned when a union exceeds the configured
	// MaxUnion guard.
	ErrUnionTooLarge = errors.New("mdx(signature): type union exceeds MaxUnion")
)

// Expand produces every concrete Signature obtained by choosing one
// type from each position's spec: the Cartesian product in declared
// left-to-right position order, then per-position declared order.
// The result is deterministic: the same specs always yield the same
// signatures in the same order. Zero specs yield the single empty
// signature (the n=0 product).
//
// Any malformed spec fails the whole expansion: nil member types,
// empty unions, and unions larger than cfg.MaxUnion. These are fatal
// input-validation errors for the registration that submitted them.
func Expand(specs []apis.ParamSpec, cfg apis.Config) ([]Signature, error) {
	maxUnion := cfg.MaxUnion
	if maxUnion <= 0 {
		maxUnion = config.DefaultMaxUnion
	}

	// Validate every position before allocating the product.
	total := 1
	for i, spec := range specs {
		n := spec.Size()
		if n == 0 {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyUnion, i)
		}
		if n > maxUnion {
			return nil, fmt.Errorf("%w: position %d has %d members (max %d)", ErrUnionTooLarge, i, n, maxUnion)
		}
		for _, t := range spec.Types() {
			if t == nil {
				return nil, fmt.Errorf("%w: position %d", ErrNilType, i)
			}
		}
		total *= n
	}

	out := make([]Signature, 0, total)
	out = append(out, make(Signature, 0, len(specs)))
	for _, spec := range specs {
		types := spec.Types()
		next := make([]Signature, 0, len(out)*len(types))
		for _, prefix := range out {
			for _, t := range types {
				sig := make(Signature, len(prefix), len(specs))
				copy(sig, prefix)
				next = append(next, append(sig, t))
			}
		}
		out = next
	}
	return out, nil
}
