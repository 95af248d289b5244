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

package extractor

import (
	"errors"
	"fmt"

	"dirpx.dev/mdx/apis"
)

// ErrNoStrategy is returned when no strategy in the chain can derive
// parameter specs for an implementation.
var ErrNoStrategy = errors.New("mdx(extractor): no strategy could extract parameter specs")

// New constructs an apis.Extractor that tries the given strategies in order.
// Nil strategies are ignored. The returned extractor is safe for concurrent
// use provided strategies themselves are safe for concurrent TryExtract calls.
func New(strategies ...apis.Strategy) apis.Extractor {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain is an immutable, order-preserving extractor over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Extract runs strategies in order until one handles the implementation.
// A handling strategy's error is final; it is never retried downstream.
func (c *chain) Extract(v any, cfg apis.Config) ([]apis.ParamSpec, error) {
	for _, s := range c.strats {
		specs, handled, err := s.TryExtract(v, cfg)
		if handled {
			return specs, err
		}
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNoStrategy, v)
}
