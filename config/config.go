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

package config

import (
	"dirpx.dev/mdx/apis"
)

const (
	// DefaultAssignableSubtyping represents the default for AssignableSubtyping.
	// When false, only type identity and interface satisfaction count as
	// subtyping, which keeps the specificity order's ambiguous surface small.
	DefaultAssignableSubtyping = false
	// DefaultMaxUnion represents the default for MaxUnion.
	// A value of 16 should be sufficient for all practical purposes.
	DefaultMaxUnion = 16
	// DefaultSubtypeCache represents the default for SubtypeCache.
	// When true, subtype checks are memoized per (type pair, knobs).
	DefaultSubtypeCache = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnion is valid.
	if cfg.MaxUnion <= 0 {
		cfg.MaxUnion = DefaultMaxUnion
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AssignableSubtyping: DefaultAssignableSubtyping,
		MaxUnion:            DefaultMaxUnion,
		SubtypeCache:        DefaultSubtypeCache,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAssignableSubtyping sets the AssignableSubtyping option.
func WithAssignableSubtyping(assignable bool) Option {
	return func(c *apis.Config) {
		c.AssignableSubtyping = assignable
	}
}

// WithMaxUnion sets the MaxUnion option.
// A non-positive value resets to the default.
func WithMaxUnion(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnion = DefaultMaxUnion
			return
		}
		c.MaxUnion = max
	}
}

// WithSubtypeCache sets the SubtypeCache option.
func WithSubtypeCache(cache bool) Option {
	return func(c *apis.Config) {
		c.SubtypeCache = cache
	}
}
