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

package mdx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/builder"
	"dirpx.dev/mdx/config"
)

// init initializes the global defaults state.
func init() {
	// Initialize state with default cfg, bld, and xtr.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.xtr = b.BuildExtractor(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilExtractor is returned when a builder returns a nil extractor.
	ErrNilExtractor = errors.New("mdx: builder returned nil extractor")
	// ErrNilTable is returned when a builder returns a nil table.
	ErrNilTable = errors.New("mdx: builder returned nil table")
)

// state is the immutable snapshot of the global defaults. Readers load
// the pointer and never mutate; writers build a new state under buildMu
// and atomically swap it in.
type state struct {
	// cfg is the default configuration for new Funcs.
	cfg apis.Config
	// ext is an opaque extension payload passed through to the builder.
	ext any
	// xtr is the default extractor for new Funcs.
	xtr apis.Extractor
	// bld constructs extractors and tables.
	bld apis.Builder
	// pxtr marks the extractor as pinned: rebuilds skip it.
	pxtr bool
}

var (
	// st holds the current global snapshot.
	st atomic.Pointer[state]
	// buildMu serializes snapshot writers.
	buildMu sync.Mutex
)

// Config returns the global default configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global default configuration to cfg.
// It rebuilds the global extractor using the new configuration, unless
// the extractor is pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new xtr based on the new cfg and old state.
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(cfg, old.xtr, old.ext)
	}

	// Ensure non-nil xtr.
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			xtr:  nxtr,
			bld:  b,
			pxtr: old.pxtr,
		},
	)
}

// Extractor returns the global default extractor.
func Extractor() apis.Extractor {
	return st.Load().xtr
}

// SetExtractor sets the global default extractor to xtr and pins it.
// A pinned extractor survives SetConfig/SetBuilder/SetExt rebuilds
// until UnpinExtractor is called.
func SetExtractor(xtr apis.Extractor) {
	if xtr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			xtr:  xtr,
			bld:  old.bld,
			pxtr: true,
		},
	)
}

// Builder returns the global bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global bld to b.
// It rebuilds the global extractor using the new builder, unless the
// extractor is pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build a new xtr based on the new bld and old state.
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(old.cfg, old.xtr, old.ext)
	}

	// Ensure non-nil xtr.
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			xtr:  nxtr,
			bld:  b,
			pxtr: old.pxtr,
		},
	)
}

// SetExt replaces the extension payload and rebuilds the non-pinned
// extractor via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new xtr based on the new ext and old state.
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(old.cfg, old.xtr, ext)
	}

	// Ensure non-nil xtr.
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			xtr:  nxtr,
			bld:  b,
			pxtr: old.pxtr,
		},
	)
}

// ExtAs returns the global extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsExtractorPinned returns whether the global extractor is pinned (immutable).
func IsExtractorPinned() bool {
	return st.Load().pxtr
}

// PinExtractor makes the global extractor immutable.
func PinExtractor() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			xtr:  old.xtr,
			bld:  old.bld,
			pxtr: true,
		},
	)
}

// UnpinExtractor makes the global extractor mutable again.
func UnpinExtractor() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			xtr:  old.xtr,
			bld:  old.bld,
			pxtr: false,
		},
	)
}

// SetAll explicitly sets all global defaults in one shot.
//
// Nil arguments leave the corresponding component unchanged, except for
// ext which is always replaced. Passing a nil xtr rebuilds the
// extractor via the builder and resets the pin; a non-nil xtr is stored
// as-is and pinned.
//
// This is mainly used by tests to get a clean deterministic state
// between test cases.
func SetAll(cfg *apis.Config, ext any, xtr apis.Extractor, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Extractor
	nxtr := xtr
	npxtr := false
	if nxtr == nil {
		nxtr = nbld.BuildExtractor(ncfg, old.xtr, next)
	} else {
		npxtr = true
	}

	// Ensure non-nil xtr.
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			xtr:  nxtr,
			bld:  nbld,
			pxtr: npxtr,
		},
	)
}
