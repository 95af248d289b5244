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

// Package mdx provides runtime multiple dispatch for Go.
//
// mdx lets a caller register several implementations of one operation,
// each declared for different parameter types, and have the right one
// selected automatically from the runtime types of all arguments, not
// just the first. Example: an "area" operation with one variant for
// (Circle), one for (Rect), and a fallback for (any) is one Func; each
// call picks the most specific variant its argument types satisfy.
//
// # Design
//
// The core of mdx is an ordered dispatch table per operation group.
// Three layers, leaves first:
//
//   - Signature: an ordered tuple of concrete reflect.Types, equipped
//     with a strict partial order "is-more-specific-than". A signature
//     supersedes another (of the same arity) when every positional type
//     is a subtype of the other's; it is strictly more specific when
//     the reverse does not also hold. The relation is partial: (string,
//     int) and (int, string) are simply unordered.
//
//   - Union expansion: a declared parameter may be a union of types
//     (apis.OneOf), something a Go func type cannot express. A
//     declaration expands into the Cartesian product of concrete
//     signatures, each a first-class entry in the table.
//
//   - Table: an ordered collection of (signature, implementation)
//     entries kept linearized so a strictly more-specific signature
//     always precedes a strictly less-specific one. Insertion places a
//     new signature before the first entry it is strictly more
//     specific than, or appends it; a sort cannot do this, because the
//     relation is not total. Registering a signature equal to an
//     existing one fails, atomically, with both implementations named.
//     Resolution scans in order and returns the first entry whose
//     arity matches and whose declared types accept every runtime
//     argument type.
//
// How declarations are read is a pluggable capability: an Extractor
// chains strategies, by default apis.Declarer (an implementation that
// carries explicit specs, including unions) and then reflection over
// the func's parameter types.
//
// # Global API
//
// Package-level state holds only defaults: a Config, a Builder, an
// Extractor, and an opaque extension payload, in an immutable snapshot
// behind an atomic pointer exactly so Func construction is lock-free.
// Dispatch state itself never lives in a process-wide singleton: each
// operation group is an explicitly owned *Func created by New.
//
//	area := mdx.New("area")
//	_ = area.Register(func(c Circle) float64 { ... })
//	_ = area.Register(func(r Rect) float64 { ... })
//	out, err := area.Call(Circle{R: 2})
//
// SetConfig, SetBuilder, SetExt, SetExtractor and SetAll adjust the
// defaults under an internal build lock and publish a new snapshot;
// Funcs created afterwards observe the change, existing Funcs keep the
// snapshot they were built from.
//
// # Concurrency
//
// A Func's registration phase mutates table order in place and must be
// serialized by the caller; it must not overlap resolution. Once
// registration has quiesced, Resolve and Call are read-only and safe
// for concurrent use. Registration confined to package init, with
// calls afterwards, needs no locking at all.
package mdx
