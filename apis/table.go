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

// Table is an ordered mapping from concrete type signatures to
// implementation handles, kept linearized so that a strictly
// more-specific signature always precedes a strictly less-specific one.
// The table exclusively owns its entries; it grows only via Register
// and never shrinks.
//
// Registration mutates entry order in place and must be externally
// serialized; it must not overlap in-flight resolution. Resolution is a
// read-only scan and is safe for concurrent use once registration has
// quiesced.
type Table interface {
	// Register expands specs into concrete signatures and inserts them
	// all, or none: a malformed spec or a signature equal to an already
	// registered one fails the whole call and leaves the table unchanged.
	Register(specs []ParamSpec, impl any) error

	// Resolve returns the implementation of the first entry whose
	// signature has len(args) arity and whose every declared type is a
	// supertype of (or equal to) the corresponding runtime type.
	Resolve(args []reflect.Type) (any, error)

	// Entries returns an ordered snapshot for diagnostics/docs.
	Entries() []Entry

	// Count returns the number of concrete signatures registered.
	Count() int
}

// Entry is a single (signature, implementation) pair in a Table
// snapshot, in table order.
type Entry struct {
	// Types is the concrete signature, one type per parameter position.
	Types []reflect.Type
	// Impl is the registered implementation handle.
	Impl any
}
