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
	"fmt"
	"reflect"

	"dirpx.dev/mdx/apis"
)

var (
	// ErrNotCallable is returned when a registered implementation's
	// underlying value is not a func.
	ErrNotCallable = errors.New("mdx: implementation is not callable")
	// ErrArityMismatch is returned when a declaration's parameter count
	// differs from the underlying func's.
	ErrArityMismatch = errors.New("mdx: declared parameter count does not match func")
)

// Func is one named multiple-dispatch operation group. It owns its
// dispatch table exclusively: created empty, grown only by Register,
// never shared.
//
// Register must be externally serialized and must not overlap Resolve
// or Call; Resolve and Call are safe for concurrent use once
// registration has quiesced.
type Func struct {
	// name identifies the operation group in error text and diagnostics.
	name string
	// cfg is the configuration snapshot the Func was built from.
	cfg apis.Config
	// xtr derives parameter specs from implementations.
	xtr apis.Extractor
	// tbl is the owned dispatch table.
	tbl apis.Table
}

// variant is the handle stored in the table: the original
// implementation value plus its prepared callable.
type variant struct {
	orig any
	fn   reflect.Value
}

// New constructs an empty operation group from the current global
// defaults snapshot.
func New(name string) *Func {
	s := st.Load()
	tbl := s.bld.BuildTable(s.cfg, s.ext)
	if tbl == nil {
		panic(ErrNilTable)
	}
	return &Func{name: name, cfg: s.cfg, xtr: s.xtr, tbl: tbl}
}

// NewWith constructs an empty operation group with an explicit
// configuration, extractor and table, bypassing the global defaults.
// A nil xtr or tbl falls back to the global snapshot's builder.
func NewWith(name string, cfg apis.Config, xtr apis.Extractor, tbl apis.Table) *Func {
	s := st.Load()
	if xtr == nil {
		xtr = s.bld.BuildExtractor(cfg, nil, s.ext)
	}
	if tbl == nil {
		tbl = s.bld.BuildTable(cfg, s.ext)
	}
	if xtr == nil {
		panic(ErrNilExtractor)
	}
	if tbl == nil {
		panic(ErrNilTable)
	}
	return &Func{name: name, cfg: cfg, xtr: xtr, tbl: tbl}
}

// Name returns the operation group's name.
func (f *Func) Name() string {
	return f.name
}

// Table returns the owned dispatch table for diagnostics.
func (f *Func) Table() apis.Table {
	return f.tbl
}

// Register adds one implementation to the group. impl is either a
// plain non-variadic func, whose parameter types become its
// declaration, or an apis.Declarer carrying explicit specs (the only
// way to declare unions).
//
// The call is atomic: a malformed declaration or a signature conflict
// with an already registered variant inserts nothing.
func (f *Func) Register(impl any) error {
	specs, err := f.xtr.Extract(impl, f.cfg)
	if err != nil {
		return fmt.Errorf("mdx: register %q: %w", f.name, err)
	}

	callable := impl
	if d, ok := impl.(apis.Declarer); ok {
		callable = d.DispatchFunc()
	}
	fn := reflect.ValueOf(callable)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return fmt.Errorf("mdx: register %q: %w: %T", f.name, ErrNotCallable, callable)
	}
	if fn.Type().NumIn() != len(specs) {
		return fmt.Errorf("mdx: register %q: %w: %d declared, func takes %d",
			f.name, ErrArityMismatch, len(specs), fn.Type().NumIn())
	}

	if err := f.tbl.Register(specs, &variant{orig: impl, fn: fn}); err != nil {
		return fmt.Errorf("mdx: register %q: %w", f.name, err)
	}
	return nil
}

// Resolve returns the implementation registered for the most specific
// signature accepting the given argument types, as it was passed to
// Register. A nil element stands for an untyped nil argument.
func (f *Func) Resolve(args ...reflect.Type) (any, error) {
	impl, err := f.tbl.Resolve(args)
	if err != nil {
		return nil, fmt.Errorf("mdx: call %q: %w", f.name, err)
	}
	return impl.(*variant).orig, nil
}

// Call dispatches on the runtime types of args, invokes the selected
// implementation, and returns its results. A nil argument dispatches
// as an untyped nil and is passed as the zero value of the selected
// variant's parameter type.
func (f *Func) Call(args ...any) ([]any, error) {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = reflect.TypeOf(a)
	}

	impl, err := f.tbl.Resolve(types)
	if err != nil {
		return nil, fmt.Errorf("mdx: call %q: %w", f.name, err)
	}
	v := impl.(*variant)

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(v.fn.Type().In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}

	outs := v.fn.Call(in)
	results := make([]any, len(outs))
	for i, o := range outs {
		results[i] = o.Interface()
	}
	return results, nil
}

// Variant bundles a func with an explicit parameter declaration. It is
// how callers register union parameters:
//
//	f.Register(mdx.Variant(
//	    func(n any, s string) string { ... },
//	    mdx.OneOf(reflect.TypeOf(0), reflect.TypeOf(int64(0))),
//	    mdx.One(reflect.TypeOf("")),
//	))
//
// The func's parameter types must be supertypes of every declared
// alternative at the corresponding position, or the invocation will
// panic at call time; declaring union positions as interface types is
// the usual shape.
func Variant(fn any, specs ...apis.ParamSpec) apis.Declarer {
	return declared{fn: fn, specs: specs}
}

// declared is the Declarer returned by Variant.
type declared struct {
	fn    any
	specs []apis.ParamSpec
}

// DispatchParams returns the explicit declaration.
func (d declared) DispatchParams() []apis.ParamSpec {
	return d.specs
}

// DispatchFunc returns the underlying callable.
func (d declared) DispatchFunc() any {
	return d.fn
}

// One re-exports apis.One for call-site brevity.
func One(t reflect.Type) apis.ParamSpec {
	return apis.One(t)
}

// OneOf re-exports apis.OneOf for call-site brevity.
func OneOf(ts ...reflect.Type) apis.ParamSpec {
	return apis.OneOf(ts...)
}
