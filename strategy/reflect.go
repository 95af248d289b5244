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

package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/mdx/apis"
)

var (
	// ErrNotFunc is returned when an implementation is neither a func
	// nor an apis.Declarer.
	ErrNotFunc = errors.New("mdx(strategy): implementation is not a func")
	// ErrVariadicFunc is returned for variadic funcs: a variadic
	// parameter has no fixed arity and cannot be dispatched on.
	ErrVariadicFunc = errors.New("mdx(strategy): variadic funcs cannot be dispatched")
)

// NewReflectStrategy creates an apis.Strategy that derives one
// single-type ParamSpec per parameter of a Go func's reflect.Type,
// with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback: any non-variadic func can
// be dispatched on its declared parameter types. Specs are cached per
// func type; the derivation depends only on the type, not on config.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// specCache caches derived specs by func reflect.Type.
var specCache sync.Map // key: reflect.Type, val: []apis.ParamSpec

// TryExtract derives parameter specs from v's func type.
func (reflectStrategy) TryExtract(v any, _ apis.Config) ([]apis.ParamSpec, bool, error) {
	if v == nil {
		return nil, false, nil
	}

	ft := reflect.TypeOf(v)
	if ft.Kind() != reflect.Func {
		return nil, true, fmt.Errorf("%w: %T", ErrNotFunc, v)
	}
	if ft.IsVariadic() {
		return nil, true, fmt.Errorf("%w: %s", ErrVariadicFunc, ft)
	}

	if cached, ok := specCache.Load(ft); ok {
		return cached.([]apis.ParamSpec), true, nil
	}

	specs := make([]apis.ParamSpec, ft.NumIn())
	for i := range specs {
		specs[i] = apis.One(ft.In(i))
	}
	specCache.Store(ft, specs)
	return specs, true, nil
}
