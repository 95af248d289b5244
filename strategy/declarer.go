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
	"dirpx.dev/mdx/apis"
)

// NewDeclarerStrategy creates an apis.Strategy that uses apis.Declarer.
func NewDeclarerStrategy() apis.Strategy {
	return &declarerStrategy{}
}

// declarerStrategy is a zero-cost fast path: if v implements
// apis.Declarer, return its declared parameter specs and stop the
// chain. This is the entry point for union declarations, which Go func
// types cannot carry.
type declarerStrategy struct{}

// Ensure declarerStrategy implements apis.Strategy.
var _ apis.Strategy = (*declarerStrategy)(nil)

// TryExtract checks if v implements apis.Declarer and returns its
// declared parameter specs.
func (*declarerStrategy) TryExtract(v any, _ apis.Config) ([]apis.ParamSpec, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	if d, ok := v.(apis.Declarer); ok {
		return d.DispatchParams(), true, nil
	}
	return nil, false, nil
}
