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

// Declarer lets an implementation carry an explicit parameter
// declaration instead of having one derived from its func type by
// reflection. This is the only way to declare a union parameter, since
// Go func types cannot express "int or string" in a single position.
type Declarer interface {
	// DispatchParams returns one ParamSpec per parameter position.
	DispatchParams() []ParamSpec

	// DispatchFunc returns the underlying callable. Must be a func
	// whose parameter count equals len(DispatchParams()).
	DispatchFunc() any
}
