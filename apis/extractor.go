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

// Extractor coordinates strategies to derive parameter specs for an
// implementation. Typical chain: DeclarerStrategy -> ReflectStrategy.
// It is the injected capability that reads declarations; the dispatch
// table itself never inspects an implementation.
type Extractor interface {
	// Extract returns one ParamSpec per parameter of v, or an error if
	// v's declaration is malformed or no strategy can handle it.
	// Extractor is expected to be concurrency-safe for reads.
	Extract(v any, cfg Config) ([]ParamSpec, error)
}
