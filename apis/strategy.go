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

// Strategy is a pluggable extraction step. An Extractor can chain
// multiple strategies in order (e.g., Declarer -> Reflect).
type Strategy interface {
	// TryExtract attempts to derive parameter specs for implementation v
	// according to cfg. It returns (specs, true, nil) if handled,
	// ("", false, nil) to fall through to the next strategy, or
	// (nil, true, err) if v is of a shape this strategy owns but the
	// declaration is malformed. Errors are fatal to the extraction;
	// they are never retried against later strategies.
	TryExtract(v any, cfg Config) (specs []ParamSpec, handled bool, err error)
}
