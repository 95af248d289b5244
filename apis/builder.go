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

// Builder composes Extractor and Table instances from a Config.
// Implementations may reuse state from a previous extractor (prev), or ignore it.
type Builder interface {
	// BuildExtractor constructs an Extractor for Config. May reuse state from
	// the previous extractor. ext is an optional extension context; its
	// meaning is implementation-defined.
	BuildExtractor(cfg Config, prev Extractor, ext any) Extractor

	// BuildTable constructs an empty Table for Config.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildTable(cfg Config, ext any) Table
}
