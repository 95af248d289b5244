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

package builder

import (
	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/extractor"
	"dirpx.dev/mdx/strategy"
	"dirpx.dev/mdx/table"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildExtractor builds and returns a new apis.Extractor based on the provided
// configuration. The default chain tries explicit declarations first and falls
// back to reflection over func types.
func (b *builder) BuildExtractor(_ apis.Config, _ apis.Extractor, _ any) apis.Extractor {
	return extractor.New(
		strategy.NewDeclarerStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// BuildTable builds and returns a new empty apis.Table based on the provided
// configuration.
func (b *builder) BuildTable(cfg apis.Config, _ any) apis.Table {
	return table.New(cfg)
}
