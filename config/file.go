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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/mdx/apis"
)

// fileConfig is the YAML-facing shape of an apis.Config. Fields are
// pointers so that an omitted key keeps its default rather than being
// zeroed.
type fileConfig struct {
	// AssignableSubtyping maps to apis.Config.AssignableSubtyping.
	AssignableSubtyping *bool `yaml:"assignable_subtyping,omitempty"`
	// MaxUnion maps to apis.Config.MaxUnion.
	MaxUnion *int `yaml:"max_union,omitempty"`
	// SubtypeCache maps to apis.Config.SubtypeCache.
	SubtypeCache *bool `yaml:"subtype_cache,omitempty"`
}

// Load reads a YAML configuration file and overlays it on the defaults.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return FromYAML(data)
}

// FromYAML parses YAML configuration data and overlays it on the
// defaults. Keys not present keep their default values; a non-positive
// max_union resets to the default, matching WithMaxUnion.
func FromYAML(data []byte) (apis.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return apis.Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}

	opts := make([]Option, 0, 3)
	if fc.AssignableSubtyping != nil {
		opts = append(opts, WithAssignableSubtyping(*fc.AssignableSubtyping))
	}
	if fc.MaxUnion != nil {
		opts = append(opts, WithMaxUnion(*fc.MaxUnion))
	}
	if fc.SubtypeCache != nil {
		opts = append(opts, WithSubtypeCache(*fc.SubtypeCache))
	}
	return NewConfig(opts...), nil
}
