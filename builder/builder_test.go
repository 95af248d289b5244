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

package builder_test

import (
	"reflect"
	"testing"

	"dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/builder"
	"dirpx.dev/mdx/config"
)

// unionImpl declares explicit specs; the default chain must prefer them
// over the func type.
type unionImpl struct{}

func (unionImpl) DispatchParams() []apis.ParamSpec {
	return []apis.ParamSpec{apis.OneOf(reflect.TypeOf(0), reflect.TypeOf(""))}
}
func (unionImpl) DispatchFunc() any { return func(any) {} }

func TestBuildExtractor_DefaultChain(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	xtr := b.BuildExtractor(cfg, nil, nil)
	if xtr == nil {
		t.Fatal("BuildExtractor returned nil")
	}

	// Reflection path.
	specs, err := xtr.Extract(func(s string, n int) {}, cfg)
	if err != nil {
		t.Fatalf("Extract(func): unexpected error: %v", err)
	}
	if len(specs) != 2 || specs[0].Types()[0] != reflect.TypeOf("") {
		t.Fatalf("Extract(func) = %v, want [string int]", specs)
	}

	// Declarer path wins over reflection.
	specs, err = xtr.Extract(unionImpl{}, cfg)
	if err != nil {
		t.Fatalf("Extract(declarer): unexpected error: %v", err)
	}
	if len(specs) != 1 || specs[0].Size() != 2 {
		t.Fatalf("Extract(declarer) = %v, want the declared union", specs)
	}
}

func TestBuildTable_Empty(t *testing.T) {
	b := builder.New()
	tbl := b.BuildTable(config.DefaultConfig(), nil)
	if tbl == nil {
		t.Fatal("BuildTable returned nil")
	}
	if tbl.Count() != 0 {
		t.Fatalf("new table Count() = %d, want 0", tbl.Count())
	}
	if len(tbl.Entries()) != 0 {
		t.Fatalf("new table Entries() = %v, want empty", tbl.Entries())
	}
}
