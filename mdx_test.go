package mdx

import (
	"testing"

	apis "dirpx.dev/mdx/apis"
	"dirpx.dev/mdx/builder"
	"dirpx.dev/mdx/config"
)

// ---------------------- Test doubles (mocks) ----------------------

type mockExtractor struct {
	id string
}

func (m *mockExtractor) Extract(_ any, _ apis.Config) ([]apis.ParamSpec, error) {
	return nil, nil
}

type mockBuilder struct {
	extractorBuilds int
	tableBuilds     int
	lastCfg         apis.Config
	lastExt         any
}

func (m *mockBuilder) BuildExtractor(cfg apis.Config, prev apis.Extractor, ext any) apis.Extractor {
	m.extractorBuilds++
	m.lastCfg = cfg
	m.lastExt = ext
	return &mockExtractor{id: "built"}
}

func (m *mockBuilder) BuildTable(cfg apis.Config, ext any) apis.Table {
	m.tableBuilds++
	return builder.New().BuildTable(cfg, ext)
}

// Reset to a clean snapshot using the stock builder.
// This fully replaces builder, config, ext and rebuilds the extractor.
// The extractor pin is reset because we pass a nil xtr.
func resetDefaults(tb testing.TB) {
	tb.Helper()
	cfg := config.DefaultConfig()
	SetAll(&cfg, nil, nil, builder.New())
}

// ---------------------- Tests ----------------------

func TestSetConfig_RebuildsExtractor(t *testing.T) {
	defer resetDefaults(t)

	mb := &mockBuilder{}
	SetAll(nil, nil, nil, mb)
	builds := mb.extractorBuilds

	cfg := config.NewConfig(config.WithMaxUnion(4))
	SetConfig(cfg)

	if Config().MaxUnion != 4 {
		t.Fatalf("Config().MaxUnion = %d, want 4", Config().MaxUnion)
	}
	if mb.extractorBuilds != builds+1 {
		t.Fatalf("extractor builds = %d, want %d", mb.extractorBuilds, builds+1)
	}
	if mb.lastCfg.MaxUnion != 4 {
		t.Fatalf("builder saw MaxUnion=%d, want 4", mb.lastCfg.MaxUnion)
	}
}

func TestSetExtractor_Pins(t *testing.T) {
	defer resetDefaults(t)

	mb := &mockBuilder{}
	SetAll(nil, nil, nil, mb)

	pinned := &mockExtractor{id: "pinned"}
	SetExtractor(pinned)
	if !IsExtractorPinned() {
		t.Fatal("SetExtractor must pin the extractor")
	}

	builds := mb.extractorBuilds
	SetConfig(config.DefaultConfig())
	if mb.extractorBuilds != builds {
		t.Fatalf("pinned extractor was rebuilt (%d -> %d builds)", builds, mb.extractorBuilds)
	}
	if Extractor() != pinned {
		t.Fatal("pinned extractor was replaced")
	}

	UnpinExtractor()
	if IsExtractorPinned() {
		t.Fatal("UnpinExtractor did not unpin")
	}
	SetConfig(config.DefaultConfig())
	if mb.extractorBuilds != builds+1 {
		t.Fatalf("unpinned extractor not rebuilt (%d builds)", mb.extractorBuilds)
	}
}

func TestSetExtractor_NilIgnored(t *testing.T) {
	defer resetDefaults(t)

	before := Extractor()
	SetExtractor(nil)
	if Extractor() != before || IsExtractorPinned() {
		t.Fatal("SetExtractor(nil) must be a no-op")
	}
}

func TestSetBuilder_RebuildsExtractor(t *testing.T) {
	defer resetDefaults(t)

	mb := &mockBuilder{}
	SetBuilder(mb)
	if Builder() != apis.Builder(mb) {
		t.Fatal("SetBuilder did not install the builder")
	}
	if mb.extractorBuilds != 1 {
		t.Fatalf("extractor builds = %d, want 1", mb.extractorBuilds)
	}

	SetBuilder(nil)
	if Builder() != apis.Builder(mb) {
		t.Fatal("SetBuilder(nil) must be a no-op")
	}
}

func TestSetExt_And_ExtAs(t *testing.T) {
	defer resetDefaults(t)

	mb := &mockBuilder{}
	SetAll(nil, nil, nil, mb)

	type policy struct{ Strict bool }
	SetExt(policy{Strict: true})

	got, ok := ExtAs[policy]()
	if !ok || !got.Strict {
		t.Fatalf("ExtAs[policy]() = (%+v, %v), want strict policy", got, ok)
	}
	if _, ok := ExtAs[string](); ok {
		t.Fatal("ExtAs[string]() must not match a policy payload")
	}
	if mb.lastExt == nil {
		t.Fatal("builder did not observe the new ext payload")
	}
}

func TestSetAll_HardReset(t *testing.T) {
	defer resetDefaults(t)

	mb := &mockBuilder{}
	cfg := config.NewConfig(config.WithAssignableSubtyping(true))
	pinned := &mockExtractor{id: "explicit"}

	SetAll(&cfg, "ext", pinned, mb)

	if !Config().AssignableSubtyping {
		t.Fatal("SetAll did not apply config")
	}
	if Extractor() != pinned || !IsExtractorPinned() {
		t.Fatal("SetAll with explicit extractor must install and pin it")
	}
	if got, ok := ExtAs[string](); !ok || got != "ext" {
		t.Fatalf("ExtAs[string]() = (%q, %v), want (ext, true)", got, ok)
	}

	// Nil extractor rebuilds via the builder and resets the pin.
	SetAll(nil, nil, nil, nil)
	if IsExtractorPinned() {
		t.Fatal("SetAll(nil xtr) must reset the pin")
	}
	if mb.extractorBuilds == 0 {
		t.Fatal("SetAll(nil xtr) must rebuild via the installed builder")
	}
}
