package hwy

import (
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestCapabilityStringParse(t *testing.T) {
	for _, c := range AllCapabilities() {
		got, err := ParseCapability(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCapability(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if got, err := ParseCapability(" SSE4.1 "); err != nil || got != CapSSE41 {
		t.Errorf("ParseCapability is not case-insensitive: %v, %v", got, err)
	}
	if got, err := ParseCapability("scalar"); err != nil || got != CapNone {
		t.Errorf(`ParseCapability("scalar") = %v, %v`, got, err)
	}
	if _, err := ParseCapability("avx512"); err == nil {
		t.Error(`ParseCapability("avx512") succeeded`)
	}
	if got := Capability(200).String(); got != "Capability(200)" {
		t.Errorf("unknown capability String: %q", got)
	}
}

func TestPriorityOrder(t *testing.T) {
	order := []Capability{CapNone, CapWasmSIMD, CapSSE, CapSSE2, CapSSSE3, CapSSE41, CapNEON}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v must rank below %v", order[i-1], order[i])
		}
	}
}

func TestFeatures(t *testing.T) {
	f := FeaturesOf(CapSSE2, CapSSSE3)
	if !f.Has(CapNone) || !f.Has(CapSSE2) || f.Has(CapSSE41) {
		t.Errorf("Has: %v", f)
	}
	if f.Best() != CapSSSE3 {
		t.Errorf("Best: got %v, want ssse3", f.Best())
	}
	if got := f.Upto(CapSSE2); got != FeaturesOf(CapSSE2) {
		t.Errorf("Upto(sse2): got %v", got)
	}
	if got := FeaturesOf().Best(); got != CapNone {
		t.Errorf("empty Best: got %v", got)
	}
	if got := len(f.List()); got != 3 {
		t.Errorf("List: got %d members, want 3", got)
	}
	if Features(0).Best() != CapNone {
		t.Error("zero Features must report CapNone")
	}
}

func TestDetect(t *testing.T) {
	f := DetectFeatures()
	if !f.Has(CapNone) {
		t.Fatal("CapNone is always supported")
	}
	if Detect() != f.Best() {
		t.Errorf("Detect() = %v, want %v", Detect(), f.Best())
	}
	for _, c := range AllCapabilities() {
		if IsSupported(c) != f.Has(c) {
			t.Errorf("IsSupported(%v) = %v, disagrees with %v", c, IsSupported(c), f)
		}
	}
	if DispatchDisabled() {
		if f != FeaturesOf() {
			t.Errorf("noasm build detected %v", f)
		}
		return
	}
	switch runtime.GOARCH {
	case "amd64":
		// SSE and SSE2 are in the amd64 baseline.
		if !f.Has(CapSSE) || !f.Has(CapSSE2) {
			t.Errorf("amd64 without SSE/SSE2: %v", f)
		}
	case "arm64":
		if !f.Has(CapNEON) {
			t.Errorf("arm64 without NEON: %v", f)
		}
	case "wasm":
		if !f.Has(CapWasmSIMD) {
			t.Errorf("wasm without simd128: %v", f)
		}
	}
}

func TestDetectConcurrent(t *testing.T) {
	var g errgroup.Group
	results := make([]Features, 32)
	for i := range results {
		g.Go(func() error {
			results[i] = DetectFeatures()
			_ = Dot(NewInt4(1, 2, 3, 4), One4())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, f := range results {
		if f != results[0] {
			t.Errorf("reader %d saw %v, reader 0 saw %v", i, f, results[0])
		}
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info.Capability != Detect() {
		t.Errorf("Info().Capability = %v, want %v", info.Capability, Detect())
	}
	if info.GOARCH != runtime.GOARCH || info.GOOS != runtime.GOOS {
		t.Errorf("Info platform: %s/%s", info.GOOS, info.GOARCH)
	}
	if info.DispatchDisabled != DispatchDisabled() {
		t.Errorf("Info().DispatchDisabled = %v", info.DispatchDisabled)
	}
	if len(info.Features) == 0 || info.Features[0] != "none" {
		t.Errorf("Info().Features = %v", info.Features)
	}
}

func TestCapabilityText(t *testing.T) {
	var c Capability
	if err := c.UnmarshalText([]byte("neon")); err != nil || c != CapNEON {
		t.Errorf("UnmarshalText(neon) = %v, %v", c, err)
	}
	b, _ := CapSSSE3.MarshalText()
	if string(b) != "ssse3" {
		t.Errorf("MarshalText: %q", b)
	}
}
