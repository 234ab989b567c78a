package hwy

import (
	"fmt"
	"math/bits"
	"runtime"
	"strings"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Capability is an instruction-set extension an operation body can target.
//
// The numeric order is the dispatch priority: when several capabilities are
// available, every operation uses the body of the highest one that provides
// it, falling through to lower ones and finally to the scalar body.
type Capability uint8

const (
	// CapNone means no accelerated ISA; the scalar bodies run. Always available.
	CapNone Capability = iota

	// CapWasmSIMD is the WebAssembly 128-bit SIMD proposal (simd128).
	CapWasmSIMD

	// CapSSE is x86 SSE (MOVMSKPS, SHUFPS).
	CapSSE

	// CapSSE2 is x86 SSE2, the amd64 baseline (packed 32-bit integer ops).
	CapSSE2

	// CapSSSE3 is x86 SSSE3 (PABSD).
	CapSSSE3

	// CapSSE41 is x86 SSE4.1 (PMULLD, PMINSD/PMAXSD, PTEST).
	CapSSE41

	// CapNEON is ARM Advanced SIMD (ASIMD), the AArch64 baseline.
	CapNEON

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	CapNone:     "none",
	CapWasmSIMD: "wasm-simd",
	CapSSE:      "sse",
	CapSSE2:     "sse2",
	CapSSSE3:    "ssse3",
	CapSSE41:    "sse4.1",
	CapNEON:     "neon",
}

// String returns a human-readable name for the capability.
func (c Capability) String() string {
	if c < numCapabilities {
		return capabilityNames[c]
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// ParseCapability parses a name as returned by Capability.String.
// Matching is case-insensitive and also accepts "scalar" for CapNone.
func ParseCapability(s string) (Capability, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "scalar" {
		return CapNone, nil
	}
	for c, name := range capabilityNames {
		if s == name {
			return Capability(c), nil
		}
	}
	return CapNone, fmt.Errorf("hwy: unknown capability %q", s)
}

// AllCapabilities returns every capability in ascending priority order.
func AllCapabilities() []Capability {
	out := make([]Capability, numCapabilities)
	for i := range out {
		out[i] = Capability(i)
	}
	return out
}

// Features is a set of capabilities. CapNone is a member of every set
// returned by this package.
type Features uint16

// FeaturesOf returns the set holding CapNone and caps.
func FeaturesOf(caps ...Capability) Features {
	f := Features(1 << CapNone)
	for _, c := range caps {
		f |= 1 << c
	}
	return f
}

// Has reports whether c is in f.
func (f Features) Has(c Capability) bool {
	return c < numCapabilities && f&(1<<c) != 0
}

// Best returns the highest-priority capability in f.
func (f Features) Best() Capability {
	f &= 1<<numCapabilities - 1
	if f == 0 {
		return CapNone
	}
	return Capability(bits.Len16(uint16(f)) - 1)
}

// List returns the members of f in ascending priority order.
func (f Features) List() []Capability {
	var out []Capability
	for c := range numCapabilities {
		if f.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Upto returns the members of f whose priority is at most c.
func (f Features) Upto(c Capability) Features {
	return f & (1<<(c+1) - 1)
}

func (f Features) String() string {
	names := make([]string, 0, numCapabilities)
	for _, c := range f.List() {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

// detected is evaluated once per process. Concurrent first callers all
// block on the same evaluation and observe the same result.
var detected = sync.OnceValue(func() Features {
	return detectFeatures()
})

// DetectFeatures returns every capability usable in this process.
// With the noasm build tag it returns only CapNone.
func DetectFeatures() Features {
	return detected()
}

// Detect returns the highest-priority capability usable in this process.
func Detect() Capability {
	return detected().Best()
}

// IsSupported reports whether c is usable in this process. It is safe for
// concurrent use and has no side effects beyond the first detection.
func IsSupported(c Capability) bool {
	return detected().Has(c)
}

// DispatchDisabled reports whether this binary was built with the noasm
// tag, which forces every operation onto its scalar body.
func DispatchDisabled() bool {
	return noasm
}

// RuntimeInfo describes the dispatch state of the running process.
type RuntimeInfo struct {
	Capability       Capability `json:"capability" yaml:"capability"`
	Features         []string   `json:"features" yaml:"features"`
	DispatchDisabled bool       `json:"dispatch_disabled" yaml:"dispatch_disabled"`
	GOOS             string     `json:"goos" yaml:"goos"`
	GOARCH           string     `json:"goarch" yaml:"goarch"`
	CPUVendor        string     `json:"cpu_vendor,omitempty" yaml:"cpu_vendor,omitempty"`
	CPUBrand         string     `json:"cpu_brand,omitempty" yaml:"cpu_brand,omitempty"`
}

// Info returns the dispatch state of the running process.
func Info() RuntimeInfo {
	f := DetectFeatures()
	names := make([]string, 0, numCapabilities)
	for _, c := range f.List() {
		names = append(names, c.String())
	}
	return RuntimeInfo{
		Capability:       f.Best(),
		Features:         names,
		DispatchDisabled: DispatchDisabled(),
		GOOS:             runtime.GOOS,
		GOARCH:           runtime.GOARCH,
		CPUVendor:        cpuid.CPU.VendorString,
		CPUBrand:         cpuid.CPU.BrandName,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Capability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Capability) UnmarshalText(b []byte) error {
	p, err := ParseCapability(string(b))
	if err != nil {
		return err
	}
	*c = p
	return nil
}
