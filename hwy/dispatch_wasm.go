//go:build wasm && !noasm

package hwy

// The simd128 bodies are plain Go modelling the proposal's instruction
// semantics, so they run on any wasm runtime.
func detectFeatures() Features {
	return FeaturesOf(CapWasmSIMD)
}
