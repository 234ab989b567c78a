//go:build !amd64 && !arm64 && !wasm && !noasm

package hwy

// Other architectures fall back to scalar mode.
func detectFeatures() Features {
	return FeaturesOf()
}
