//go:build arm64 && !noasm

package hwy

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	// ARM64 (AArch64) always has NEON (ASIMD); it's part of the ARMv8-A base
	// architecture.
	if cpu.ARM64.HasASIMD {
		return FeaturesOf(CapNEON)
	}
	return FeaturesOf()
}
