package hwy

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which bodies this test binary dispatches to, so CI logs
// show what was actually exercised.
func TestMain(m *testing.M) {
	info := Info()
	fmt.Printf("=== hwy dispatch ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Capability: %s\n", info.Capability)
	fmt.Printf("Features: %v\n", DetectFeatures())
	fmt.Printf("Registered: %v\n", registeredCapabilities())
	fmt.Printf("DispatchDisabled: %v\n", info.DispatchDisabled)
	if info.CPUBrand != "" {
		fmt.Printf("CPU: %s (%s)\n", info.CPUBrand, info.CPUVendor)
	}
	fmt.Printf("====================\n\n")

	os.Exit(m.Run())
}
