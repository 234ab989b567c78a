// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !noasm

package hwy

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// x/sys/cpu does not expose the SSE1 bit (it is implied on amd64), so that
// one comes from cpuid.
func detectFeatures() Features {
	var caps []Capability
	if cpuid.CPU.Supports(cpuid.SSE) {
		caps = append(caps, CapSSE)
	}
	if cpu.X86.HasSSE2 {
		caps = append(caps, CapSSE2)
	}
	if cpu.X86.HasSSSE3 {
		caps = append(caps, CapSSSE3)
	}
	if cpu.X86.HasSSE41 {
		caps = append(caps, CapSSE41)
	}
	return FeaturesOf(caps...)
}
