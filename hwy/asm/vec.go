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

// Package asm holds the hand-written 128-bit kernels behind the hwy
// dispatch table: SSE/SSE2/SSSE3/SSE4.1 on amd64 and NEON on arm64.
//
// Every kernel takes its operands by pointer and uses unaligned 128-bit
// loads and stores, so callers never need 16-byte aligned storage.
// Building with -tags noasm compiles the kernels out and leaves panicking
// stubs in their place; the hwy package never registers them in that case.
package asm

import "encoding/binary"

// Int32x4 is the native 128-bit machine vector of four 32-bit lanes.
// Uses [16]byte backing so the kernels see the exact register image:
// lane 0 at the lowest address, each lane in host byte order.
type Int32x4 [16]byte

// LoadInt32x4 packs four int32 lanes into a machine vector.
func LoadInt32x4(lanes [4]int32) Int32x4 {
	var v Int32x4
	for i, l := range lanes {
		binary.NativeEndian.PutUint32(v[i*4:], uint32(l))
	}
	return v
}

// LoadUint32x4 packs four raw 32-bit words into a machine vector.
func LoadUint32x4(words [4]uint32) Int32x4 {
	var v Int32x4
	for i, w := range words {
		binary.NativeEndian.PutUint32(v[i*4:], w)
	}
	return v
}

// Int32s unpacks the four lanes as signed integers.
func (v Int32x4) Int32s() [4]int32 {
	var out [4]int32
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(v[i*4:]))
	}
	return out
}

// Uint32s unpacks the four lanes as raw words.
func (v Int32x4) Uint32s() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(v[i*4:])
	}
	return out
}
