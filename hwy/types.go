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

// Package hwy provides fixed-width 4-lane vector types with runtime CPU
// dispatch.
//
// Int4 holds four int32 lanes and Bool4 four boolean lanes. Every
// operation is bound once per process to the best body the CPU supports
// (NEON on arm64, SSE through SSE4.1 on amd64, simd128 semantics on wasm)
// and falls back to portable scalar code everywhere else. All bodies of an
// operation produce bit-identical results.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/hwy"
//
//	a := hwy.NewInt4(1, 2, 3, 4)
//	b := hwy.NewInt4(2, 3, 4, 5)
//	hwy.Dot(a, b) // 40
//
//	if hwy.All(a.Gt(hwy.Zero4())) {
//		// every lane is positive
//	}
//
// Building with -tags noasm compiles out every accelerated body, so the
// scalar bodies run regardless of the CPU. See DispatchDisabled.
package hwy

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Lanes is the number of lanes in Int4 and Bool4.
const Lanes = 4

// Int4 is a vector of four signed 32-bit lanes (x, y, z, w), 16 bytes with
// no padding. Operations never modify their receiver.
//
// Indexing with v[i] is bounds-checked; Lane is the unchecked accessor.
type Int4 [4]int32

// NewInt4 returns the vector (x, y, z, w).
func NewInt4(x, y, z, w int32) Int4 {
	return Int4{x, y, z, w}
}

// SetInt4 returns a vector with every lane set to v.
func SetInt4(v int32) Int4 {
	return Int4{v, v, v, v}
}

// Zero4 returns the additive identity.
func Zero4() Int4 { return Int4{} }

// One4 returns the multiplicative identity.
func One4() Int4 { return Int4{1, 1, 1, 1} }

// X returns lane 0.
func (v Int4) X() int32 { return v[0] }

// Y returns lane 1.
func (v Int4) Y() int32 { return v[1] }

// Z returns lane 2.
func (v Int4) Z() int32 { return v[2] }

// W returns lane 3.
func (v Int4) W() int32 { return v[3] }

// Lane returns lane i&3. It never panics; out-of-range indices wrap.
func (v Int4) Lane(i int) int32 {
	return v[i&3]
}

// SetLane sets lane i&3 to x.
func (v *Int4) SetLane(i int, x int32) {
	v[i&3] = x
}

// Lanes returns the four lanes as a tuple.
func (v Int4) Lanes() (x, y, z, w int32) {
	return v[0], v[1], v[2], v[3]
}

// Equal reports whether v and o hold the same lanes.
func (v Int4) Equal(o Int4) bool {
	return v == o
}

// String formats v as "Int4(x, y, z, w)".
func (v Int4) String() string {
	return fmt.Sprintf("Int4(%d, %d, %d, %d)", v[0], v[1], v[2], v[3])
}

// Hash returns a 64-bit hash of the little-endian lane bytes. It is stable
// across processes, builds and architectures.
func (v Int4) Hash() uint64 {
	return hashWords([4]uint32{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])})
}

const (
	laneFalse uint32 = 0
	laneTrue  uint32 = 0xFFFFFFFF
)

// Bool4 is a vector of four boolean lanes.
//
// Each lane is stored as a 32-bit word holding either all zero bits (false)
// or all one bits (true), which is the compare-result format of every
// supported ISA. No other bit pattern is ever observable: the words are
// unexported and every constructor normalizes.
type Bool4 struct {
	m [4]uint32
}

func lane(b bool) uint32 {
	if b {
		return laneTrue
	}
	return laneFalse
}

// NewBool4 returns the vector (x, y, z, w).
func NewBool4(x, y, z, w bool) Bool4 {
	return Bool4{[4]uint32{lane(x), lane(y), lane(z), lane(w)}}
}

// SetBool4 returns a vector with every lane set to b.
func SetBool4(b bool) Bool4 {
	l := lane(b)
	return Bool4{[4]uint32{l, l, l, l}}
}

// True4 returns a vector with every lane true.
func True4() Bool4 { return SetBool4(true) }

// False4 returns a vector with every lane false.
func False4() Bool4 { return Bool4{} }

// X reports whether lane 0 is true. Any nonzero mask word counts.
func (b Bool4) X() bool { return b.m[0] != 0 }

// Y reports whether lane 1 is true.
func (b Bool4) Y() bool { return b.m[1] != 0 }

// Z reports whether lane 2 is true.
func (b Bool4) Z() bool { return b.m[2] != 0 }

// W reports whether lane 3 is true.
func (b Bool4) W() bool { return b.m[3] != 0 }

// Lane returns lane i&3.
func (b Bool4) Lane(i int) bool {
	return b.m[i&3] != 0
}

// SetLane sets lane i&3 to v.
func (b *Bool4) SetLane(i int, v bool) {
	b.m[i&3] = lane(v)
}

// Lanes returns the four lanes as a tuple.
func (b Bool4) Lanes() (x, y, z, w bool) {
	return b.m[0] != 0, b.m[1] != 0, b.m[2] != 0, b.m[3] != 0
}

// Bits returns the physical lane words, each 0 or 0xFFFFFFFF.
func (b Bool4) Bits() [4]uint32 {
	return b.m
}

// Mask reinterprets b as an Int4: true lanes read as -1.
func (b Bool4) Mask() Int4 {
	return reinterpret[Int4](b)
}

// Equal reports whether b and o have identical lane words. It compares the
// physical representation, not the logical booleans.
func (b Bool4) Equal(o Bool4) bool {
	return b.m == o.m
}

// String formats b as "Bool4(x, y, z, w)".
func (b Bool4) String() string {
	return fmt.Sprintf("Bool4(%t, %t, %t, %t)", b.m[0] != 0, b.m[1] != 0, b.m[2] != 0, b.m[3] != 0)
}

// Hash returns a 64-bit hash of the physical lane words.
func (b Bool4) Hash() uint64 {
	return hashWords(b.m)
}

func hashWords(w [4]uint32) uint64 {
	var buf [16]byte
	for i, x := range w {
		binary.LittleEndian.PutUint32(buf[i*4:], x)
	}
	return xxhash.Sum64(buf[:])
}
