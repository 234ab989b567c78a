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

package hwy

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-lanes/hwy/asm"
)

// ErrInvalidMask is returned when a lane word is neither all zero bits nor
// all one bits and so cannot back a Bool4.
var ErrInvalidMask = errors.New("hwy: lane is not an all-zero or all-one mask")

// Int4, Bool4 and asm.Int32x4 share one 16-byte layout. These fail to
// compile if any of them drifts.
var (
	_ [unsafe.Sizeof(Int4{})]struct{} = [unsafe.Sizeof(asm.Int32x4{})]struct{}{}
	_ [unsafe.Sizeof(Bool4{})]struct{} = [unsafe.Sizeof(asm.Int32x4{})]struct{}{}
	_ [unsafe.Alignof(Bool4{})]struct{} = [unsafe.Alignof(Int4{})]struct{}{}
)

// reinterpret returns the bits of v viewed as a To. Both types must have the
// same size; callers pin that with the assertions above.
func reinterpret[To, From any](v From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(v) {
		panic(fmt.Sprintf("hwy: reinterpret %T (%d bytes) as %T (%d bytes)", v, unsafe.Sizeof(v), to, unsafe.Sizeof(to)))
	}
	return *(*To)(unsafe.Pointer(&v))
}

func vecOf(v Int4) asm.Int32x4 { return reinterpret[asm.Int32x4](v) }
func int4Of(v asm.Int32x4) Int4 { return reinterpret[Int4](v) }

// Vec returns v as a native machine vector.
func (v Int4) Vec() asm.Int32x4 {
	return vecOf(v)
}

// Int4FromVec returns the lanes of a native machine vector.
func Int4FromVec(v asm.Int32x4) Int4 {
	return int4Of(v)
}

// Vec returns the mask words of b as a native machine vector.
func (b Bool4) Vec() asm.Int32x4 {
	return reinterpret[asm.Int32x4](b)
}

// Bool4FromVec returns the Bool4 backed by the mask in v, or ErrInvalidMask
// if some lane is not all zeros or all ones.
func Bool4FromVec(v asm.Int32x4) (Bool4, error) {
	return Bool4FromBits(v.Uint32s())
}

// Bool4FromBits returns the Bool4 with the given lane words.
func Bool4FromBits(bits [4]uint32) (Bool4, error) {
	for i, w := range bits {
		if w != laneFalse && w != laneTrue {
			return Bool4{}, fmt.Errorf("lane %d is %#08x: %w", i, w, ErrInvalidMask)
		}
	}
	return Bool4{bits}, nil
}

// maskOf views a kernel result as a Bool4. Kernels that produce compare
// results only ever write 0 or -1 lanes.
func maskOf(v Int4) Bool4 { return reinterpret[Bool4](v) }

// AsInt4s views s as a slice of Int4 without copying. Trailing elements
// that do not fill a whole vector are not included.
func AsInt4s(s []int32) []Int4 {
	if len(s) < Lanes {
		return nil
	}
	return unsafe.Slice((*Int4)(unsafe.Pointer(&s[0])), len(s)/Lanes)
}
