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

// This file provides pure Go (scalar) bodies of every operation. They seed
// every dispatch table and are the only bodies compiled under noasm; every
// accelerated body must match them bit for bit.

func scalarKernels() *kernels {
	return &kernels{
		capability:    CapNone,
		add:           addFallback,
		sub:           subFallback,
		mul:           mulFallback,
		div:           divFallback,
		rem:           remFallback,
		and:           andFallback,
		or:            orFallback,
		xor:           xorFallback,
		not:           notFallback,
		neg:           negFallback,
		abs:           absFallback,
		shl:           shlFallback,
		shr:           shrFallback,
		shru:          shruFallback,
		min:           minFallback,
		max:           maxFallback,
		eq:            eqFallback,
		ne:            neFallback,
		gt:            gtFallback,
		ge:            geFallback,
		nonZero:       nonZeroFallback,
		lowBit:        lowBitFallback,
		sel:           selectFallback,
		horizontalAdd: horizontalAddFallback,
		anyMask:       anyMaskFallback,
		allMask:       allMaskFallback,
	}
}

func maskLane(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func addFallback(a, b Int4) Int4 { return Int4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }
func subFallback(a, b Int4) Int4 { return Int4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }
func mulFallback(a, b Int4) Int4 { return Int4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]} }

// divFallback truncates toward zero. A zero divisor lane panics with the
// runtime's integer divide error; MinInt32 / -1 wraps to MinInt32.
func divFallback(a, b Int4) Int4 { return Int4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]} }

// remFallback has the sign of the dividend. MinInt32 % -1 is 0.
func remFallback(a, b Int4) Int4 { return Int4{a[0] % b[0], a[1] % b[1], a[2] % b[2], a[3] % b[3]} }

func andFallback(a, b Int4) Int4 { return Int4{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]} }
func orFallback(a, b Int4) Int4  { return Int4{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]} }
func xorFallback(a, b Int4) Int4 { return Int4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]} }

func notFallback(v Int4) Int4 { return Int4{^v[0], ^v[1], ^v[2], ^v[3]} }
func negFallback(v Int4) Int4 { return Int4{-v[0], -v[1], -v[2], -v[3]} }

// absFallback maps MinInt32 to itself, as -MinInt32 wraps.
func absFallback(v Int4) Int4 {
	for i, x := range v {
		if x < 0 {
			v[i] = -x
		}
	}
	return v
}

func shlFallback(v Int4, n uint32) Int4 { return Int4{v[0] << n, v[1] << n, v[2] << n, v[3] << n} }
func shrFallback(v Int4, n uint32) Int4 { return Int4{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n} }

func shruFallback(v Int4, n uint32) Int4 {
	return Int4{
		int32(uint32(v[0]) >> n),
		int32(uint32(v[1]) >> n),
		int32(uint32(v[2]) >> n),
		int32(uint32(v[3]) >> n),
	}
}

func minFallback(a, b Int4) Int4 {
	return Int4{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

func maxFallback(a, b Int4) Int4 {
	return Int4{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

func eqFallback(a, b Int4) Int4 {
	return Int4{maskLane(a[0] == b[0]), maskLane(a[1] == b[1]), maskLane(a[2] == b[2]), maskLane(a[3] == b[3])}
}

func neFallback(a, b Int4) Int4 {
	return Int4{maskLane(a[0] != b[0]), maskLane(a[1] != b[1]), maskLane(a[2] != b[2]), maskLane(a[3] != b[3])}
}

func gtFallback(a, b Int4) Int4 {
	return Int4{maskLane(a[0] > b[0]), maskLane(a[1] > b[1]), maskLane(a[2] > b[2]), maskLane(a[3] > b[3])}
}

func geFallback(a, b Int4) Int4 {
	return Int4{maskLane(a[0] >= b[0]), maskLane(a[1] >= b[1]), maskLane(a[2] >= b[2]), maskLane(a[3] >= b[3])}
}

func nonZeroFallback(v Int4) Int4 {
	return Int4{maskLane(v[0] != 0), maskLane(v[1] != 0), maskLane(v[2] != 0), maskLane(v[3] != 0)}
}

func lowBitFallback(v Int4) Int4 { return Int4{v[0] & 1, v[1] & 1, v[2] & 1, v[3] & 1} }

// selectFallback picks whole lanes. mask lanes are 0 or -1.
func selectFallback(mask, t, f Int4) Int4 {
	for i := range f {
		if mask[i] != 0 {
			f[i] = t[i]
		}
	}
	return f
}

// horizontalAddFallback adds left to right with wraparound.
func horizontalAddFallback(v Int4) int32 { return v[0] + v[1] + v[2] + v[3] }

func anyMaskFallback(m Int4) bool { return m[0] != 0 || m[1] != 0 || m[2] != 0 || m[3] != 0 }
func allMaskFallback(m Int4) bool { return m[0] != 0 && m[1] != 0 && m[2] != 0 && m[3] != 0 }
