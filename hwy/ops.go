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

// Abs returns the absolute value of every lane. MinInt32 maps to itself.
func Abs(v Int4) Int4 {
	return active().abs(v)
}

// Min returns the signed lane-wise minimum of a and b.
func Min(a, b Int4) Int4 {
	return active().min(a, b)
}

// Max returns the signed lane-wise maximum of a and b.
func Max(a, b Int4) Int4 {
	return active().max(a, b)
}

// Clamp returns Max(lo, Min(hi, v)). Where lo > hi in some lane the result
// in that lane is lo.
func Clamp(v, lo, hi Int4) Int4 {
	k := active()
	return k.max(lo, k.min(hi, v))
}

// HorizontalAdd returns v.X() + v.Y() + v.Z() + v.W() with wraparound.
func HorizontalAdd(v Int4) int32 {
	return active().horizontalAdd(v)
}

// Dot returns the sum of the lane-wise products of a and b, with
// wraparound. It is HorizontalAdd(a.Mul(b)).
func Dot(a, b Int4) int32 {
	k := active()
	return k.horizontalAdd(k.mul(a, b))
}

// Select returns t in the lanes where cond is true and f elsewhere. Both
// t and f are evaluated by the caller; this is data selection, not control
// flow.
func Select(cond Bool4, t, f Int4) Int4 {
	return active().sel(cond.Mask(), t, f)
}

// Sign returns 1, 0 or -1 per lane following the sign of v.
func Sign(v Int4) Int4 {
	k := active()
	var zero Int4
	return k.sub(k.lowBit(k.gt(v, zero)), k.lowBit(k.gt(zero, v)))
}

// Any reports whether at least one lane of b is true.
func Any(b Bool4) bool {
	return active().anyMask(b.Mask())
}

// All reports whether every lane of b is true.
func All(b Bool4) bool {
	return active().allMask(b.Mask())
}

// AnyNonZero reports whether at least one lane of v is nonzero. It is
// Any(v.Bool4()).
func AnyNonZero(v Int4) bool {
	return active().anyNonZero(v)
}

// AllNonZero reports whether every lane of v is nonzero. It is
// All(v.Bool4()).
func AllNonZero(v Int4) bool {
	k := active()
	return k.allMask(k.nonZero(v))
}
