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

// Arithmetic is per lane with 32-bit wraparound.

// Add returns v + o.
func (v Int4) Add(o Int4) Int4 { return active().add(v, o) }

// Sub returns v - o.
func (v Int4) Sub(o Int4) Int4 { return active().sub(v, o) }

// Mul returns the low 32 bits of v * o.
func (v Int4) Mul(o Int4) Int4 { return active().mul(v, o) }

// Div returns v / o, truncated toward zero. A zero lane in o panics with a
// runtime integer divide error. MinInt32 / -1 is MinInt32.
func (v Int4) Div(o Int4) Int4 { return active().div(v, o) }

// Rem returns v % o with the sign of v. A zero lane in o panics.
func (v Int4) Rem(o Int4) Int4 { return active().rem(v, o) }

// Neg returns -v. MinInt32 maps to itself.
func (v Int4) Neg() Int4 { return active().neg(v) }

// And returns v & o.
func (v Int4) And(o Int4) Int4 { return active().and(v, o) }

// Or returns v | o.
func (v Int4) Or(o Int4) Int4 { return active().or(v, o) }

// Xor returns v ^ o.
func (v Int4) Xor(o Int4) Int4 { return active().xor(v, o) }

// Not returns ^v.
func (v Int4) Not() Int4 { return active().not(v) }

// AndNot returns v &^ o.
func (v Int4) AndNot(o Int4) Int4 {
	k := active()
	return k.and(v, k.not(o))
}

// Shift counts apply to every lane and are taken modulo 32.

// Shl shifts every lane left by n.
func (v Int4) Shl(n int) Int4 { return active().shl(v, uint32(n)&31) }

// Shr shifts every lane right by n, copying the sign bit.
func (v Int4) Shr(n int) Int4 { return active().shr(v, uint32(n)&31) }

// ShrU shifts every lane right by n, filling with zeros.
func (v Int4) ShrU(n int) Int4 { return active().shru(v, uint32(n)&31) }

// Comparisons are signed.

// Eq returns true in every lane where v == o.
func (v Int4) Eq(o Int4) Bool4 { return maskOf(active().eq(v, o)) }

// Ne returns true in every lane where v != o.
func (v Int4) Ne(o Int4) Bool4 { return maskOf(active().ne(v, o)) }

// Gt returns true in every lane where v > o.
func (v Int4) Gt(o Int4) Bool4 { return maskOf(active().gt(v, o)) }

// Ge returns true in every lane where v >= o.
func (v Int4) Ge(o Int4) Bool4 { return maskOf(active().ge(v, o)) }

// Lt is o.Gt(v).
func (v Int4) Lt(o Int4) Bool4 { return o.Gt(v) }

// Le is o.Ge(v).
func (v Int4) Le(o Int4) Bool4 { return o.Ge(v) }

// Bool4 returns true in every lane of v that is nonzero. Any nonzero value
// maps to true, not just those with the low bit set.
func (v Int4) Bool4() Bool4 { return maskOf(active().nonZero(v)) }
