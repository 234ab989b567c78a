//go:build !noasm

package hwy

import "math/bits"

// The WasmSIMD bodies follow the simd128 instruction semantics over a v128
// value held as two 64-bit halves, the way a wasm engine's interpreter
// models the register. Go's wasm port has no v128 intrinsics, so these are
// portable Go; they are installed only when CapWasmSIMD is in the feature
// set, which detection reports on GOARCH=wasm.

// v128 is a 128-bit value. Lane 0 is the low 32 bits of lo.
type v128 struct {
	lo, hi uint64
}

func v128Load(v Int4) v128 {
	return v128{
		lo: uint64(uint32(v[0])) | uint64(uint32(v[1]))<<32,
		hi: uint64(uint32(v[2])) | uint64(uint32(v[3]))<<32,
	}
}

func (x v128) store() Int4 {
	return Int4{int32(x.lo), int32(x.lo >> 32), int32(x.hi), int32(x.hi >> 32)}
}

// i32x4.extract_lane
func (x v128) extractLane(i int) uint32 {
	if i < 2 {
		return uint32(x.lo >> (32 * i))
	}
	return uint32(x.hi >> (32 * (i - 2)))
}

// i32x4.splat
func i32x4Splat(c uint32) v128 {
	w := uint64(c) | uint64(c)<<32
	return v128{w, w}
}

func i32x4Lanewise(x, y v128, f func(a, b uint32) uint32) v128 {
	lane := func(a, b uint64) uint64 {
		return uint64(f(uint32(a), uint32(b))) | uint64(f(uint32(a>>32), uint32(b>>32)))<<32
	}
	return v128{lane(x.lo, y.lo), lane(x.hi, y.hi)}
}

func i32x4Map(x v128, f func(a uint32) uint32) v128 {
	lane := func(a uint64) uint64 {
		return uint64(f(uint32(a))) | uint64(f(uint32(a>>32)))<<32
	}
	return v128{lane(x.lo), lane(x.hi)}
}

func boolWord(b bool) uint32 {
	if b {
		return laneTrue
	}
	return laneFalse
}

func v128And(x, y v128) v128 { return v128{x.lo & y.lo, x.hi & y.hi} }
func v128Or(x, y v128) v128  { return v128{x.lo | y.lo, x.hi | y.hi} }
func v128Xor(x, y v128) v128 { return v128{x.lo ^ y.lo, x.hi ^ y.hi} }
func v128Not(x v128) v128    { return v128{^x.lo, ^x.hi} }

// v128.bitselect takes bits of x where c is set and bits of y elsewhere.
func v128Bitselect(x, y, c v128) v128 {
	return v128{(x.lo & c.lo) | (y.lo &^ c.lo), (x.hi & c.hi) | (y.hi &^ c.hi)}
}

// v128.any_true
func v128AnyTrue(x v128) bool { return x.lo|x.hi != 0 }

// i32x4.all_true
func i32x4AllTrue(x v128) bool {
	for i := range 4 {
		if x.extractLane(i) == 0 {
			return false
		}
	}
	return true
}

func i32x4Add(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return a + b })
}

func i32x4Sub(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return a - b })
}

func i32x4Mul(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 {
		_, lo := bits.Mul32(a, b)
		return lo
	})
}

func i32x4Neg(x v128) v128 { return i32x4Map(x, func(a uint32) uint32 { return -a }) }

func i32x4Abs(x v128) v128 {
	return i32x4Map(x, func(a uint32) uint32 {
		if int32(a) < 0 {
			return -a
		}
		return a
	})
}

// Shift counts are taken modulo the lane width.
func i32x4Shl(x v128, n uint32) v128 {
	return i32x4Map(x, func(a uint32) uint32 { return a << (n & 31) })
}

func i32x4ShrS(x v128, n uint32) v128 {
	return i32x4Map(x, func(a uint32) uint32 { return uint32(int32(a) >> (n & 31)) })
}

func i32x4ShrU(x v128, n uint32) v128 {
	return i32x4Map(x, func(a uint32) uint32 { return a >> (n & 31) })
}

func i32x4Eq(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return boolWord(a == b) })
}

func i32x4Ne(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return boolWord(a != b) })
}

func i32x4GtS(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return boolWord(int32(a) > int32(b)) })
}

func i32x4GeS(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return boolWord(int32(a) >= int32(b)) })
}

func i32x4MinS(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return uint32(min(int32(a), int32(b))) })
}

func i32x4MaxS(x, y v128) v128 {
	return i32x4Lanewise(x, y, func(a, b uint32) uint32 { return uint32(max(int32(a), int32(b))) })
}

func init() {
	registerKernels(CapWasmSIMD, func(k *kernels) {
		k.add = binaryWasm(i32x4Add)
		k.sub = binaryWasm(i32x4Sub)
		k.mul = binaryWasm(i32x4Mul)
		k.and = binaryWasm(v128And)
		k.or = binaryWasm(v128Or)
		k.xor = binaryWasm(v128Xor)
		k.not = unaryWasm(v128Not)
		k.neg = unaryWasm(i32x4Neg)
		k.abs = unaryWasm(i32x4Abs)
		k.shl = shiftWasm(i32x4Shl)
		k.shr = shiftWasm(i32x4ShrS)
		k.shru = shiftWasm(i32x4ShrU)
		k.min = binaryWasm(i32x4MinS)
		k.max = binaryWasm(i32x4MaxS)
		k.eq = binaryWasm(i32x4Eq)
		k.ne = binaryWasm(i32x4Ne)
		k.gt = binaryWasm(i32x4GtS)
		k.ge = binaryWasm(i32x4GeS)
		k.nonZero = func(v Int4) Int4 {
			return i32x4Ne(v128Load(v), v128{}).store()
		}
		k.lowBit = func(v Int4) Int4 {
			return v128And(v128Load(v), i32x4Splat(1)).store()
		}
		k.sel = func(mask, t, f Int4) Int4 {
			return v128Bitselect(v128Load(t), v128Load(f), v128Load(mask)).store()
		}
		k.anyMask = func(m Int4) bool { return v128AnyTrue(v128Load(m)) }
		k.allMask = func(m Int4) bool { return i32x4AllTrue(v128Load(m)) }
	})
}

func binaryWasm(f func(x, y v128) v128) func(a, b Int4) Int4 {
	return func(a, b Int4) Int4 { return f(v128Load(a), v128Load(b)).store() }
}

func unaryWasm(f func(x v128) v128) func(v Int4) Int4 {
	return func(v Int4) Int4 { return f(v128Load(v)).store() }
}

func shiftWasm(f func(x v128, n uint32) v128) func(v Int4, n uint32) Int4 {
	return func(v Int4, n uint32) Int4 { return f(v128Load(v), n).store() }
}
