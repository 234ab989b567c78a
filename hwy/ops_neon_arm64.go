//go:build arm64 && !noasm

package hwy

import "github.com/ajroetker/go-lanes/hwy/asm"

func init() {
	registerKernels(CapNEON, func(k *kernels) {
		k.add = binaryNEON(asm.Add_NEON_Int32x4)
		k.sub = binaryNEON(asm.Sub_NEON_Int32x4)
		k.mul = binaryNEON(asm.Mul_NEON_Int32x4)
		k.and = binaryNEON(asm.And_NEON_Int32x4)
		k.or = binaryNEON(asm.Or_NEON_Int32x4)
		k.xor = binaryNEON(asm.Xor_NEON_Int32x4)
		k.not = unaryNEON(asm.Not_NEON_Int32x4)
		k.neg = unaryNEON(asm.Neg_NEON_Int32x4)
		k.abs = unaryNEON(asm.Abs_NEON_Int32x4)
		k.shl = shiftNEON(asm.Shl_NEON_Int32x4)
		k.shr = shiftNEON(asm.Shr_NEON_Int32x4)
		k.shru = shiftNEON(asm.ShrU_NEON_Int32x4)
		k.min = binaryNEON(asm.Min_NEON_Int32x4)
		k.max = binaryNEON(asm.Max_NEON_Int32x4)
		k.eq = binaryNEON(asm.Equal_NEON_Int32x4)
		k.ne = binaryNEON(asm.NotEqual_NEON_Int32x4)
		k.gt = binaryNEON(asm.Greater_NEON_Int32x4)
		k.ge = binaryNEON(asm.GreaterEqual_NEON_Int32x4)
		k.nonZero = func(v Int4) Int4 {
			return int4Of(asm.Not_NEON_Int32x4(asm.EqualZero_NEON_Int32x4(vecOf(v))))
		}
		k.lowBit = unaryNEON(asm.LowBit_NEON_Int32x4)
		k.sel = func(mask, t, f Int4) Int4 {
			return int4Of(asm.Select_NEON_Int32x4(vecOf(mask), vecOf(t), vecOf(f)))
		}
		k.horizontalAdd = func(v Int4) int32 { return asm.ReduceSum_NEON_Int32x4(vecOf(v)) }
		k.anyMask = func(m Int4) bool { return asm.AnyTrue_NEON_Int32x4(vecOf(m)) }
		k.allMask = func(m Int4) bool { return asm.AllTrue_NEON_Int32x4(vecOf(m)) }
	})
}

func binaryNEON(f func(a, b asm.Int32x4) asm.Int32x4) func(a, b Int4) Int4 {
	return func(a, b Int4) Int4 { return int4Of(f(vecOf(a), vecOf(b))) }
}

func unaryNEON(f func(v asm.Int32x4) asm.Int32x4) func(v Int4) Int4 {
	return func(v Int4) Int4 { return int4Of(f(vecOf(v))) }
}

func shiftNEON(f func(v asm.Int32x4, n uint32) asm.Int32x4) func(v Int4, n uint32) Int4 {
	return func(v Int4, n uint32) Int4 { return int4Of(f(vecOf(v), n)) }
}
