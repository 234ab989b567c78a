//go:build amd64 && !noasm

package hwy

import "github.com/ajroetker/go-lanes/hwy/asm"

func init() {
	registerKernels(CapSSE, func(k *kernels) {
		k.horizontalAdd = func(v Int4) int32 { return asm.ReduceSum_SSE_Int32x4(vecOf(v)) }
		k.anyMask = func(m Int4) bool { return asm.AnyTrue_SSE_Int32x4(vecOf(m)) }
		k.allMask = func(m Int4) bool { return asm.AllTrue_SSE_Int32x4(vecOf(m)) }
	})

	registerKernels(CapSSE2, func(k *kernels) {
		k.add = binarySSE(asm.Add_SSE2_Int32x4)
		k.sub = binarySSE(asm.Sub_SSE2_Int32x4)
		k.mul = binarySSE(asm.Mul_SSE2_Int32x4)
		k.and = binarySSE(asm.And_SSE2_Int32x4)
		k.or = binarySSE(asm.Or_SSE2_Int32x4)
		k.xor = binarySSE(asm.Xor_SSE2_Int32x4)
		k.not = unarySSE(asm.Not_SSE2_Int32x4)
		k.neg = unarySSE(asm.Neg_SSE2_Int32x4)
		k.shl = shiftSSE(asm.Shl_SSE2_Int32x4)
		k.shr = shiftSSE(asm.Shr_SSE2_Int32x4)
		k.shru = shiftSSE(asm.ShrU_SSE2_Int32x4)
		k.eq = binarySSE(asm.Equal_SSE2_Int32x4)
		k.ne = binarySSE(asm.NotEqual_SSE2_Int32x4)
		k.gt = binarySSE(asm.Greater_SSE2_Int32x4)
		k.ge = binarySSE(asm.GreaterEqual_SSE2_Int32x4)
		k.nonZero = func(v Int4) Int4 {
			return int4Of(asm.Not_SSE2_Int32x4(asm.EqualZero_SSE2_Int32x4(vecOf(v))))
		}
		k.lowBit = unarySSE(asm.LowBit_SSE2_Int32x4)
		k.sel = func(mask, t, f Int4) Int4 {
			return int4Of(asm.Select_SSE2_Int32x4(vecOf(mask), vecOf(t), vecOf(f)))
		}
		k.horizontalAdd = func(v Int4) int32 { return asm.ReduceSum_SSE2_Int32x4(vecOf(v)) }
	})

	registerKernels(CapSSSE3, func(k *kernels) {
		k.abs = unarySSE(asm.Abs_SSSE3_Int32x4)
	})

	registerKernels(CapSSE41, func(k *kernels) {
		k.mul = binarySSE(asm.Mul_SSE41_Int32x4)
		k.min = binarySSE(asm.Min_SSE41_Int32x4)
		k.max = binarySSE(asm.Max_SSE41_Int32x4)
		k.anyMask = func(m Int4) bool { return asm.AnyTrue_SSE41_Int32x4(vecOf(m)) }
		k.allMask = func(m Int4) bool { return asm.AllTrue_SSE41_Int32x4(vecOf(m)) }
		// PTEST tests every bit, so no mask conversion is needed.
		k.anyNonZero = func(v Int4) bool { return asm.AnyTrue_SSE41_Int32x4(vecOf(v)) }
	})
}

func binarySSE(f func(a, b asm.Int32x4) asm.Int32x4) func(a, b Int4) Int4 {
	return func(a, b Int4) Int4 { return int4Of(f(vecOf(a), vecOf(b))) }
}

func unarySSE(f func(v asm.Int32x4) asm.Int32x4) func(v Int4) Int4 {
	return func(v Int4) Int4 { return int4Of(f(vecOf(v))) }
}

func shiftSSE(f func(v asm.Int32x4, n uint32) asm.Int32x4) func(v Int4, n uint32) Int4 {
	return func(v Int4, n uint32) Int4 { return int4Of(f(vecOf(v), n)) }
}
