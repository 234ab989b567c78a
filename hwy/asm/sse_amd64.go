//go:build !noasm && amd64

package asm

// Kernels in sse_amd64.s. Operands are passed by pointer; results are
// written to dst or returned in the result slot.

//go:noescape
func add_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func sub_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func mul_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func and_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func or_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func xor_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func not_i32x4_sse2(v, dst *Int32x4)

//go:noescape
func neg_i32x4_sse2(v, dst *Int32x4)

//go:noescape
func shl_i32x4_sse2(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func shr_i32x4_sse2(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func shru_i32x4_sse2(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func cmpeq_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func cmpne_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func cmpgt_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func cmpge_i32x4_sse2(a, b, dst *Int32x4)

//go:noescape
func cmpeqz_i32x4_sse2(v, dst *Int32x4)

//go:noescape
func lsb_i32x4_sse2(v, dst *Int32x4)

//go:noescape
func select_i32x4_sse2(mask, t, f, dst *Int32x4)

//go:noescape
func hadd_i32x4_sse2(v *Int32x4) int32

//go:noescape
func hadd_i32x4_sse(v *Int32x4) int32

//go:noescape
func anytrue_i32x4_sse(v *Int32x4) bool

//go:noescape
func alltrue_i32x4_sse(v *Int32x4) bool

//go:noescape
func abs_i32x4_ssse3(v, dst *Int32x4)

//go:noescape
func mul_i32x4_sse41(a, b, dst *Int32x4)

//go:noescape
func min_i32x4_sse41(a, b, dst *Int32x4)

//go:noescape
func max_i32x4_sse41(a, b, dst *Int32x4)

//go:noescape
func anytrue_i32x4_sse41(v *Int32x4) bool

//go:noescape
func alltrue_i32x4_sse41(v *Int32x4) bool

// ===== SSE2 =====

// Add_SSE2_Int32x4 returns a + b per lane (PADDD).
func Add_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	add_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Sub_SSE2_Int32x4 returns a - b per lane (PSUBD).
func Sub_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	sub_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Mul_SSE2_Int32x4 returns the low 32 bits of a * b per lane.
// SSE2 has no 32-bit lane multiply, so lanes 0/2 and 1/3 go through two
// PMULUDQ and are interleaved back together.
func Mul_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	mul_i32x4_sse2(&a, &b, &dst)
	return dst
}

// And_SSE2_Int32x4 returns a & b (PAND).
func And_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	and_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Or_SSE2_Int32x4 returns a | b (POR).
func Or_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	or_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Xor_SSE2_Int32x4 returns a ^ b (PXOR).
func Xor_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	xor_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Not_SSE2_Int32x4 returns ^v.
func Not_SSE2_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	not_i32x4_sse2(&v, &dst)
	return dst
}

// Neg_SSE2_Int32x4 returns 0 - v per lane.
func Neg_SSE2_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	neg_i32x4_sse2(&v, &dst)
	return dst
}

// Shl_SSE2_Int32x4 shifts every lane left by n (PSLLD). n must be < 32.
func Shl_SSE2_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shl_i32x4_sse2(&v, uint64(n), &dst)
	return dst
}

// Shr_SSE2_Int32x4 shifts every lane right by n, sign-filling (PSRAD).
func Shr_SSE2_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shr_i32x4_sse2(&v, uint64(n), &dst)
	return dst
}

// ShrU_SSE2_Int32x4 shifts every lane right by n, zero-filling (PSRLD).
func ShrU_SSE2_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shru_i32x4_sse2(&v, uint64(n), &dst)
	return dst
}

// Equal_SSE2_Int32x4 returns an all-ones lane where a == b (PCMPEQD).
func Equal_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpeq_i32x4_sse2(&a, &b, &dst)
	return dst
}

// NotEqual_SSE2_Int32x4 returns an all-ones lane where a != b.
func NotEqual_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpne_i32x4_sse2(&a, &b, &dst)
	return dst
}

// Greater_SSE2_Int32x4 returns an all-ones lane where a > b, signed (PCMPGTD).
func Greater_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpgt_i32x4_sse2(&a, &b, &dst)
	return dst
}

// GreaterEqual_SSE2_Int32x4 returns an all-ones lane where a >= b.
// SSE2 has no PCMPGED; this is the complement of b > a.
func GreaterEqual_SSE2_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpge_i32x4_sse2(&a, &b, &dst)
	return dst
}

// EqualZero_SSE2_Int32x4 returns an all-ones lane where v == 0.
func EqualZero_SSE2_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	cmpeqz_i32x4_sse2(&v, &dst)
	return dst
}

// LowBit_SSE2_Int32x4 returns v & 1 per lane.
func LowBit_SSE2_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	lsb_i32x4_sse2(&v, &dst)
	return dst
}

// Select_SSE2_Int32x4 returns (mask & t) + (^mask & f).
// mask lanes must be all-zero or all-one.
func Select_SSE2_Int32x4(mask, t, f Int32x4) Int32x4 {
	var dst Int32x4
	select_i32x4_sse2(&mask, &t, &f, &dst)
	return dst
}

// ReduceSum_SSE2_Int32x4 returns the wrapping sum of the four lanes,
// using two PSHUFD+PADDD rounds.
func ReduceSum_SSE2_Int32x4(v Int32x4) int32 {
	return hadd_i32x4_sse2(&v)
}

// ===== SSE =====

// ReduceSum_SSE_Int32x4 is ReduceSum with SHUFPS shuffles.
func ReduceSum_SSE_Int32x4(v Int32x4) int32 {
	return hadd_i32x4_sse(&v)
}

// AnyTrue_SSE_Int32x4 reports whether any lane has its sign bit set (MOVMSKPS).
func AnyTrue_SSE_Int32x4(v Int32x4) bool {
	return anytrue_i32x4_sse(&v)
}

// AllTrue_SSE_Int32x4 reports whether every lane has its sign bit set (MOVMSKPS).
func AllTrue_SSE_Int32x4(v Int32x4) bool {
	return alltrue_i32x4_sse(&v)
}

// ===== SSSE3 =====

// Abs_SSSE3_Int32x4 returns |v| per lane (PABSD). MinInt32 maps to itself.
func Abs_SSSE3_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	abs_i32x4_ssse3(&v, &dst)
	return dst
}

// ===== SSE4.1 =====

// Mul_SSE41_Int32x4 returns the low 32 bits of a * b per lane (PMULLD).
func Mul_SSE41_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	mul_i32x4_sse41(&a, &b, &dst)
	return dst
}

// Min_SSE41_Int32x4 returns the signed lane-wise minimum (PMINSD).
func Min_SSE41_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	min_i32x4_sse41(&a, &b, &dst)
	return dst
}

// Max_SSE41_Int32x4 returns the signed lane-wise maximum (PMAXSD).
func Max_SSE41_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	max_i32x4_sse41(&a, &b, &dst)
	return dst
}

// AnyTrue_SSE41_Int32x4 reports whether any bit of v is set (PTEST).
func AnyTrue_SSE41_Int32x4(v Int32x4) bool {
	return anytrue_i32x4_sse41(&v)
}

// AllTrue_SSE41_Int32x4 reports whether every bit of v is set (PTEST on ^v).
func AllTrue_SSE41_Int32x4(v Int32x4) bool {
	return alltrue_i32x4_sse41(&v)
}
