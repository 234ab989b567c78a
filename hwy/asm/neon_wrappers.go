//go:build !noasm && arm64

package asm

//go:noescape
func add_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func sub_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func mul_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func and_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func or_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func xor_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func not_i32x4_neon(v, dst *Int32x4)

//go:noescape
func neg_i32x4_neon(v, dst *Int32x4)

//go:noescape
func abs_i32x4_neon(v, dst *Int32x4)

//go:noescape
func shl_i32x4_neon(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func shr_i32x4_neon(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func shru_i32x4_neon(v *Int32x4, n uint64, dst *Int32x4)

//go:noescape
func cmpeq_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func cmpne_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func cmpgt_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func cmpge_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func cmpeqz_i32x4_neon(v, dst *Int32x4)

//go:noescape
func lsb_i32x4_neon(v, dst *Int32x4)

//go:noescape
func min_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func max_i32x4_neon(a, b, dst *Int32x4)

//go:noescape
func select_i32x4_neon(mask, t, f, dst *Int32x4)

//go:noescape
func hadd_i32x4_neon(v *Int32x4) int32

//go:noescape
func anytrue_i32x4_neon(v *Int32x4) bool

//go:noescape
func alltrue_i32x4_neon(v *Int32x4) bool

// Add_NEON_Int32x4 returns a + b per lane.
func Add_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	add_i32x4_neon(&a, &b, &dst)
	return dst
}

// Sub_NEON_Int32x4 returns a - b per lane.
func Sub_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	sub_i32x4_neon(&a, &b, &dst)
	return dst
}

// Mul_NEON_Int32x4 returns the low 32 bits of a * b per lane.
func Mul_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	mul_i32x4_neon(&a, &b, &dst)
	return dst
}

func And_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	and_i32x4_neon(&a, &b, &dst)
	return dst
}

func Or_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	or_i32x4_neon(&a, &b, &dst)
	return dst
}

func Xor_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	xor_i32x4_neon(&a, &b, &dst)
	return dst
}

func Not_NEON_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	not_i32x4_neon(&v, &dst)
	return dst
}

// Neg_NEON_Int32x4 returns 0 - v per lane. MinInt32 maps to itself.
func Neg_NEON_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	neg_i32x4_neon(&v, &dst)
	return dst
}

// Abs_NEON_Int32x4 returns |v| per lane. MinInt32 maps to itself.
func Abs_NEON_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	abs_i32x4_neon(&v, &dst)
	return dst
}

// Shl_NEON_Int32x4 shifts every lane left by n. n must be < 32.
func Shl_NEON_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shl_i32x4_neon(&v, uint64(n), &dst)
	return dst
}

// Shr_NEON_Int32x4 is an arithmetic right shift: SSHL by -n.
func Shr_NEON_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shr_i32x4_neon(&v, uint64(n), &dst)
	return dst
}

// ShrU_NEON_Int32x4 is a logical right shift: USHL by -n.
func ShrU_NEON_Int32x4(v Int32x4, n uint32) Int32x4 {
	var dst Int32x4
	shru_i32x4_neon(&v, uint64(n), &dst)
	return dst
}

// Equal_NEON_Int32x4 returns an all-ones lane where a == b.
func Equal_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpeq_i32x4_neon(&a, &b, &dst)
	return dst
}

func NotEqual_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpne_i32x4_neon(&a, &b, &dst)
	return dst
}

// Greater_NEON_Int32x4 compares signed lanes.
func Greater_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpgt_i32x4_neon(&a, &b, &dst)
	return dst
}

func GreaterEqual_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	cmpge_i32x4_neon(&a, &b, &dst)
	return dst
}

func EqualZero_NEON_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	cmpeqz_i32x4_neon(&v, &dst)
	return dst
}

// LowBit_NEON_Int32x4 returns v & 1 per lane.
func LowBit_NEON_Int32x4(v Int32x4) Int32x4 {
	var dst Int32x4
	lsb_i32x4_neon(&v, &dst)
	return dst
}

func Min_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	min_i32x4_neon(&a, &b, &dst)
	return dst
}

func Max_NEON_Int32x4(a, b Int32x4) Int32x4 {
	var dst Int32x4
	max_i32x4_neon(&a, &b, &dst)
	return dst
}

// Select_NEON_Int32x4 takes bits of t where mask is set and bits of f elsewhere (BSL).
func Select_NEON_Int32x4(mask, t, f Int32x4) Int32x4 {
	var dst Int32x4
	select_i32x4_neon(&mask, &t, &f, &dst)
	return dst
}

// ReduceSum_NEON_Int32x4 returns the wrapping sum of the lanes (ADDV).
func ReduceSum_NEON_Int32x4(v Int32x4) int32 {
	return hadd_i32x4_neon(&v)
}

// AnyTrue_NEON_Int32x4 reports whether any lane of a well-formed mask is set.
func AnyTrue_NEON_Int32x4(v Int32x4) bool {
	return anytrue_i32x4_neon(&v)
}

// AllTrue_NEON_Int32x4 reports whether every lane of a well-formed mask is set.
func AllTrue_NEON_Int32x4(v Int32x4) bool {
	return alltrue_i32x4_neon(&v)
}
