//go:build !amd64 || noasm

package asm

// Stubs so the package builds off amd64 and under noasm. The hwy dispatch
// table never installs these.

// SSE2
func Add_SSE2_Int32x4(a, b Int32x4) Int32x4          { panic("SSE2 not available") }
func Sub_SSE2_Int32x4(a, b Int32x4) Int32x4          { panic("SSE2 not available") }
func Mul_SSE2_Int32x4(a, b Int32x4) Int32x4          { panic("SSE2 not available") }
func And_SSE2_Int32x4(a, b Int32x4) Int32x4          { panic("SSE2 not available") }
func Or_SSE2_Int32x4(a, b Int32x4) Int32x4           { panic("SSE2 not available") }
func Xor_SSE2_Int32x4(a, b Int32x4) Int32x4          { panic("SSE2 not available") }
func Not_SSE2_Int32x4(v Int32x4) Int32x4             { panic("SSE2 not available") }
func Neg_SSE2_Int32x4(v Int32x4) Int32x4             { panic("SSE2 not available") }
func Shl_SSE2_Int32x4(v Int32x4, n uint32) Int32x4   { panic("SSE2 not available") }
func Shr_SSE2_Int32x4(v Int32x4, n uint32) Int32x4   { panic("SSE2 not available") }
func ShrU_SSE2_Int32x4(v Int32x4, n uint32) Int32x4  { panic("SSE2 not available") }
func Equal_SSE2_Int32x4(a, b Int32x4) Int32x4        { panic("SSE2 not available") }
func NotEqual_SSE2_Int32x4(a, b Int32x4) Int32x4     { panic("SSE2 not available") }
func Greater_SSE2_Int32x4(a, b Int32x4) Int32x4      { panic("SSE2 not available") }
func GreaterEqual_SSE2_Int32x4(a, b Int32x4) Int32x4 { panic("SSE2 not available") }
func EqualZero_SSE2_Int32x4(v Int32x4) Int32x4       { panic("SSE2 not available") }
func LowBit_SSE2_Int32x4(v Int32x4) Int32x4          { panic("SSE2 not available") }
func Select_SSE2_Int32x4(mask, t, f Int32x4) Int32x4 { panic("SSE2 not available") }
func ReduceSum_SSE2_Int32x4(v Int32x4) int32         { panic("SSE2 not available") }

// SSE
func ReduceSum_SSE_Int32x4(v Int32x4) int32 { panic("SSE not available") }
func AnyTrue_SSE_Int32x4(v Int32x4) bool    { panic("SSE not available") }
func AllTrue_SSE_Int32x4(v Int32x4) bool    { panic("SSE not available") }

// SSSE3
func Abs_SSSE3_Int32x4(v Int32x4) Int32x4 { panic("SSSE3 not available") }

// SSE4.1
func Mul_SSE41_Int32x4(a, b Int32x4) Int32x4 { panic("SSE41 not available") }
func Min_SSE41_Int32x4(a, b Int32x4) Int32x4 { panic("SSE41 not available") }
func Max_SSE41_Int32x4(a, b Int32x4) Int32x4 { panic("SSE41 not available") }
func AnyTrue_SSE41_Int32x4(v Int32x4) bool   { panic("SSE41 not available") }
func AllTrue_SSE41_Int32x4(v Int32x4) bool   { panic("SSE41 not available") }
