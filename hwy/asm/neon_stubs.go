//go:build !arm64 || noasm

package asm

// Stub implementations for non-ARM64 or noasm builds.
// These are never installed; the hwy package uses other bodies there.

func Add_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Sub_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Mul_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func And_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Or_NEON_Int32x4(a, b Int32x4) Int32x4           { panic("NEON not available") }
func Xor_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Not_NEON_Int32x4(v Int32x4) Int32x4             { panic("NEON not available") }
func Neg_NEON_Int32x4(v Int32x4) Int32x4             { panic("NEON not available") }
func Abs_NEON_Int32x4(v Int32x4) Int32x4             { panic("NEON not available") }
func Shl_NEON_Int32x4(v Int32x4, n uint32) Int32x4   { panic("NEON not available") }
func Shr_NEON_Int32x4(v Int32x4, n uint32) Int32x4   { panic("NEON not available") }
func ShrU_NEON_Int32x4(v Int32x4, n uint32) Int32x4  { panic("NEON not available") }
func Equal_NEON_Int32x4(a, b Int32x4) Int32x4        { panic("NEON not available") }
func NotEqual_NEON_Int32x4(a, b Int32x4) Int32x4     { panic("NEON not available") }
func Greater_NEON_Int32x4(a, b Int32x4) Int32x4      { panic("NEON not available") }
func GreaterEqual_NEON_Int32x4(a, b Int32x4) Int32x4 { panic("NEON not available") }
func EqualZero_NEON_Int32x4(v Int32x4) Int32x4       { panic("NEON not available") }
func LowBit_NEON_Int32x4(v Int32x4) Int32x4          { panic("NEON not available") }
func Min_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Max_NEON_Int32x4(a, b Int32x4) Int32x4          { panic("NEON not available") }
func Select_NEON_Int32x4(mask, t, f Int32x4) Int32x4 { panic("NEON not available") }
func ReduceSum_NEON_Int32x4(v Int32x4) int32         { panic("NEON not available") }
func AnyTrue_NEON_Int32x4(v Int32x4) bool            { panic("NEON not available") }
func AllTrue_NEON_Int32x4(v Int32x4) bool            { panic("NEON not available") }
