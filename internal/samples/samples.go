// Package samples is the verification sample set: pure, parameterless
// computations over hwy types, linked into both images and run by the
// verifier in each.
//
// Every exported value-receiver method of an owner type with no parameters
// and one hwy.Int4, hwy.Bool4, int32 or bool result is a sample. Samples
// must not depend on the build except MetaSamples.DispatchDisabled.
package samples

import (
	"math"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/verify"
)

// Owners returns one value of every owner type.
func Owners() []any {
	return []any{
		MetaSamples{},
		ArithmeticSamples{},
		ComparisonSamples{},
		ReductionSamples{},
		SelectionSamples{},
	}
}

// NewRegistry returns a registry holding Owners.
func NewRegistry() (*verify.Registry, error) {
	return verify.NewRegistry(Owners()...)
}

var (
	edge  = hwy.NewInt4(math.MinInt32, -1, 0, math.MaxInt32)
	mixed = hwy.NewInt4(46341, -65536, 7, -13)
)

// MetaSamples probes the build itself.
type MetaSamples struct{}

// DispatchDisabled is false in the accelerated build and true in the
// scalar build. It is the one sample expected to differ.
func (MetaSamples) DispatchDisabled() bool { return hwy.DispatchDisabled() }

type ArithmeticSamples struct{}

func (ArithmeticSamples) Add() hwy.Int4 { return edge.Add(mixed) }
func (ArithmeticSamples) Sub() hwy.Int4 { return edge.Sub(mixed) }

// MulOverflow wraps in every lane.
func (ArithmeticSamples) MulOverflow() hwy.Int4 { return mixed.Mul(mixed).Mul(edge) }

func (ArithmeticSamples) Div() hwy.Int4 {
	return edge.Div(hwy.NewInt4(-1, 3, 5, -7))
}

func (ArithmeticSamples) Rem() hwy.Int4 {
	return hwy.NewInt4(-20, 20, math.MinInt32, 13).Rem(hwy.NewInt4(7, -7, -1, 13))
}

func (ArithmeticSamples) Neg() hwy.Int4    { return edge.Neg() }
func (ArithmeticSamples) Not() hwy.Int4    { return mixed.Not() }
func (ArithmeticSamples) And() hwy.Int4    { return edge.And(mixed) }
func (ArithmeticSamples) Or() hwy.Int4     { return edge.Or(mixed) }
func (ArithmeticSamples) Xor() hwy.Int4    { return edge.Xor(mixed) }
func (ArithmeticSamples) AndNot() hwy.Int4 { return mixed.AndNot(edge) }
func (ArithmeticSamples) Shl() hwy.Int4    { return mixed.Shl(17) }
func (ArithmeticSamples) Shr() hwy.Int4    { return edge.Shr(31).Add(mixed.Shr(3)) }
func (ArithmeticSamples) ShrU() hwy.Int4   { return edge.ShrU(1).Xor(mixed.ShrU(29)) }

// ShiftCountWraps uses a count of 35, taken as 3.
func (ArithmeticSamples) ShiftCountWraps() hwy.Int4 { return mixed.Shl(35) }

type ComparisonSamples struct{}

func (ComparisonSamples) Eq() hwy.Bool4 { return edge.Eq(hwy.NewInt4(math.MinInt32, 1, 0, 0)) }
func (ComparisonSamples) Ne() hwy.Bool4 { return edge.Ne(hwy.NewInt4(math.MinInt32, 1, 0, 0)) }
func (ComparisonSamples) Gt() hwy.Bool4 { return edge.Gt(mixed) }
func (ComparisonSamples) Ge() hwy.Bool4 { return edge.Ge(hwy.NewInt4(math.MinInt32, 0, 0, 0)) }
func (ComparisonSamples) Lt() hwy.Bool4 { return edge.Lt(mixed) }
func (ComparisonSamples) Le() hwy.Bool4 { return mixed.Le(hwy.SetInt4(7)) }

// NonZero maps even lanes to true as well.
func (ComparisonSamples) NonZero() hwy.Bool4 { return hwy.NewInt4(2, 0, -4, 1).Bool4() }

func (ComparisonSamples) BoolNot() hwy.Bool4 { return hwy.NewBool4(true, false, true, false).Not() }

func (ComparisonSamples) BoolOps() hwy.Bool4 {
	a := hwy.NewBool4(true, true, false, false)
	b := hwy.NewBool4(true, false, true, false)
	return a.And(b).Or(a.Xor(b)).Eq(a.Ne(b))
}

func (ComparisonSamples) BoolToInt4() hwy.Int4 { return hwy.NewBool4(true, false, false, true).Int4() }
func (ComparisonSamples) BoolMask() hwy.Int4   { return edge.Gt(mixed).Mask() }

type ReductionSamples struct{}

// Dot is 1*2 + 2*3 + 3*4 + 4*5 = 40.
func (ReductionSamples) Dot() int32 {
	return hwy.Dot(hwy.NewInt4(1, 2, 3, 4), hwy.NewInt4(2, 3, 4, 5))
}

func (ReductionSamples) DotOverflow() int32 { return hwy.Dot(mixed, edge) }

func (ReductionSamples) HorizontalAdd() int32 {
	return hwy.HorizontalAdd(hwy.NewInt4(math.MaxInt32, 1, math.MaxInt32, 1))
}

func (ReductionSamples) AllTrue() bool    { return hwy.All(hwy.True4()) }
func (ReductionSamples) AnyLast() bool    { return hwy.Any(hwy.NewBool4(false, false, false, true)) }
func (ReductionSamples) AllButLast() bool { return hwy.All(hwy.NewBool4(true, true, true, false)) }
func (ReductionSamples) AnyNone() bool    { return hwy.Any(hwy.False4()) }

// AnyNonZero sees a lane whose only set bit is bit 1.
func (ReductionSamples) AnyNonZero() bool { return hwy.AnyNonZero(hwy.NewInt4(0, 0, 2, 0)) }
func (ReductionSamples) AllNonZero() bool { return hwy.AllNonZero(mixed) }

type SelectionSamples struct{}

func (SelectionSamples) Abs() hwy.Int4 { return hwy.Abs(mixed) }

// AbsMin maps MinInt32 to itself.
func (SelectionSamples) AbsMin() hwy.Int4 { return hwy.Abs(hwy.SetInt4(math.MinInt32)) }

func (SelectionSamples) Min() hwy.Int4 { return hwy.Min(edge, mixed) }
func (SelectionSamples) Max() hwy.Int4 { return hwy.Max(edge, mixed) }

func (SelectionSamples) Clamp() hwy.Int4 {
	return hwy.Clamp(edge, hwy.SetInt4(-100), hwy.SetInt4(100))
}

// ClampInverted has lo > hi, so lo wins.
func (SelectionSamples) ClampInverted() hwy.Int4 {
	return hwy.Clamp(mixed, hwy.SetInt4(100), hwy.SetInt4(-100))
}

func (SelectionSamples) Sign() hwy.Int4 { return hwy.Sign(edge) }

func (SelectionSamples) Select() hwy.Int4 {
	return hwy.Select(hwy.NewBool4(true, false, false, true), edge, mixed)
}
