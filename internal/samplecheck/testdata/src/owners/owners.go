package owners

import "github.com/ajroetker/go-lanes/hwy"

type GoodSamples struct{}

func (GoodSamples) Vector() hwy.Int4 { return hwy.NewInt4(1, 2, 3, 4) }
func (GoodSamples) Mask() hwy.Bool4  { return hwy.NewInt4(1, 2, 3, 4).Eq(hwy.NewInt4(1, 0, 3, 0)) }
func (GoodSamples) Sum() int32       { return 10 }
func (GoodSamples) Flag() bool       { return true }
func (GoodSamples) helper(k int) int { return k }

type FieldSamples struct { // want `sample owner FieldSamples must be an empty struct`
	n int
}

func (FieldSamples) Count() int32 { return 0 }

type IntSamples int // want `sample owner IntSamples must be a struct type`

type BadSamples struct{}

func (*BadSamples) Pointer() int32        { return 0 } // want `BadSamples.Pointer has a pointer receiver; samples use value receivers`
func (BadSamples) Scaled(k int32) int32   { return k } // want `BadSamples.Scaled takes parameters; samples take none`
func (BadSamples) Pair() (int32, bool)    { return 0, false } // want `BadSamples.Pair must return exactly one value`
func (BadSamples) Nothing()               {} // want `BadSamples.Nothing must return exactly one value`
func (BadSamples) Wide() int64            { return 0 } // want `BadSamples.Wide returns int64; samples return hwy.Int4, hwy.Bool4, int32 or bool`
func (BadSamples) Lanes() [4]int32        { return [4]int32{} } // want `BadSamples.Lanes returns \[4\]int32; samples return hwy.Int4, hwy.Bool4, int32 or bool`
func (BadSamples) Local() Vector          { return Vector{} } // want `BadSamples.Local returns Vector; samples return hwy.Int4, hwy.Bool4, int32 or bool`

// Vector shadows the hwy name but is not the hwy type.
type Vector [4]int32

type helper struct{ n int }

func (helper) Scaled(k int) int { return k }

// Samples alone is not an owner name.
type Samples struct{ n int }
