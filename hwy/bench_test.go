package hwy

import (
	"math/rand/v2"
	"testing"
)

const benchSize = 1 << 20

func benchData() (a, b []int32) {
	r := rand.New(rand.NewPCG(1, 2))
	a = make([]int32, benchSize)
	b = make([]int32, benchSize)
	for i := range a {
		a[i] = r.Int32()
		b[i] = r.Int32()
	}
	return a, b
}

// BenchmarkMulAddScalar and BenchmarkMulAddInt4 compute a[i] += a[i]*b[i]
// over the same data, lane by lane and four lanes at a time.
func BenchmarkMulAddScalar(b *testing.B) {
	x, y := benchData()
	b.SetBytes(benchSize * 4)
	for b.Loop() {
		for i := range x {
			x[i] += x[i] * y[i]
		}
	}
}

func BenchmarkMulAddInt4(b *testing.B) {
	x, y := benchData()
	xv, yv := AsInt4s(x), AsInt4s(y)
	b.SetBytes(benchSize * 4)
	for b.Loop() {
		for i := range xv {
			xv[i] = xv[i].Add(xv[i].Mul(yv[i]))
		}
	}
}

func BenchmarkDot(b *testing.B) {
	for _, tbl := range testTables() {
		b.Run(tbl.name, func(b *testing.B) {
			k := tbl.k
			x, y := NewInt4(1, 2, 3, 4), NewInt4(2, 3, 4, 5)
			var sum int32
			for b.Loop() {
				sum += k.horizontalAdd(k.mul(x, y))
			}
			_ = sum
		})
	}
}

func BenchmarkAll(b *testing.B) {
	for _, tbl := range testTables() {
		b.Run(tbl.name, func(b *testing.B) {
			k := tbl.k
			m := True4().Mask()
			n := 0
			for b.Loop() {
				if k.allMask(m) {
					n++
				}
			}
			_ = n
		})
	}
}

func TestAsInt4s(t *testing.T) {
	s := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := AsInt4s(s)
	if len(v) != 2 || v[1] != NewInt4(5, 6, 7, 8) {
		t.Fatalf("AsInt4s: got %v", v)
	}
	v[0] = v[0].Add(One4())
	if s[0] != 2 || s[3] != 5 {
		t.Errorf("AsInt4s does not alias: s = %v", s)
	}
	if AsInt4s(s[:3]) != nil {
		t.Error("AsInt4s of a short slice must be nil")
	}
}
