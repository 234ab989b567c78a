package hwy

import (
	"math"
	"testing"
)

func TestInt4Arithmetic(t *testing.T) {
	a := NewInt4(10, -20, math.MaxInt32, math.MinInt32)
	b := NewInt4(3, 7, 1, -1)

	tests := []struct {
		name string
		got  Int4
		want Int4
	}{
		{"Add", a.Add(b), Int4{13, -13, math.MinInt32, math.MaxInt32}},
		{"Sub", a.Sub(b), Int4{7, -27, math.MaxInt32 - 1, math.MinInt32 + 1}},
		{"Mul", a.Mul(b), Int4{30, -140, math.MaxInt32, math.MinInt32}},
		{"Div", a.Div(b), Int4{3, -2, math.MaxInt32, math.MinInt32}},
		{"Rem", a.Rem(b), Int4{1, -6, 0, 0}},
		{"Neg", a.Neg(), Int4{-10, 20, -math.MaxInt32, math.MinInt32}},
		{"And", a.And(b), Int4{10 & 3, -20 & 7, 1, math.MinInt32}},
		{"Or", a.Or(b), Int4{10 | 3, -20 | 7, math.MaxInt32, -1}},
		{"Xor", a.Xor(b), Int4{10 ^ 3, -20 ^ 7, math.MaxInt32 - 1, math.MaxInt32}},
		{"Not", a.Not(), Int4{^10, ^-20, math.MinInt32, math.MaxInt32}},
		{"AndNot", a.AndNot(b), Int4{10 &^ 3, -20 &^ 7, math.MaxInt32 - 1, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMulOverflowWraps(t *testing.T) {
	a := NewInt4(65536, 46341, -65536, math.MaxInt32)
	got := a.Mul(a)
	// 46341² = 2147488281 wraps to -2147479015.
	want := Int4{0, -2147479015, 0, 1}
	if got != want {
		t.Errorf("Mul overflow: got %v, want %v", got, want)
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	for _, op := range []struct {
		name string
		f    func()
	}{
		{"Div", func() { NewInt4(1, 2, 3, 4).Div(NewInt4(1, 0, 1, 1)) }},
		{"Rem", func() { NewInt4(1, 2, 3, 4).Rem(NewInt4(1, 1, 1, 0)) }},
	} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("%s by a zero lane did not panic", op.name)
					return
				}
				if err, ok := r.(error); !ok || err.Error() != "runtime error: integer divide by zero" {
					t.Errorf("%s by a zero lane: panic %v, want integer divide by zero", op.name, r)
				}
			}()
			op.f()
		}()
	}
}

func TestShifts(t *testing.T) {
	v := NewInt4(1, -8, math.MinInt32, 0x7F)
	tests := []struct {
		name string
		got  Int4
		want Int4
	}{
		{"Shl 3", v.Shl(3), Int4{8, -64, 0, 0x7F << 3}},
		{"Shr 2", v.Shr(2), Int4{0, -2, math.MinInt32 >> 2, 0x1F}},
		{"ShrU 28", v.ShrU(28), Int4{0, 0xF, 0x8, 0}},
		{"Shl 0", v.Shl(0), v},
		// Counts are taken modulo 32.
		{"Shl 33", v.Shl(33), v.Shl(1)},
		{"Shr 32", v.Shr(32), v},
		{"ShrU -1", v.ShrU(-1), v.ShrU(31)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := NewInt4(1, 5, math.MinInt32, -1)
	b := NewInt4(1, 3, math.MaxInt32, 0)
	tests := []struct {
		name string
		got  Bool4
		want Bool4
	}{
		{"Eq", a.Eq(b), NewBool4(true, false, false, false)},
		{"Ne", a.Ne(b), NewBool4(false, true, true, true)},
		{"Gt", a.Gt(b), NewBool4(false, true, false, false)},
		{"Ge", a.Ge(b), NewBool4(true, true, false, false)},
		{"Lt", a.Lt(b), NewBool4(false, false, true, true)},
		{"Le", a.Le(b), NewBool4(true, false, true, true)},
	}
	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	got := Abs(NewInt4(-5, 5, 0, math.MinInt32+1))
	if want := (Int4{5, 5, 0, math.MaxInt32}); got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
	// MinInt32 maps to itself.
	minVec := SetInt4(math.MinInt32)
	if got := Abs(minVec); got != minVec {
		t.Errorf("Abs(min): got %v, want %v", got, minVec)
	}
}

func TestMinMaxClamp(t *testing.T) {
	a := NewInt4(1, -5, math.MaxInt32, math.MinInt32)
	b := NewInt4(2, -6, 0, 0)
	if got, want := Min(a, b), (Int4{1, -6, 0, math.MinInt32}); got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
	if got, want := Max(a, b), (Int4{2, -5, math.MaxInt32, 0}); got != want {
		t.Errorf("Max: got %v, want %v", got, want)
	}

	lo, hi := SetInt4(-10), SetInt4(10)
	v := NewInt4(-100, 0, 100, 10)
	if got, want := Clamp(v, lo, hi), (Int4{-10, 0, 10, 10}); got != want {
		t.Errorf("Clamp: got %v, want %v", got, want)
	}
	// lo > hi: Min first, then Max, so lo wins.
	if got, want := Clamp(v, hi, lo), SetInt4(10); got != want {
		t.Errorf("Clamp(lo > hi): got %v, want %v", got, want)
	}
}

func TestHorizontalAddAndDot(t *testing.T) {
	if got := HorizontalAdd(NewInt4(1, 2, 3, 4)); got != 10 {
		t.Errorf("HorizontalAdd: got %d, want 10", got)
	}
	if got := HorizontalAdd(NewInt4(math.MaxInt32, 1, math.MaxInt32, 1)); got != 0 {
		t.Errorf("HorizontalAdd wraparound: got %d, want 0", got)
	}
	a, b := NewInt4(1, 2, 3, 4), NewInt4(2, 3, 4, 5)
	if got := Dot(a, b); got != 40 {
		t.Errorf("Dot(%v, %v): got %d, want 40", a, b, got)
	}
	for _, v := range edgeVectors() {
		w := v.Add(One4())
		if got, want := Dot(v, w), HorizontalAdd(v.Mul(w)); got != want {
			t.Errorf("Dot(%v, %v): got %d, want %d", v, w, got, want)
		}
		if got, want := HorizontalAdd(v), v[0]+v[1]+v[2]+v[3]; got != want {
			t.Errorf("HorizontalAdd(%v): got %d, want %d", v, got, want)
		}
	}
}

func TestSelect(t *testing.T) {
	tv := NewInt4(1, 2, 3, 4)
	fv := NewInt4(-1, -2, -3, -4)
	for _, m := range edgeMasks() {
		cond := maskOf(m)
		got := Select(cond, tv, fv)
		for i := range 4 {
			want := fv[i]
			if cond.Lane(i) {
				want = tv[i]
			}
			if got[i] != want {
				t.Errorf("Select(%v)[%d]: got %d, want %d", cond, i, got[i], want)
			}
		}
	}
}

func TestSign(t *testing.T) {
	got := Sign(NewInt4(-7, 0, 9, math.MinInt32))
	if want := (Int4{-1, 0, 1, -1}); got != want {
		t.Errorf("Sign: got %v, want %v", got, want)
	}
	if got := Sign(SetInt4(math.MaxInt32)); got != One4() {
		t.Errorf("Sign(max): got %v, want %v", got, One4())
	}
}

func TestAnyAll(t *testing.T) {
	tests := []struct {
		b        Bool4
		any, all bool
	}{
		{NewBool4(true, true, true, true), true, true},
		{NewBool4(false, false, false, true), true, false},
		{NewBool4(true, true, true, false), true, false},
		{False4(), false, false},
	}
	for _, tt := range tests {
		if got := Any(tt.b); got != tt.any {
			t.Errorf("Any(%v): got %v, want %v", tt.b, got, tt.any)
		}
		if got := All(tt.b); got != tt.all {
			t.Errorf("All(%v): got %v, want %v", tt.b, got, tt.all)
		}
	}

	// Int4 overloads use "lane is nonzero", not the low bit.
	v := NewInt4(0, 0, 2, 0)
	if !AnyNonZero(v) {
		t.Errorf("AnyNonZero(%v): got false, want true", v)
	}
	if AllNonZero(v) {
		t.Errorf("AllNonZero(%v): got true, want false", v)
	}
	if !AllNonZero(NewInt4(2, -2, math.MinInt32, 1<<30)) {
		t.Errorf("AllNonZero: got false, want true")
	}
	if AnyNonZero(Zero4()) {
		t.Errorf("AnyNonZero(zero): got true, want false")
	}
}

func TestDispatchMatchesScalar(t *testing.T) {
	// The exported entry points run the active table; compare against the
	// scalar bodies on the same machine.
	ref := scalarKernels()
	for _, a := range edgeVectors() {
		b := a.Shl(1).Xor(SetInt4(0x1234))
		if got, want := Dot(a, b), ref.horizontalAdd(ref.mul(a, b)); got != want {
			t.Errorf("Dot(%v, %v): got %d, want %d", a, b, got, want)
		}
		if got, want := Sign(a), ref.sub(ref.lowBit(ref.gt(a, Int4{})), ref.lowBit(ref.gt(Int4{}, a))); got != want {
			t.Errorf("Sign(%v): got %v, want %v", a, got, want)
		}
		if got, want := Clamp(a, b.Neg(), b), ref.max(b.Neg(), ref.min(b, a)); got != want {
			t.Errorf("Clamp(%v): got %v, want %v", a, got, want)
		}
	}
}

func FuzzInt4Ops(f *testing.F) {
	f.Add(int32(0), int32(1), int32(-1), int32(math.MinInt32), int32(math.MaxInt32), int32(7), int32(-7), int32(46341), 3)
	f.Add(int32(5), int32(5), int32(5), int32(5), int32(5), int32(5), int32(5), int32(5), 31)
	tables := testTables()
	f.Fuzz(func(t *testing.T, a0, a1, a2, a3, b0, b1, b2, b3 int32, n int) {
		a, b := Int4{a0, a1, a2, a3}, Int4{b0, b1, b2, b3}
		sh := uint32(n) & 31
		ref := tables[0].k
		for _, tbl := range tables[1:] {
			k := tbl.k
			if k.mul(a, b) != ref.mul(a, b) {
				t.Errorf("%s Mul(%v, %v) differs", tbl.name, a, b)
			}
			if k.sub(a, b) != ref.sub(a, b) {
				t.Errorf("%s Sub(%v, %v) differs", tbl.name, a, b)
			}
			if k.min(a, b) != ref.min(a, b) || k.max(a, b) != ref.max(a, b) {
				t.Errorf("%s Min/Max(%v, %v) differs", tbl.name, a, b)
			}
			if k.ge(a, b) != ref.ge(a, b) || k.gt(a, b) != ref.gt(a, b) {
				t.Errorf("%s Ge/Gt(%v, %v) differs", tbl.name, a, b)
			}
			if k.abs(a) != ref.abs(a) {
				t.Errorf("%s Abs(%v) differs", tbl.name, a)
			}
			if k.shr(a, sh) != ref.shr(a, sh) || k.shru(a, sh) != ref.shru(a, sh) {
				t.Errorf("%s Shr/ShrU(%v, %d) differs", tbl.name, a, sh)
			}
			if k.horizontalAdd(a) != ref.horizontalAdd(a) {
				t.Errorf("%s HorizontalAdd(%v) differs", tbl.name, a)
			}
			if k.anyNonZero(a) != ref.anyNonZero(a) {
				t.Errorf("%s AnyNonZero(%v) differs", tbl.name, a)
			}
		}
	})
}
