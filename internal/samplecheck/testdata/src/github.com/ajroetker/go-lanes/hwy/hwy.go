package hwy

type Int4 [4]int32

type Bool4 struct{ m [4]uint32 }

func NewInt4(x, y, z, w int32) Int4 { return Int4{x, y, z, w} }

func (v Int4) Add(o Int4) Int4 { return Int4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]} }

func (v Int4) Eq(o Int4) Bool4 {
	var b Bool4
	for i := range v {
		if v[i] == o[i] {
			b.m[i] = 0xFFFFFFFF
		}
	}
	return b
}
