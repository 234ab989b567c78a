package verify

import (
	"fmt"

	"github.com/ajroetker/go-lanes/hwy"
)

// Kind is the type of a sample result.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt4
	KindBool4
	KindInt32
	KindBool
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt4:    "int4",
	KindBool4:   "bool4",
	KindInt32:   "int32",
	KindBool:    "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if string(b) == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("verify: unknown kind %q", b)
}

// Value is a sample result in a form that crosses the image boundary
// without loss. Bits holds the physical lane words for vectors (for a Bool4,
// 0 or 0xFFFFFFFF) and the scalar in Bits[0] otherwise.
type Value struct {
	Kind Kind      `json:"kind" yaml:"kind"`
	Bits [4]uint32 `json:"bits" yaml:"bits,flow"`
}

// ValueOf converts a sample result into a Value.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case hwy.Int4:
		return Value{Kind: KindInt4, Bits: [4]uint32{uint32(x[0]), uint32(x[1]), uint32(x[2]), uint32(x[3])}}, nil
	case hwy.Bool4:
		return Value{Kind: KindBool4, Bits: x.Bits()}, nil
	case int32:
		return Value{Kind: KindInt32, Bits: [4]uint32{uint32(x)}}, nil
	case bool:
		var b uint32
		if x {
			b = 1
		}
		return Value{Kind: KindBool, Bits: [4]uint32{b}}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedResult, x)
	}
}

// Equal reports full bit-pattern equality.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Int4 returns v as an Int4. It is only meaningful for KindInt4.
func (v Value) Int4() hwy.Int4 {
	return hwy.NewInt4(int32(v.Bits[0]), int32(v.Bits[1]), int32(v.Bits[2]), int32(v.Bits[3]))
}

// String renders the value with its physical representation, so a corrupt
// Bool4 lane is visible.
func (v Value) String() string {
	switch v.Kind {
	case KindInt4:
		return v.Int4().String()
	case KindBool4:
		if b, err := hwy.Bool4FromBits(v.Bits); err == nil {
			return b.String()
		}
		return fmt.Sprintf("Bool4(%#08x, %#08x, %#08x, %#08x)", v.Bits[0], v.Bits[1], v.Bits[2], v.Bits[3])
	case KindInt32:
		return fmt.Sprint(int32(v.Bits[0]))
	case KindBool:
		return fmt.Sprint(v.Bits[0] != 0)
	default:
		return "invalid"
	}
}
