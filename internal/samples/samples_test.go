package samples

import (
	"testing"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/ajroetker/go-lanes/hwy/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverySampleResolves(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	ids := reg.List()
	require.NotEmpty(t, ids)
	for _, id := range ids {
		_, err := reg.Invoke(id)
		assert.NoError(t, err, id.String())
	}
}

func TestMetaSample(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	v, err := reg.Invoke(verify.DefaultMetaSample)
	require.NoError(t, err)
	want, _ := verify.ValueOf(hwy.DispatchDisabled())
	assert.Equal(t, want, v)
}

func TestKnownValues(t *testing.T) {
	assert.Equal(t, int32(40), ReductionSamples{}.Dot())
	assert.Equal(t, int32(0), ReductionSamples{}.HorizontalAdd())
	assert.True(t, ReductionSamples{}.AllTrue())
	assert.True(t, ReductionSamples{}.AnyLast())
	assert.False(t, ReductionSamples{}.AllButLast())
	assert.False(t, ReductionSamples{}.AnyNone())
	assert.True(t, ReductionSamples{}.AnyNonZero())
	assert.Equal(t, hwy.SetInt4(-2147483648), SelectionSamples{}.AbsMin())
	assert.Equal(t, hwy.SetInt4(100), SelectionSamples{}.ClampInverted())
	assert.Equal(t, hwy.NewInt4(-1, -1, 0, 1), SelectionSamples{}.Sign())
	assert.Equal(t, hwy.NewInt4(1, 0, 0, 1), ComparisonSamples{}.BoolToInt4())
	assert.Equal(t, mixed.Shl(3), ArithmeticSamples{}.ShiftCountWraps())
}

func TestOwnersAreZeroSize(t *testing.T) {
	for _, o := range Owners() {
		_, err := verify.NewRegistry(o)
		assert.NoError(t, err, "%T", o)
	}
}
