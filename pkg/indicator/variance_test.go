package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Variance_Sample(t *testing.T) {
	v, err := NewVariance(10, talibSmall[:19], true)
	assert.NoError(t, err)
	assert.Equal(t, 10, v.Period())
	assert.True(t, v.IsSample())
	assert.InDelta(t, 11.31711, float64(v.Value()), testDelta)

	assert.InDelta(t, 12.190039166666667, float64(v.Next(talibSmall[19])), testDelta)
}

func Test_Variance_Population(t *testing.T) {
	v, err := NewVariance(10, talibSmall[:19], false)
	assert.NoError(t, err)
	assert.False(t, v.IsSample())
	assert.InDelta(t, 10.185399, float64(v.Value()), testDelta)

	assert.InDelta(t, 10.97103525, float64(v.Next(talibSmall[19])), testDelta)
}

func Test_Variance_Validation(t *testing.T) {
	_, err := NewVariance(0, talibSmall, false)
	assert.ErrorIs(t, err, ErrInvalidSize)

	// The sample estimator divides by period-1 and rejects a period of 1.
	_, err = NewVariance(1, talibSmall, true)
	assert.ErrorIs(t, err, ErrInvalidSize)

	v, err := NewVariance(1, talibSmall, false)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, float64(v.Value()), testDelta)

	_, err = NewVariance(10, talibSmall[:9], true)
	assert.ErrorIs(t, err, ErrInvalidData)
}
