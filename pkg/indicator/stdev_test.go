package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StdDev_Sample(t *testing.T) {
	s, err := NewStdDev(10, talibSmall[:19], true)
	assert.NoError(t, err)
	assert.Equal(t, 10, s.Period())
	assert.True(t, s.IsSample())
	assert.InDelta(t, 3.3640912591664334, float64(s.Value()), testDelta)

	assert.InDelta(t, 3.491423659005975, float64(s.Next(talibSmall[19])), testDelta)
}

func Test_StdDev_Population(t *testing.T) {
	s, err := NewStdDev(10, talibSmall[:19], false)
	assert.NoError(t, err)
	assert.False(t, s.IsSample())
	assert.InDelta(t, 3.1914571906889178, float64(s.Value()), testDelta)

	assert.InDelta(t, 3.3122553117173807, float64(s.Next(talibSmall[19])), testDelta)
}

func Test_StdDev_Validation(t *testing.T) {
	_, err := NewStdDev(1, talibSmall, true)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewStdDev(10, talibSmall[:9], false)
	assert.ErrorIs(t, err, ErrInvalidData)
}
