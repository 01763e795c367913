package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DEMA(t *testing.T) {
	dema, err := NewDEMA(10, talibSmall[:19])
	assert.NoError(t, err)
	assert.Equal(t, 10, dema.Period())
	assert.InDelta(t, 90.5309787563998, float64(dema.Value()), testDelta)

	assert.InDelta(t, 90.09717264209674, float64(dema.Next(talibSmall[19])), testDelta)
}

func Test_DEMA_Validation(t *testing.T) {
	_, err := NewDEMA(0, talibSmall)
	assert.ErrorIs(t, err, ErrInvalidSize)

	// 2*period-1 samples are required to seed the second EMA.
	_, err = NewDEMA(10, talibSmall[:18])
	assert.ErrorIs(t, err, ErrInvalidData)
}

func Test_DEMA_SeedMatchesIncremental(t *testing.T) {
	full, err := NewDEMA(5, talibSmall[:19])
	assert.NoError(t, err)

	inc, err := NewDEMA(5, talibSmall[:9])
	assert.NoError(t, err)
	for _, v := range talibSmall[9:19] {
		inc.Next(v)
	}

	assert.InDelta(t, float64(full.Value()), float64(inc.Value()), testDelta)
}
