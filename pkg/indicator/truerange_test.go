package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TR(t *testing.T) {
	candles := testCandles()

	tr, err := NewTR(5, candles[:13])
	assert.NoError(t, err)
	assert.Equal(t, 5, tr.Period())
	assert.InDelta(t, 1.75, float64(tr.Value()), testDelta)

	// The 98.500 -> 89.875 gap dominates the next candle's range.
	assert.InDelta(t, 9.625, float64(tr.Next(candles[13])), testDelta)
}

func Test_TR_Validation(t *testing.T) {
	candles := testCandles()

	_, err := NewTR(0, candles)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewTR(5, candles[:5])
	assert.ErrorIs(t, err, ErrInvalidData)
}

func Test_TR_SeedMatchesIncremental(t *testing.T) {
	candles := testCandles()

	full, err := NewTR(5, candles[:13])
	assert.NoError(t, err)

	inc, err := NewTR(5, candles[:6])
	assert.NoError(t, err)
	for _, c := range candles[6:13] {
		inc.Next(c)
	}

	assert.InDelta(t, float64(full.Value()), float64(inc.Value()), testDelta)
	assert.InDelta(t, float64(full.Mean()), float64(inc.Mean()), testDelta)
}
