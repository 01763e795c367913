package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MACD(t *testing.T) {
	macd, err := NewMACD(8, 10, 6, talibSmall[:19])
	assert.NoError(t, err)
	assert.Equal(t, 6, macd.Period())
	assert.InDelta(t, -0.3145389483187415, float64(macd.Value()), testDelta)

	value, short, long := macd.Next(talibSmall[19])
	assert.InDelta(t, -0.3300712744833305, float64(value), testDelta)
	assert.InDelta(t, float64(short-long), float64(value), testDelta)
	assert.InDelta(t, float64(value), float64(macd.Value()), testDelta)
}

func Test_MACD_Validation(t *testing.T) {
	_, err := NewMACD(10, 8, 6, talibSmall[:19])
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewMACD(8, 10, 6, talibSmall[:9])
	assert.ErrorIs(t, err, ErrInvalidData)

	// Shorter than the signal period alone.
	_, err = NewMACD(2, 3, 6, talibSmall[:5])
	assert.ErrorIs(t, err, ErrInvalidData)
}

func Test_MACD_SeedMatchesIncremental(t *testing.T) {
	full, err := NewMACD(8, 10, 6, talibSmall[:19])
	assert.NoError(t, err)

	// 15 samples produce exactly the 6 difference samples the signal needs.
	inc, err := NewMACD(8, 10, 6, talibSmall[:15])
	assert.NoError(t, err)
	for _, v := range talibSmall[15:19] {
		inc.Next(v)
	}

	assert.InDelta(t, float64(full.Value()), float64(inc.Value()), testDelta)
	assert.InDelta(t, float64(full.SignalValue()), float64(inc.SignalValue()), testDelta)
}

// Crossed must report exactly the updates on which the value moved to the
// other side of the signal line, and clear again afterwards.
func Test_MACD_Crossed(t *testing.T) {
	macd, err := NewMACD(8, 10, 6, talibSmall[:15])
	assert.NoError(t, err)

	for _, v := range talibSmall[15:] {
		wasBelow, wasAbove := macd.IsBelow(), macd.IsAbove()
		macd.Next(v)
		flipped := (wasBelow && macd.IsAbove()) || (wasAbove && macd.IsBelow())
		assert.Equal(t, flipped, macd.Crossed())
	}
}
