package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const linregDelta = 1e-6

func Test_LinReg(t *testing.T) {
	lr, err := NewLinReg(10, talibSmall[:19])
	assert.NoError(t, err)
	assert.Equal(t, 10, lr.Period())
	assert.InDelta(t, 89.77590909090911, float64(lr.Value()), linregDelta)
	assert.InDelta(t, -0.6755757575757558, float64(lr.Slope()), linregDelta)
	assert.InDelta(t, 96.53166666666667, float64(lr.Intercept()), linregDelta)

	assert.InDelta(t, 88.69072727272724, float64(lr.Next(talibSmall[19])), linregDelta)
}

func Test_LinReg_Validation(t *testing.T) {
	_, err := NewLinReg(1, talibSmall)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewLinReg(10, talibSmall[:9])
	assert.ErrorIs(t, err, ErrInvalidData)
}

func Test_LinReg_ForecastAndFit(t *testing.T) {
	lr, err := NewLinReg(10, talibSmall[:19])
	assert.NoError(t, err)

	// Forecast at distance 0 is the fitted value itself.
	assert.InDelta(t, float64(lr.Value()), float64(lr.Forecast(0)), linregDelta)
	assert.InDelta(t, 87.74918181818184, float64(lr.Forecast(3)), linregDelta)

	assert.InDelta(t, 0.36967834886473105, float64(lr.RSq()), linregDelta)
	assert.InDelta(t, 3.3640912591664334, float64(lr.LineStdev()), linregDelta)
}

// A perfectly linear window must fit exactly.
func Test_LinReg_ExactLine(t *testing.T) {
	data := make([]Num, 12)
	for i := range data {
		data[i] = 3 + 2*Num(i)
	}

	lr, err := NewLinReg(6, data)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, float64(lr.Slope()), linregDelta)
	assert.InDelta(t, 1.0, float64(lr.RSq()), linregDelta)
	assert.InDelta(t, float64(data[11]), float64(lr.Value()), linregDelta)
	assert.InDelta(t, float64(data[11])+2*3, float64(lr.Forecast(3)), linregDelta)
}

func Test_LinReg_SeedMatchesIncremental(t *testing.T) {
	full, err := NewLinReg(10, talibSmall[:19])
	assert.NoError(t, err)

	inc, err := NewLinReg(10, talibSmall[:10])
	assert.NoError(t, err)
	for _, v := range talibSmall[10:19] {
		inc.Next(v)
	}

	assert.InDelta(t, float64(full.Value()), float64(inc.Value()), linregDelta)
	assert.InDelta(t, float64(full.Slope()), float64(inc.Slope()), linregDelta)
}
