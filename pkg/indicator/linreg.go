package indicator

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var logLinReg = logrus.WithField("indicator", "LinReg")

// LinReg fits a least-squares line to the trailing `period` samples at
// x = 1..period and reports the fitted value at x = period. The x-side sums
// are constants of the period and precomputed once.
type LinReg struct {
	period    int
	value     Num
	values    *Buffer // raw y samples in the window
	buffer    *Buffer // trailing fitted values, backs Stats
	sumX      Num
	sumXSq    Num
	intercept Num
	slope     Num
}

// NewLinReg seeds a linear regression from historical samples. It requires
// a period of at least 2 and at least `period` samples.
func NewLinReg(period int, data []Num) (*LinReg, error) {
	if period < 2 {
		return nil, errors.Wrapf(ErrInvalidSize, "linreg period must be at least 2, got %d", period)
	}
	if len(data) < period {
		return nil, errors.Wrapf(ErrInvalidData, "linreg requires %d samples, got %d", period, len(data))
	}

	values, err := NewBuffer(period, data[:period])
	if err != nil {
		return nil, err
	}

	l := &LinReg{
		period: period,
		values: values,
		sumX:   Num(period*(period+1)) / 2,
		sumXSq: Num(period*(period+1)*(2*period+1)) / 6,
	}
	l.fit()

	buffer, err := NewBuffer(period, []Num{l.value})
	if err != nil {
		return nil, err
	}
	l.buffer = buffer

	for _, y := range data[period:] {
		l.values.Shift(y)
		l.fit()
		l.buffer.Shift(l.value)
	}

	return l, nil
}

func (l *LinReg) fit() {
	var sumY, sumXY Num
	for i, y := range l.values.Values() {
		sumY += y
		sumXY += Num(i+1) * y
	}

	n := Num(l.period)
	l.slope = (n*sumXY - l.sumX*sumY) / (n*l.sumXSq - l.sumX*l.sumX)
	l.intercept = (sumY - l.slope*l.sumX) / n
	l.value = l.intercept + l.slope*n
}

// Period returns the window size.
func (l *LinReg) Period() int { return l.period }

// Value returns the fitted value at the newest end of the window.
func (l *LinReg) Value() Num { return l.value }

// Intercept returns the fitted line's value at x = 0.
func (l *LinReg) Intercept() Num { return l.intercept }

// Slope returns the fitted line's slope per step.
func (l *LinReg) Slope() Num { return l.slope }

// Forecast extrapolates the fitted line `distance` steps past the window.
func (l *LinReg) Forecast(distance int) Num {
	return l.intercept + l.slope*Num(l.period+distance)
}

// RSq is the coefficient of determination of the current fit against the
// window's samples. A flat window has no variance to explain and yields NaN.
func (l *LinReg) RSq() Num {
	xs := make([]float64, l.period)
	ys := make([]float64, l.period)
	for i, y := range l.values.Values() {
		xs[i] = float64(i + 1)
		ys[i] = float64(y)
	}

	if l.values.Variance(false) == 0 {
		logLinReg.Warnf("r-squared requested on a zero-variance window of %d samples", l.period)
	}
	return Num(stat.RSquared(xs, ys, nil, float64(l.intercept), float64(l.slope)))
}

// LineStdev is the sample standard deviation of the window's raw samples.
func (l *LinReg) LineStdev() Num {
	return l.values.Stdev(true)
}

// Next slides the window by one sample and refits the line.
func (l *LinReg) Next(v Num) Num {
	l.values.Shift(v)
	l.fit()
	l.buffer.Shift(l.value)
	return l.value
}

// Sum of the trailing fitted values.
func (l *LinReg) Sum() Num { return l.buffer.Sum() }

// Mean of the trailing fitted values.
func (l *LinReg) Mean() Num { return l.buffer.Mean() }

// Variance of the trailing fitted values.
func (l *LinReg) Variance(sample bool) Num { return l.buffer.Variance(sample) }

// Stdev of the trailing fitted values.
func (l *LinReg) Stdev(sample bool) Num { return l.buffer.Stdev(sample) }

var _ StatsLine = (*LinReg)(nil)
