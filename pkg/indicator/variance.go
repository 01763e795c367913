package indicator

import "github.com/pkg/errors"

// Variance exposes the rolling window's variance as a standalone indicator.
// The sample estimator divides by period-1 and therefore requires a period
// of at least 2; the population estimator accepts a period of 1.
type Variance struct {
	period int
	value  Num
	sample bool
	buffer *Buffer
}

// NewVariance seeds a rolling variance from historical samples.
func NewVariance(period int, data []Num, sample bool) (*Variance, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "variance period must be at least 1, got %d", period)
	}
	if sample && period < 2 {
		return nil, errors.Wrapf(ErrInvalidSize, "sample variance period must be at least 2, got %d", period)
	}
	if len(data) < period {
		return nil, errors.Wrapf(ErrInvalidData, "variance requires %d samples, got %d", period, len(data))
	}

	buffer, err := NewBuffer(period, data)
	if err != nil {
		return nil, err
	}

	return &Variance{
		period: period,
		value:  buffer.Variance(sample),
		sample: sample,
		buffer: buffer,
	}, nil
}

// Period returns the window size.
func (v *Variance) Period() int { return v.period }

// Value returns the most recently computed variance.
func (v *Variance) Value() Num { return v.value }

// IsSample reports which estimator the indicator uses.
func (v *Variance) IsSample() bool { return v.sample }

// Next slides the window by one sample and recomputes the variance.
func (v *Variance) Next(x Num) Num {
	v.buffer.Shift(x)
	v.value = v.buffer.Variance(v.sample)
	return v.value
}

// Sum of the current window's raw samples.
func (v *Variance) Sum() Num { return v.buffer.Sum() }

// Mean of the current window's raw samples.
func (v *Variance) Mean() Num { return v.buffer.Mean() }

// Variance of the current window's raw samples.
func (v *Variance) Variance(sample bool) Num { return v.buffer.Variance(sample) }

// Stdev of the current window's raw samples.
func (v *Variance) Stdev(sample bool) Num { return v.buffer.Stdev(sample) }

var _ StatsLine = (*Variance)(nil)
