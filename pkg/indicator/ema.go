package indicator

import "github.com/pkg/errors"

// EMA is the Exponential Moving Average. The smoothing constant is
// k = 2/(period+1); the first value is seeded with the mean of the first
// `period` samples and every later sample advances the recurrence
//
//	ema = (x - ema) * k + ema
//
// A trailing buffer of the last `period` outputs backs the Stats queries; it
// plays no part in the recurrence itself.
type EMA struct {
	period int
	value  Num
	k      Num
	buffer *Buffer
}

// NewEMA seeds an EMA from historical samples. It requires a period of at
// least 1 and at least `period` samples.
func NewEMA(period int, data []Num) (*EMA, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "ema period must be at least 1, got %d", period)
	}
	if len(data) < period {
		return nil, errors.Wrapf(ErrInvalidData, "ema requires %d samples, got %d", period, len(data))
	}

	seed, err := NewBuffer(period, data[:period])
	if err != nil {
		return nil, err
	}
	value := seed.Mean()

	buffer, err := NewBuffer(period, []Num{value})
	if err != nil {
		return nil, err
	}

	k := 2 / Num(period+1)
	for _, v := range data[period:] {
		value = (v-value)*k + value
		buffer.Shift(value)
	}

	return &EMA{
		period: period,
		value:  value,
		k:      k,
		buffer: buffer,
	}, nil
}

// Period returns the window size.
func (e *EMA) Period() int { return e.period }

// Value returns the most recently computed EMA.
func (e *EMA) Value() Num { return e.value }

// Next advances the recurrence by one sample.
func (e *EMA) Next(v Num) Num {
	e.value = (v-e.value)*e.k + e.value
	e.buffer.Shift(e.value)
	return e.value
}

// Sum of the trailing EMA outputs.
func (e *EMA) Sum() Num { return e.buffer.Sum() }

// Mean of the trailing EMA outputs.
func (e *EMA) Mean() Num { return e.buffer.Mean() }

// Variance of the trailing EMA outputs.
func (e *EMA) Variance(sample bool) Num { return e.buffer.Variance(sample) }

// Stdev of the trailing EMA outputs.
func (e *EMA) Stdev(sample bool) Num { return e.buffer.Stdev(sample) }

var _ StatsLine = (*EMA)(nil)
