package indicator

import "github.com/pkg/errors"

// ATR is the Average True Range: a Wilder-smoothed average of the true
// range,
//
//	atr = (atr*(period-1) + tr) / period
//
// seeded from the plain mean of the first `period` true ranges.
type ATR[T HighLowCloser] struct {
	period int
	value  Num
	tr     *TR[T]
	buffer *Buffer
}

// NewATR seeds an ATR from historical candles. It requires a period of at
// least 1 and period+1 candles.
func NewATR[T HighLowCloser](period int, data []T) (*ATR[T], error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "atr period must be at least 1, got %d", period)
	}
	if len(data) < period+1 {
		return nil, errors.Wrapf(ErrInvalidData, "atr requires %d candles, got %d", period+1, len(data))
	}

	tr, err := NewTR(period, data[:period+1])
	if err != nil {
		return nil, err
	}

	a := &ATR[T]{period: period, tr: tr, value: tr.Mean()}

	buffer, err := NewBuffer(period, []Num{a.value})
	if err != nil {
		return nil, err
	}
	a.buffer = buffer

	for _, v := range data[period+1:] {
		a.value = a.smooth(tr.Next(v))
		buffer.Shift(a.value)
	}

	return a, nil
}

func (a *ATR[T]) smooth(tr Num) Num {
	return (a.value*Num(a.period-1) + tr) / Num(a.period)
}

// Period returns the window size.
func (a *ATR[T]) Period() int { return a.period }

// Value returns the most recently computed ATR.
func (a *ATR[T]) Value() Num { return a.value }

// TrueRange returns the current (unsmoothed) true range.
func (a *ATR[T]) TrueRange() Num { return a.tr.Value() }

// Next folds one more candle's true range into the smoothed average.
func (a *ATR[T]) Next(v T) Num {
	a.value = a.smooth(a.tr.Next(v))
	a.buffer.Shift(a.value)
	return a.value
}

// Sum of the trailing ATR outputs.
func (a *ATR[T]) Sum() Num { return a.buffer.Sum() }

// Mean of the trailing ATR outputs.
func (a *ATR[T]) Mean() Num { return a.buffer.Mean() }

// Variance of the trailing ATR outputs.
func (a *ATR[T]) Variance(sample bool) Num { return a.buffer.Variance(sample) }

// Stdev of the trailing ATR outputs.
func (a *ATR[T]) Stdev(sample bool) Num { return a.buffer.Stdev(sample) }
