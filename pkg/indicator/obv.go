package indicator

import "github.com/pkg/errors"

// OBV is On-Balance Volume: a cumulative total that adds the volume when
// the close rises, subtracts it when the close falls, and holds on a flat
// close. The total itself is unbounded; the period only sizes the trailing
// buffer backing the Stats queries.
type OBV[T CloseVolumer] struct {
	period    int
	value     Num
	lastClose Num
	buffer    *Buffer
}

// NewOBV seeds an OBV from historical candles, starting the total at zero
// on the first candle. It requires at least `period` candles.
func NewOBV[T CloseVolumer](period int, data []T) (*OBV[T], error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "obv period must be at least 1, got %d", period)
	}
	if len(data) < period {
		return nil, errors.Wrapf(ErrInvalidData, "obv requires %d candles, got %d", period, len(data))
	}

	o := &OBV[T]{period: period, lastClose: data[0].GetClose()}

	buffer, err := NewBuffer(period, []Num{0})
	if err != nil {
		return nil, err
	}
	o.buffer = buffer

	for _, v := range data[1:] {
		buffer.Shift(o.step(v))
	}

	return o, nil
}

func (o *OBV[T]) step(v T) Num {
	switch {
	case v.GetClose() > o.lastClose:
		o.value += v.GetVolume()
	case v.GetClose() < o.lastClose:
		o.value -= v.GetVolume()
	}
	o.lastClose = v.GetClose()
	return o.value
}

// Period returns the trailing history size.
func (o *OBV[T]) Period() int { return o.period }

// Value returns the cumulative on-balance volume.
func (o *OBV[T]) Value() Num { return o.value }

// Next folds one more candle into the total.
func (o *OBV[T]) Next(v T) Num {
	value := o.step(v)
	o.buffer.Shift(value)
	return value
}

// Sum of the trailing OBV outputs.
func (o *OBV[T]) Sum() Num { return o.buffer.Sum() }

// Mean of the trailing OBV outputs.
func (o *OBV[T]) Mean() Num { return o.buffer.Mean() }

// Variance of the trailing OBV outputs.
func (o *OBV[T]) Variance(sample bool) Num { return o.buffer.Variance(sample) }

// Stdev of the trailing OBV outputs.
func (o *OBV[T]) Stdev(sample bool) Num { return o.buffer.Stdev(sample) }
