package indicator

import "github.com/pkg/errors"

// TR is the True Range: the greatest of the high-low span and the two gaps
// from the previous close,
//
//	TR = max(|H-L|, |H-Cprev|, |L-Cprev|)
//
// It is generic over any sample exposing high, low and close values, so the
// caller's candle type is used directly.
type TR[T HighLowCloser] struct {
	period    int
	value     Num
	lastClose Num
	buffer    *Buffer
}

// NewTR seeds a True Range from historical candles. It requires a period of
// at least 1 and period+1 candles; the extra candle supplies the first
// previous close.
func NewTR[T HighLowCloser](period int, data []T) (*TR[T], error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "true range period must be at least 1, got %d", period)
	}
	if len(data) < period+1 {
		return nil, errors.Wrapf(ErrInvalidData, "true range requires %d candles, got %d", period+1, len(data))
	}

	t := &TR[T]{period: period, lastClose: data[0].GetClose()}
	t.value = t.step(data[1])

	buffer, err := NewBuffer(period, []Num{t.value})
	if err != nil {
		return nil, err
	}
	t.buffer = buffer

	for _, v := range data[2:] {
		t.value = t.step(v)
		buffer.Shift(t.value)
	}

	return t, nil
}

func (t *TR[T]) step(v T) Num {
	hl := absNum(v.GetHigh() - v.GetLow())
	hc := absNum(v.GetHigh() - t.lastClose)
	lc := absNum(v.GetLow() - t.lastClose)

	t.lastClose = v.GetClose()
	return maxNum(hl, maxNum(hc, lc))
}

// Period returns the window size.
func (t *TR[T]) Period() int { return t.period }

// Value returns the most recently computed true range.
func (t *TR[T]) Value() Num { return t.value }

// Next computes the true range of one more candle.
func (t *TR[T]) Next(v T) Num {
	t.value = t.step(v)
	t.buffer.Shift(t.value)
	return t.value
}

// Sum of the trailing true ranges.
func (t *TR[T]) Sum() Num { return t.buffer.Sum() }

// Mean of the trailing true ranges.
func (t *TR[T]) Mean() Num { return t.buffer.Mean() }

// Variance of the trailing true ranges.
func (t *TR[T]) Variance(sample bool) Num { return t.buffer.Variance(sample) }

// Stdev of the trailing true ranges.
func (t *TR[T]) Stdev(sample bool) Num { return t.buffer.Stdev(sample) }
