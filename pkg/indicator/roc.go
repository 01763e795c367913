package indicator

import "github.com/pkg/errors"

// ROC is the Rate of Change: the percentage move from the sample `period`
// steps ago,
//
//	roc = (x - x[t-period]) / x[t-period] * 100
//
// A trailing buffer of raw samples exists purely to look up x[t-period].
type ROC struct {
	period int
	value  Num
	values *Buffer // raw samples
	buffer *Buffer // trailing outputs, backs Stats
}

// NewROC seeds a Rate of Change from historical samples. It requires a
// period of at least 2 and at least period+1 samples.
func NewROC(period int, data []Num) (*ROC, error) {
	if period < 2 {
		return nil, errors.Wrapf(ErrInvalidSize, "roc period must be at least 2, got %d", period)
	}
	if len(data) < period+1 {
		return nil, errors.Wrapf(ErrInvalidData, "roc requires %d samples, got %d", period+1, len(data))
	}

	values, err := NewBuffer(period, data[:period])
	if err != nil {
		return nil, err
	}

	r := &ROC{period: period, values: values}
	r.value = rocStep(data[period], values.Oldest())
	values.Shift(data[period])

	buffer, err := NewBuffer(period, []Num{r.value})
	if err != nil {
		return nil, err
	}
	r.buffer = buffer

	for _, v := range data[period+1:] {
		r.value = rocStep(v, values.Oldest())
		buffer.Shift(r.value)
		values.Shift(v)
	}

	return r, nil
}

func rocStep(v, last Num) Num {
	return (v - last) / last * 100
}

// Period returns the lookback distance.
func (r *ROC) Period() int { return r.period }

// Value returns the most recently computed rate of change.
func (r *ROC) Value() Num { return r.value }

// Next slides the lookback window by one sample.
func (r *ROC) Next(v Num) Num {
	r.value = rocStep(v, r.values.Oldest())
	r.buffer.Shift(r.value)
	r.values.Shift(v)
	return r.value
}

// Sum of the trailing outputs.
func (r *ROC) Sum() Num { return r.buffer.Sum() }

// Mean of the trailing outputs.
func (r *ROC) Mean() Num { return r.buffer.Mean() }

// Variance of the trailing outputs.
func (r *ROC) Variance(sample bool) Num { return r.buffer.Variance(sample) }

// Stdev of the trailing outputs.
func (r *ROC) Stdev(sample bool) Num { return r.buffer.Stdev(sample) }

var _ StatsLine = (*ROC)(nil)
