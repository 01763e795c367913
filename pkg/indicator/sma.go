package indicator

import "github.com/pkg/errors"

// SMA is the Simple Moving Average: the plain mean of the trailing `period`
// samples, recomputed in O(1) from the window's running sum.
type SMA struct {
	period int
	value  Num
	buffer *Buffer
}

// NewSMA seeds an SMA from historical samples. It requires a period of at
// least 1 and at least `period` samples.
func NewSMA(period int, data []Num) (*SMA, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "sma period must be at least 1, got %d", period)
	}
	if len(data) < period {
		return nil, errors.Wrapf(ErrInvalidData, "sma requires %d samples, got %d", period, len(data))
	}

	buffer, err := NewBuffer(period, data)
	if err != nil {
		return nil, err
	}

	return &SMA{
		period: period,
		value:  buffer.Mean(),
		buffer: buffer,
	}, nil
}

// Period returns the window size.
func (s *SMA) Period() int { return s.period }

// Value returns the most recently computed average.
func (s *SMA) Value() Num { return s.value }

// Next slides the window by one sample and returns the new average.
func (s *SMA) Next(v Num) Num {
	s.buffer.Shift(v)
	s.value = s.buffer.Sum() / Num(s.period)
	return s.value
}

// Sum of the current window.
func (s *SMA) Sum() Num { return s.buffer.Sum() }

// Mean of the current window.
func (s *SMA) Mean() Num { return s.buffer.Mean() }

// Variance of the current window.
func (s *SMA) Variance(sample bool) Num { return s.buffer.Variance(sample) }

// Stdev of the current window.
func (s *SMA) Stdev(sample bool) Num { return s.buffer.Stdev(sample) }

var _ StatsLine = (*SMA)(nil)
