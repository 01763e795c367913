package indicator

// StdDev exposes the rolling window's standard deviation as a standalone
// indicator. It shares the Variance preconditions.
type StdDev struct {
	variance *Variance
}

// NewStdDev seeds a rolling standard deviation from historical samples.
func NewStdDev(period int, data []Num, sample bool) (*StdDev, error) {
	variance, err := NewVariance(period, data, sample)
	if err != nil {
		return nil, err
	}
	return &StdDev{variance: variance}, nil
}

// Period returns the window size.
func (s *StdDev) Period() int { return s.variance.Period() }

// Value returns the most recently computed standard deviation.
func (s *StdDev) Value() Num { return sqrtNum(s.variance.Value()) }

// IsSample reports which estimator the indicator uses.
func (s *StdDev) IsSample() bool { return s.variance.IsSample() }

// Next slides the window by one sample.
func (s *StdDev) Next(x Num) Num {
	return sqrtNum(s.variance.Next(x))
}

// Sum of the current window's raw samples.
func (s *StdDev) Sum() Num { return s.variance.Sum() }

// Mean of the current window's raw samples.
func (s *StdDev) Mean() Num { return s.variance.Mean() }

// Variance of the current window's raw samples.
func (s *StdDev) Variance(sample bool) Num { return s.variance.Variance(sample) }

// Stdev of the current window's raw samples.
func (s *StdDev) Stdev(sample bool) Num { return s.variance.Stdev(sample) }

var _ StatsLine = (*StdDev)(nil)
