package indicator

import "github.com/pkg/errors"

// DefaultMcGinleyK is the conventional period modifier for the McGinley
// Dynamic.
const DefaultMcGinleyK Num = 0.6

// McGinleyDynamic is a moving average that speeds up in down markets and
// slows in up markets through the recurrence
//
//	md = md + (x - md) / (k * n * (x/md)^4)
//
// The first sample seeds the recurrence directly. A zero previous value
// divides by zero; callers must supply non-zero seed data.
type McGinleyDynamic struct {
	period int
	k      Num
	value  Num
	buffer *Buffer
}

// NewMcGinleyDynamic seeds a McGinley Dynamic from historical samples. It
// requires a period of at least 2 and at least period+1 samples.
func NewMcGinleyDynamic(period int, data []Num, k Num) (*McGinleyDynamic, error) {
	if period < 2 {
		return nil, errors.Wrapf(ErrInvalidSize, "mcginley dynamic period must be at least 2, got %d", period)
	}
	if len(data) < period+1 {
		return nil, errors.Wrapf(ErrInvalidData, "mcginley dynamic requires %d samples, got %d", period+1, len(data))
	}

	value := data[0]
	buffer, err := NewBuffer(period, []Num{value})
	if err != nil {
		return nil, err
	}

	for _, v := range data[1:] {
		value = mcginleyStep(k, value, v, period)
		buffer.Shift(value)
	}

	return &McGinleyDynamic{
		period: period,
		k:      k,
		value:  value,
		buffer: buffer,
	}, nil
}

func mcginleyStep(k, last, v Num, period int) Num {
	ratio := v / last
	sq := ratio * ratio
	return last + (v-last)/(k*Num(period)*sq*sq)
}

// Period returns the window size.
func (m *McGinleyDynamic) Period() int { return m.period }

// Value returns the most recently computed value.
func (m *McGinleyDynamic) Value() Num { return m.value }

// Next advances the recurrence by one sample.
func (m *McGinleyDynamic) Next(v Num) Num {
	m.value = mcginleyStep(m.k, m.value, v, m.period)
	m.buffer.Shift(m.value)
	return m.value
}

// Sum of the trailing outputs.
func (m *McGinleyDynamic) Sum() Num { return m.buffer.Sum() }

// Mean of the trailing outputs.
func (m *McGinleyDynamic) Mean() Num { return m.buffer.Mean() }

// Variance of the trailing outputs.
func (m *McGinleyDynamic) Variance(sample bool) Num { return m.buffer.Variance(sample) }

// Stdev of the trailing outputs.
func (m *McGinleyDynamic) Stdev(sample bool) Num { return m.buffer.Stdev(sample) }

var _ StatsLine = (*McGinleyDynamic)(nil)
