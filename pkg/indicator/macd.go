package indicator

import "github.com/pkg/errors"

// MACD is the Moving Average Convergence Divergence: the difference between
// a short and a long EMA over the raw samples, with a signal EMA running
// over that difference series. Typical periods are 12/26/9.
type MACD struct {
	value     Num
	emaShort  *EMA
	emaLong   *EMA
	emaSignal *EMA
	crossed   bool
}

// NewMACD seeds a MACD from historical samples. The short period must not
// exceed the long one, and the data must cover both the long EMA seed and
// enough difference samples to seed the signal EMA.
func NewMACD(short, long, signal int, data []Num) (*MACD, error) {
	if short > long {
		return nil, errors.Wrapf(ErrInvalidSize, "macd short period %d exceeds long period %d", short, long)
	}
	if len(data) < signal {
		return nil, errors.Wrapf(ErrInvalidData, "macd requires %d samples for the signal period, got %d", signal, len(data))
	}
	if len(data) < long {
		return nil, errors.Wrapf(ErrInvalidData, "macd requires %d samples for the long period, got %d", long, len(data))
	}

	emaShort, err := NewEMA(short, data[:long])
	if err != nil {
		return nil, err
	}
	emaLong, err := NewEMA(long, data[:long])
	if err != nil {
		return nil, err
	}

	// Difference series that seeds the signal EMA.
	diffs := make([]Num, 0, len(data)-long+1)
	diffs = append(diffs, emaShort.Value()-emaLong.Value())
	for _, v := range data[long:] {
		diffs = append(diffs, emaShort.Next(v)-emaLong.Next(v))
	}

	emaSignal, err := NewEMA(signal, diffs)
	if err != nil {
		return nil, err
	}

	return &MACD{
		value:     emaShort.Value() - emaLong.Value(),
		emaShort:  emaShort,
		emaLong:   emaLong,
		emaSignal: emaSignal,
	}, nil
}

// Period returns the signal line period.
func (m *MACD) Period() int { return m.emaSignal.Period() }

// Value returns the most recent short-long difference.
func (m *MACD) Value() Num { return m.value }

// SignalValue returns the signal line's current value.
func (m *MACD) SignalValue() Num { return m.emaSignal.Value() }

// Crossed reports whether the last Next call moved the value across the
// signal line. It resets on the following call unless another flip occurs.
func (m *MACD) Crossed() bool { return m.crossed }

// IsAbove reports whether the value sits above the signal line.
func (m *MACD) IsAbove() bool { return m.value > m.SignalValue() }

// IsBelow reports whether the value sits below the signal line.
func (m *MACD) IsBelow() bool { return m.value < m.SignalValue() }

// Next advances all three EMAs by one sample and returns the new MACD
// value together with the short and long EMA values.
func (m *MACD) Next(v Num) (macd, short, long Num) {
	wasBelow, wasAbove := m.IsBelow(), m.IsAbove()

	short = m.emaShort.Next(v)
	long = m.emaLong.Next(v)
	m.value = short - long
	m.emaSignal.Next(m.value)

	// Landing exactly on the signal line is not a cross.
	m.crossed = (wasBelow && m.IsAbove()) || (wasAbove && m.IsBelow())

	return m.value, short, long
}
