package indicator

import "github.com/pkg/errors"

// DEMA is the Double Exponential Moving Average:
//
//	DEMA = 2*EMA(n) - EMA(EMA(n))
//
// The second EMA runs over the output stream of the first, which is why
// seeding needs 2*period-1 samples.
type DEMA struct {
	period  int
	value   Num
	ema     *EMA // over raw samples
	emaOver *EMA // over the first EMA's outputs
	buffer  *Buffer
}

// NewDEMA seeds a DEMA from historical samples. It requires a period of at
// least 1 and at least 2*period-1 samples.
func NewDEMA(period int, data []Num) (*DEMA, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "dema period must be at least 1, got %d", period)
	}
	if len(data) < 2*period-1 {
		return nil, errors.Wrapf(ErrInvalidData, "dema requires %d samples, got %d", 2*period-1, len(data))
	}

	ema, err := NewEMA(period, data[:period])
	if err != nil {
		return nil, err
	}

	// Catch the first EMA's output stream to seed the second EMA.
	stream := make([]Num, 0, period)
	stream = append(stream, ema.Value())
	for _, v := range data[period : 2*period-1] {
		stream = append(stream, ema.Next(v))
	}

	emaOver, err := NewEMA(period, stream)
	if err != nil {
		return nil, err
	}

	value := 2*ema.Value() - emaOver.Value()
	buffer, err := NewBuffer(period, []Num{value})
	if err != nil {
		return nil, err
	}

	for _, v := range data[2*period-1:] {
		e1 := ema.Next(v)
		value = 2*e1 - emaOver.Next(e1)
		buffer.Shift(value)
	}

	return &DEMA{
		period:  period,
		value:   value,
		ema:     ema,
		emaOver: emaOver,
		buffer:  buffer,
	}, nil
}

// Period returns the window size.
func (d *DEMA) Period() int { return d.period }

// Value returns the most recently computed DEMA.
func (d *DEMA) Value() Num { return d.value }

// Next advances both EMAs by one sample.
func (d *DEMA) Next(v Num) Num {
	e1 := d.ema.Next(v)
	d.value = 2*e1 - d.emaOver.Next(e1)
	d.buffer.Shift(d.value)
	return d.value
}

// Sum of the trailing DEMA outputs.
func (d *DEMA) Sum() Num { return d.buffer.Sum() }

// Mean of the trailing DEMA outputs.
func (d *DEMA) Mean() Num { return d.buffer.Mean() }

// Variance of the trailing DEMA outputs.
func (d *DEMA) Variance(sample bool) Num { return d.buffer.Variance(sample) }

// Stdev of the trailing DEMA outputs.
func (d *DEMA) Stdev(sample bool) Num { return d.buffer.Stdev(sample) }

var _ StatsLine = (*DEMA)(nil)
