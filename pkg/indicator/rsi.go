package indicator

import "github.com/pkg/errors"

// Default RSI thresholds.
const (
	DefaultOversold   Num = 20.0
	DefaultOverbought Num = 80.0
)

// RSI is the Relative Strength Index. Gains and losses are averaged with
// Wilder smoothing,
//
//	avg = (avg*(period-1) + current) / period
//
// and the seed averages the raw gains and losses of the first `period`
// differences, counted as the period-th smoothing step. When every sample
// in the window gained, the average loss is zero and the value is 100 by
// IEEE division; that behavior is deliberate.
type RSI struct {
	period     int
	value      Num
	avgGain    Num
	avgLoss    Num
	lastSample Num
	oversold   Num
	overbought Num
	buffer     *Buffer
}

// NewRSI seeds an RSI from historical samples. It requires a period of at
// least 1 and at least period+1 samples (differences need a predecessor).
func NewRSI(period int, data []Num) (*RSI, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "rsi period must be at least 1, got %d", period)
	}
	if len(data) < period+1 {
		return nil, errors.Wrapf(ErrInvalidData, "rsi requires %d samples, got %d", period+1, len(data))
	}

	r := &RSI{
		period:     period,
		oversold:   DefaultOversold,
		overbought: DefaultOverbought,
	}

	// Raw gain/loss totals over the first period of differences.
	var gains, losses Num
	r.lastSample = data[0]
	for _, v := range data[1 : period+1] {
		change := v - r.lastSample
		r.lastSample = v
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}

	// Seeding runs the totals through the smoothing step with zero prior
	// averages, which divides them by the period.
	r.value = r.step(gains, losses)

	buffer, err := NewBuffer(period, []Num{r.value})
	if err != nil {
		return nil, err
	}
	r.buffer = buffer

	for _, v := range data[period+1:] {
		buffer.Shift(r.advance(v))
	}

	return r, nil
}

// step applies one Wilder smoothing step and returns the resulting RSI.
func (r *RSI) step(gain, loss Num) Num {
	n := Num(r.period)
	r.avgGain = (r.avgGain*(n-1) + gain) / n
	r.avgLoss = (r.avgLoss*(n-1) + loss) / n
	return 100 - 100/(1+r.avgGain/r.avgLoss)
}

func (r *RSI) advance(v Num) Num {
	change := v - r.lastSample
	r.lastSample = v

	var gain, loss Num
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}
	r.value = r.step(gain, loss)
	return r.value
}

// Period returns the window size.
func (r *RSI) Period() int { return r.period }

// Value returns the most recently computed RSI.
func (r *RSI) Value() Num { return r.value }

// SetOversold replaces the oversold threshold (default 20).
func (r *RSI) SetOversold(v Num) { r.oversold = v }

// SetOverbought replaces the overbought threshold (default 80).
func (r *RSI) SetOverbought(v Num) { r.overbought = v }

// IsOversold reports whether the value sits below the oversold threshold.
func (r *RSI) IsOversold() bool { return r.value < r.oversold }

// IsOverbought reports whether the value sits above the overbought threshold.
func (r *RSI) IsOverbought() bool { return r.value > r.overbought }

// Next advances the smoothing by one sample.
func (r *RSI) Next(v Num) Num {
	value := r.advance(v)
	r.buffer.Shift(value)
	return value
}

// Sum of the trailing RSI outputs.
func (r *RSI) Sum() Num { return r.buffer.Sum() }

// Mean of the trailing RSI outputs.
func (r *RSI) Mean() Num { return r.buffer.Mean() }

// Variance of the trailing RSI outputs.
func (r *RSI) Variance(sample bool) Num { return r.buffer.Variance(sample) }

// Stdev of the trailing RSI outputs.
func (r *RSI) Stdev(sample bool) Num { return r.buffer.Stdev(sample) }

var _ StatsLine = (*RSI)(nil)
