package indicator

// BOLL is the Bollinger Bands indicator. It wraps any StatsLine as its
// middle band (an SMA by default) and places the lower and upper bands
// `distance` sample standard deviations away from it.
type BOLL struct {
	period   int
	line     StatsLine
	distance Num
	lower    Num
	upper    Num
}

// DefaultBandDistance is the conventional band width in standard deviations.
const DefaultBandDistance Num = 2.0

// NewBOLL seeds Bollinger Bands over an SMA middle band. It shares the
// SMA's preconditions: period of at least 1 and at least `period` samples.
func NewBOLL(period int, data []Num, distance Num) (*BOLL, error) {
	sma, err := NewSMA(period, data)
	if err != nil {
		return nil, err
	}
	return NewBOLLWithLine(sma, distance)
}

// NewBOLLWithLine seeds Bollinger Bands around an alternative middle band,
// such as an EMA. The line must already be seeded.
func NewBOLLWithLine(line StatsLine, distance Num) (*BOLL, error) {
	b := &BOLL{
		period:   line.Period(),
		line:     line,
		distance: absNum(distance),
	}
	b.recompute()
	return b, nil
}

func (b *BOLL) recompute() {
	band := b.line.Stdev(true) * b.distance
	b.lower = b.line.Value() - band
	b.upper = b.line.Value() + band
}

// Period returns the middle band's window size.
func (b *BOLL) Period() int { return b.period }

// Value returns the middle band's current value.
func (b *BOLL) Value() Num { return b.line.Value() }

// Distance returns the band width in standard deviations.
func (b *BOLL) Distance() Num { return b.distance }

// Lower returns the current lower band.
func (b *BOLL) Lower() Num { return b.lower }

// Upper returns the current upper band.
func (b *BOLL) Upper() Num { return b.upper }

// Next advances the middle band by one sample and recomputes both bands.
func (b *BOLL) Next(v Num) (lower, value, upper Num) {
	value = b.line.Next(v)
	b.recompute()
	return b.lower, value, b.upper
}
