package dataset

import (
	"github.com/tastream/tastream/pkg/datatype/floats"
	"github.com/tastream/tastream/pkg/indicator"
)

// Candle is a single OHLCV bar.
type Candle struct {
	Open   indicator.Num
	High   indicator.Num
	Low    indicator.Num
	Close  indicator.Num
	Volume indicator.Num
}

func (c Candle) GetOpen() indicator.Num   { return c.Open }
func (c Candle) GetHigh() indicator.Num   { return c.High }
func (c Candle) GetLow() indicator.Num    { return c.Low }
func (c Candle) GetClose() indicator.Num  { return c.Close }
func (c Candle) GetVolume() indicator.Num { return c.Volume }

// Candles is a chronological series of bars.
type Candles []Candle

// CloseSeries returns the closing prices in the indicator's numeric type,
// ready to seed a line.
func (cs Candles) CloseSeries() []indicator.Num {
	out := make([]indicator.Num, len(cs))
	for i, c := range cs {
		out[i] = c.Close
	}
	return out
}

func (cs Candles) Opens() floats.Slice {
	out := make(floats.Slice, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Open)
	}
	return out
}

func (cs Candles) Highs() floats.Slice {
	out := make(floats.Slice, len(cs))
	for i, c := range cs {
		out[i] = float64(c.High)
	}
	return out
}

func (cs Candles) Lows() floats.Slice {
	out := make(floats.Slice, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Low)
	}
	return out
}

func (cs Candles) Closes() floats.Slice {
	out := make(floats.Slice, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Close)
	}
	return out
}

func (cs Candles) Volumes() floats.Slice {
	out := make(floats.Slice, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Volume)
	}
	return out
}
