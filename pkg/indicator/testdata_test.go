package indicator

// talibSmall is the classic TA-Lib sample closing series. Tests seed from
// the first 19 points and hold the 20th back to drive Next.
var talibSmall = []Num{
	91.500, 94.815, 94.375, 95.095, 93.780, 94.625, 92.530, 92.750, 90.315, 92.470,
	96.125, 97.250, 98.500, 89.875, 91.000, 92.815, 89.155, 89.345, 91.625, 89.875,
}

type testCandle struct {
	open, high, low, close, volume Num
}

func (c testCandle) GetOpen() Num   { return c.open }
func (c testCandle) GetHigh() Num   { return c.high }
func (c testCandle) GetLow() Num    { return c.low }
func (c testCandle) GetClose() Num  { return c.close }
func (c testCandle) GetVolume() Num { return c.volume }

// testCandles derives 14 OHLCV candles from the fixture closes so the
// candle-driven indicators have deterministic highs, lows and volumes.
func testCandles() []testCandle {
	closes := talibSmall[:14]
	candles := make([]testCandle, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}
		candles[i] = testCandle{
			open:   open,
			high:   c + 0.5 + 0.25*Num(i%3),
			low:    c - 0.75 - 0.25*Num(i%2),
			close:  c,
			volume: 1000 + 25*Num(i),
		}
	}
	return candles
}
