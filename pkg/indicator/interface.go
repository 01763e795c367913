package indicator

// Line is the contract every single-valued indicator satisfies: a fixed
// period, a current value, and an incremental update taking one new sample.
type Line interface {
	Period() int
	Value() Num
	Next(v Num) Num
}

// Stats exposes the running statistics an indicator keeps over its trailing
// window of outputs.
type Stats interface {
	Sum() Num
	Mean() Num
	Variance(sample bool) Num
	Stdev(sample bool) Num
}

// StatsLine is a Line that also answers Stats queries. BOLL wraps any
// StatsLine as its middle band.
type StatsLine interface {
	Line
	Stats
}

// OpenValuer is any sample exposing an opening value.
type OpenValuer interface {
	GetOpen() Num
}

// HighValuer is any sample exposing a highest value.
type HighValuer interface {
	GetHigh() Num
}

// LowValuer is any sample exposing a lowest value.
type LowValuer interface {
	GetLow() Num
}

// CloseValuer is any sample exposing a closing value.
type CloseValuer interface {
	GetClose() Num
}

// VolumeValuer is any sample exposing a traded volume.
type VolumeValuer interface {
	GetVolume() Num
}

// HighLowCloser is the input capability TR and ATR require.
type HighLowCloser interface {
	HighValuer
	LowValuer
	CloseValuer
}

// CloseVolumer is the input capability OBV requires.
type CloseVolumer interface {
	CloseValuer
	VolumeValuer
}

// HighLower is the input capability HL2 requires.
type HighLower interface {
	HighValuer
	LowValuer
}

// OHLCValuer is the input capability OHLC4 requires.
type OHLCValuer interface {
	OpenValuer
	HighLowCloser
}

// HL2 returns the midpoint of the high and low values.
func HL2(v HighLower) Num {
	return (v.GetHigh() + v.GetLow()) / 2
}

// HLC3 returns the typical price of the high, low and close values.
func HLC3(v HighLowCloser) Num {
	return (v.GetHigh() + v.GetLow() + v.GetClose()) / 3
}

// OHLC4 returns the average of the open, high, low and close values.
func OHLC4(v OHLCValuer) Num {
	return (v.GetOpen() + v.GetHigh() + v.GetLow() + v.GetClose()) / 4
}
