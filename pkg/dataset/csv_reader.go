package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/tastream/tastream/pkg/indicator"
)

var (
	// ErrNotEnoughColumns is returned when a CSV record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidPriceFormat is returned when an OHLC column does not parse as a decimal.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the volume column does not parse as a decimal.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CandleDecoder is an extension point for CandleReader to support custom file formats.
type CandleDecoder func(record []string) (Candle, error)

// MakeCandleReader is a factory method type that creates a new CandleReader.
type MakeCandleReader func(csv *csv.Reader) *CandleReader

// CandleReader reads OHLCV bars from CSV data.
type CandleReader struct {
	csv     *csv.Reader
	decoder CandleDecoder
}

// NewCandleReader creates a new CandleReader with the default OHLCV decoder.
func NewCandleReader(csv *csv.Reader) *CandleReader {
	return &CandleReader{
		csv:     csv,
		decoder: OHLCVCandleDecoder,
	}
}

// NewCandleReaderWithDecoder creates a new CandleReader with the given decoder.
func NewCandleReaderWithDecoder(csv *csv.Reader, decoder CandleDecoder) *CandleReader {
	return &CandleReader{
		csv:     csv,
		decoder: decoder,
	}
}

// NewTimestampedCandleReader creates a new CandleReader for exchange-style
// files that carry a leading epoch timestamp column.
func NewTimestampedCandleReader(csv *csv.Reader) *CandleReader {
	return &CandleReader{
		csv:     csv,
		decoder: TimestampedCandleDecoder,
	}
}

// Read reads the next Candle from the underlying CSV data.
func (r *CandleReader) Read() (Candle, error) {
	rec, err := r.csv.Read()
	if err != nil {
		return Candle{}, err
	}

	return r.decoder(rec)
}

// ReadAll reads all the Candles from the underlying CSV data.
func (r *CandleReader) ReadAll() (Candles, error) {
	var cs Candles
	for {
		c, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}

	return cs, nil
}

// OHLCVCandleDecoder decodes a record of open,high,low,close,volume columns.
func OHLCVCandleDecoder(record []string) (Candle, error) {
	if len(record) < 5 {
		return Candle{}, ErrNotEnoughColumns
	}
	return decodeCandle(record[0], record[1], record[2], record[3], record[4])
}

// TimestampedCandleDecoder decodes a record whose first column is an epoch
// timestamp, as Binance and Bybit exports lay it out. The timestamp itself
// is discarded.
func TimestampedCandleDecoder(record []string) (Candle, error) {
	if len(record) < 6 {
		return Candle{}, ErrNotEnoughColumns
	}
	if _, err := strconv.ParseInt(record[0], 10, 64); err != nil {
		return Candle{}, errors.Wrapf(ErrInvalidPriceFormat, "bad timestamp column %q", record[0])
	}
	return decodeCandle(record[1], record[2], record[3], record[4], record[5])
}

func decodeCandle(open, high, low, close, volume string) (Candle, error) {
	var c Candle

	prices := []struct {
		col string
		dst *indicator.Num
	}{
		{open, &c.Open},
		{high, &c.High},
		{low, &c.Low},
		{close, &c.Close},
	}
	for _, p := range prices {
		v, err := strconv.ParseFloat(p.col, 64)
		if err != nil {
			return Candle{}, errors.Wrapf(ErrInvalidPriceFormat, "bad price column %q", p.col)
		}
		*p.dst = indicator.Num(v)
	}

	v, err := strconv.ParseFloat(volume, 64)
	if err != nil {
		return Candle{}, errors.Wrapf(ErrInvalidVolumeFormat, "bad volume column %q", volume)
	}
	c.Volume = indicator.Num(v)

	return c, nil
}
