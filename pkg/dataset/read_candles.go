package dataset

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadCandlesFromCSV reads all the .csv files in a given directory or a
// single file into a series of Candles, using the default OHLCV decoder.
func ReadCandlesFromCSV(path string) (Candles, error) {
	return ReadCandlesFromCSVWithDecoder(path, MakeCandleReader(NewCandleReader))
}

// ReadCandlesFromCSVWithDecoder permits using a custom CandleReader.
func ReadCandlesFromCSVWithDecoder(path string, maker MakeCandleReader) (Candles, error) {
	var candles Candles

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		cs, err := maker(csv.NewReader(file)).ReadAll()
		if err != nil {
			return err
		}
		candles = append(candles, cs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candles, nil
}
