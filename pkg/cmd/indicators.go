package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tastream/tastream/pkg/dataset"
	"github.com/tastream/tastream/pkg/indicator"
)

func init() {
	IndicatorsCmd.Flags().Int("period", 14, "indicator period")
	IndicatorsCmd.Flags().Int("macd-short", 12, "macd short ema period")
	IndicatorsCmd.Flags().Int("macd-long", 26, "macd long ema period")
	IndicatorsCmd.Flags().Int("macd-signal", 9, "macd signal ema period")
	RootCmd.AddCommand(IndicatorsCmd)
}

var IndicatorsCmd = &cobra.Command{
	Use:          "indicators",
	Short:        "compute indicator snapshots over a candle dataset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		candles, err := loadCandles(cmd)
		if err != nil {
			return err
		}

		period, err := cmd.Flags().GetInt("period")
		if err != nil {
			return err
		}

		closes := candles.CloseSeries()
		log.Infof("loaded %d candles", len(candles))

		sma, err := indicator.NewSMA(period, closes)
		if err != nil {
			return errors.Wrap(err, "sma")
		}
		ema, err := indicator.NewEMA(period, closes)
		if err != nil {
			return errors.Wrap(err, "ema")
		}
		dema, err := indicator.NewDEMA(period, closes)
		if err != nil {
			return errors.Wrap(err, "dema")
		}
		md, err := indicator.NewMcGinleyDynamic(period, closes, indicator.DefaultMcGinleyK)
		if err != nil {
			return errors.Wrap(err, "mcginley")
		}
		linreg, err := indicator.NewLinReg(period, closes)
		if err != nil {
			return errors.Wrap(err, "linreg")
		}
		rsi, err := indicator.NewRSI(period, closes)
		if err != nil {
			return errors.Wrap(err, "rsi")
		}
		roc, err := indicator.NewROC(period, closes)
		if err != nil {
			return errors.Wrap(err, "roc")
		}
		stdev, err := indicator.NewStdDev(period, closes, true)
		if err != nil {
			return errors.Wrap(err, "stdev")
		}
		boll, err := indicator.NewBOLL(period, closes, indicator.DefaultBandDistance)
		if err != nil {
			return errors.Wrap(err, "boll")
		}
		atr, err := indicator.NewATR(period, candles)
		if err != nil {
			return errors.Wrap(err, "atr")
		}
		obv, err := indicator.NewOBV(period, candles)
		if err != nil {
			return errors.Wrap(err, "obv")
		}

		log.WithFields(log.Fields{
			"sma":      sma.Value(),
			"ema":      ema.Value(),
			"dema":     dema.Value(),
			"mcginley": md.Value(),
			"linreg":   linreg.Value(),
			"slope":    linreg.Slope(),
			"rsi":      rsi.Value(),
			"roc":      roc.Value(),
			"stdev":    stdev.Value(),
			"atr":      atr.Value(),
			"obv":      obv.Value(),
		}).Infof("indicator snapshot, period=%d", period)

		log.Infof("bollinger bands: %f / %f / %f", boll.Lower(), boll.Value(), boll.Upper())

		short, err := cmd.Flags().GetInt("macd-short")
		if err != nil {
			return err
		}
		long, err := cmd.Flags().GetInt("macd-long")
		if err != nil {
			return err
		}
		signal, err := cmd.Flags().GetInt("macd-signal")
		if err != nil {
			return err
		}

		macd, err := indicator.NewMACD(short, long, signal, closes)
		if err != nil {
			return errors.Wrap(err, "macd")
		}
		log.WithFields(log.Fields{
			"macd":   macd.Value(),
			"signal": macd.SignalValue(),
			"above":  macd.IsAbove(),
		}).Info("macd snapshot")

		return nil
	},
}

func loadCandles(cmd *cobra.Command) (dataset.Candles, error) {
	dataPath, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, err
	}
	if len(dataPath) == 0 {
		return nil, errors.New("--data option is required")
	}

	timestamped, err := cmd.Flags().GetBool("timestamped")
	if err != nil {
		return nil, err
	}

	if timestamped {
		return dataset.ReadCandlesFromCSVWithDecoder(dataPath, dataset.NewTimestampedCandleReader)
	}
	return dataset.ReadCandlesFromCSV(dataPath)
}
