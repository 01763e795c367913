package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tastream/tastream/pkg/datatype/floats"
	"github.com/tastream/tastream/pkg/indicator"
)

func init() {
	CrossCmd.Flags().Int("fast", 7, "fast moving average period")
	CrossCmd.Flags().Int("slow", 25, "slow moving average period")
	RootCmd.AddCommand(CrossCmd)
}

var CrossCmd = &cobra.Command{
	Use:          "cross",
	Short:        "replay a candle dataset and report moving average crosses",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		candles, err := loadCandles(cmd)
		if err != nil {
			return err
		}

		fast, err := cmd.Flags().GetInt("fast")
		if err != nil {
			return err
		}
		slow, err := cmd.Flags().GetInt("slow")
		if err != nil {
			return err
		}
		if fast >= slow {
			return errors.Errorf("fast period %d must be shorter than slow period %d", fast, slow)
		}

		closes := candles.CloseSeries()
		if len(closes) <= slow {
			return errors.Errorf("%d candles are not enough to seed a %d period average", len(closes), slow)
		}

		fastLine, err := indicator.NewSMA(fast, closes[:slow])
		if err != nil {
			return errors.Wrap(err, "fast sma")
		}
		slowLine, err := indicator.NewSMA(slow, closes[:slow])
		if err != nil {
			return errors.Wrap(err, "slow sma")
		}
		cross := indicator.NewCross(fastLine, slowLine)

		fastSeries := floats.New(float64(fastLine.Value()))
		slowSeries := floats.New(float64(slowLine.Value()))

		for i, v := range closes[slow:] {
			cross.Next(v)
			fastSeries.Push(float64(cross.Short().Value()))
			slowSeries.Push(float64(cross.Long().Value()))

			switch {
			case cross.IsGolden():
				log.WithFields(log.Fields{
					"candle":    slow + i,
					"fast":      cross.Short().Value(),
					"slow":      cross.Long().Value(),
					"confirmed": floats.CrossOver(fastSeries, slowSeries),
				}).Info("golden cross")
			case cross.IsDeath():
				log.WithFields(log.Fields{
					"candle":    slow + i,
					"fast":      cross.Short().Value(),
					"slow":      cross.Long().Value(),
					"confirmed": floats.CrossUnder(fastSeries, slowSeries),
				}).Info("death cross")
			}
		}

		log.Infof("replayed %d candles", len(candles))
		return nil
	},
}
