package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroclim/climate-cli/internal/analytics"
	"github.com/agroclim/climate-cli/internal/dataset"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print headline climate statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(loadOptions(cfg))
		if err != nil {
			return eris.Wrap(err, "stats")
		}

		first, last := t.YearRange()
		fmt.Printf("Observation period: %d-%d (%d days)\n", first, last, t.RowsLoaded)

		if t.Capabilities.TempMean {
			yearly := analytics.YearlyMeanTemp(t)
			cmp := analytics.CompareEras(t, analytics.DefaultHistogramBins)
			fmt.Printf("Mean temperature:   %.2f°C\n", analytics.MeanValue(yearly))
			fmt.Printf("Warming trend:      %+.2f°C (first vs last 5 years)\n", analytics.TrendDelta(yearly))
			fmt.Printf("Era shift:          %s %.2f°C -> %s %.2f°C (%+.2f°C)\n",
				cmp.Early.Period, cmp.Early.Mean, cmp.Recent.Period, cmp.Recent.Mean, cmp.Delta)
		} else {
			fmt.Println("Temperature:        no recognizable column in source")
		}

		if t.Capabilities.Precipitation {
			totals := analytics.AnnualPrecipTotals(t)
			fmt.Printf("Annual rainfall:    %.0f mm on average\n", analytics.MeanValue(totals))
			if wettest, driest, ok := extremes(totals); ok {
				fmt.Printf("Wettest year:       %d (%.0f mm)\n", wettest.Year, wettest.Value)
				fmt.Printf("Driest year:        %d (%.0f mm)\n", driest.Year, driest.Value)
			}
		} else {
			fmt.Println("Precipitation:      no recognizable column in source")
		}

		return nil
	},
}

// extremes returns the wettest and driest years of a totals series.
func extremes(totals []analytics.YearValue) (wettest, driest analytics.YearValue, ok bool) {
	if len(totals) == 0 {
		return wettest, driest, false
	}
	wettest, driest = totals[0], totals[0]
	for _, yv := range totals[1:] {
		if yv.Value > wettest.Value {
			wettest = yv
		}
		if yv.Value < driest.Value {
			driest = yv
		}
	}
	return wettest, driest, true
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
