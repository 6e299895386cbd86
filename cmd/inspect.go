package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agroclim/climate-cli/internal/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the dataset and print the column-inference report",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(loadOptions(cfg))
		if err != nil {
			return eris.Wrap(err, "inspect")
		}

		first, last := t.YearRange()
		fmt.Printf("Source:        %s\n", t.SourcePath)
		fmt.Printf("Header:        %s\n", strings.Join(t.Header, ", "))
		fmt.Printf("Rows loaded:   %d\n", t.RowsLoaded)
		fmt.Printf("Rows dropped:  %d (unparseable date)\n", t.RowsDropped)
		fmt.Printf("Year range:    %d-%d\n", first, last)
		fmt.Println()
		fmt.Println("Column bindings:")
		fmt.Printf("  date:          %s\n", t.Schema.DateColumn)
		fmt.Printf("  temp_mean:     %s\n", describeMean(t.Schema.TempMeanColumns))
		fmt.Printf("  temp_max:      %s\n", orAbsent(t.Schema.TempMaxColumn))
		fmt.Printf("  temp_min:      %s\n", orAbsent(t.Schema.TempMinColumn))
		fmt.Printf("  precipitation: %s\n", orAbsent(t.Schema.PrecipitationColumn))
		return nil
	},
}

func describeMean(cols []string) string {
	switch len(cols) {
	case 0:
		return "(absent)"
	case 1:
		return cols[0]
	default:
		return fmt.Sprintf("average of %s and %s", cols[0], cols[1])
	}
}

func orAbsent(col string) string {
	if col == "" {
		return "(absent)"
	}
	return col
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
