package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/skyward-analytics/flightrisk/internal/dataset"
)

var (
	summaryFile   string
	summaryFormat string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a flight-operations dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := dataset.Load(summaryFile, cfg.Ingest)
		if err != nil {
			return eris.Wrap(err, "summary")
		}

		sum := dataset.Summarize(ds)

		if summaryFormat == "text" {
			fmt.Printf("Flights:       %d\n", sum.TotalFlights)
			fmt.Printf("Carriers:      %d (%s)\n", sum.CarrierCount, strings.Join(sum.Carriers, ", "))
			fmt.Printf("Destinations:  %d (%s)\n", sum.DestinationCount, strings.Join(sum.Destinations, ", "))
			fmt.Printf("Tails:         %s\n", strings.Join(sum.Tails, ", "))
			fmt.Printf("Routes:        %s\n", strings.Join(sum.Routes, " | "))
			return nil
		}

		return printJSON(os.Stdout, sum)
	},
}

func printJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "encode json")
	}
	return nil
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFile, "file", "", "path to CSV or XLSX dataset (required)")
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "json", "output format: json or text")
	_ = summaryCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(summaryCmd)
}
