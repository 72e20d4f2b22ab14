package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/skyward-analytics/flightrisk/internal/dataset"
)

var flightsFile string

var flightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "List selectable flight identities and routes in a dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := dataset.Load(flightsFile, cfg.Ingest)
		if err != nil {
			return eris.Wrap(err, "flights")
		}

		sum := dataset.Summarize(ds)
		return printJSON(os.Stdout, map[string][]string{
			"tails":  sum.Tails,
			"routes": sum.Routes,
		})
	},
}

func init() {
	flightsCmd.Flags().StringVar(&flightsFile, "file", "", "path to CSV or XLSX dataset (required)")
	_ = flightsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(flightsCmd)
}
