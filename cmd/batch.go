package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skyward-analytics/flightrisk/internal/assess"
	"github.com/skyward-analytics/flightrisk/internal/dataset"
	"github.com/skyward-analytics/flightrisk/internal/model"
)

var (
	batchFile        string
	batchOutput      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Assess every flight in a dataset",
	Long: `Assesses all records and writes the results as JSON.

The scoring engine is a pure function, so records are assessed concurrently
up to --concurrency. Output order matches dataset row order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := dataset.Load(batchFile, cfg.Ingest)
		if err != nil {
			return eris.Wrap(err, "batch")
		}

		results := make([]model.FlightAssessment, ds.Len())

		var g errgroup.Group
		g.SetLimit(batchConcurrency)
		for i, rec := range ds.Records {
			i, rec := i, rec
			g.Go(func() error {
				a := assess.Flight(rec)
				if a.FlightID == "" {
					a.FlightID = assess.FallbackID(i)
				}
				results[i] = a
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch: assess")
		}

		zap.L().Info("batch: assessment complete",
			zap.Int("flights", len(results)),
			zap.String("output", batchOutput),
		)

		if batchOutput == "" || batchOutput == "-" {
			return printJSON(os.Stdout, results)
		}

		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return eris.Wrap(err, "batch: marshal results")
		}
		if err := os.WriteFile(batchOutput, data, 0o644); err != nil {
			return eris.Wrap(err, "batch: write output")
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "path to CSV or XLSX dataset (required)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "-", "output path (- for stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max concurrent assessments")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}
