package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skyward-analytics/flightrisk/internal/assess"
	"github.com/skyward-analytics/flightrisk/internal/dataset"
	"github.com/skyward-analytics/flightrisk/internal/model"
)

var (
	assessFile  string
	assessTail  string
	assessRoute string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one flight selected by tail number or route",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if (assessTail == "") == (assessRoute == "") {
			return eris.New("assess: exactly one of --tail or --route is required")
		}

		ds, err := dataset.Load(assessFile, cfg.Ingest)
		if err != nil {
			return eris.Wrap(err, "assess")
		}

		var sel model.Selection
		var found bool
		if assessTail != "" {
			sel, found = dataset.SelectByTail(ds, assessTail)
		} else {
			sel, found = dataset.SelectByRoute(ds, assessRoute)
		}
		if !found {
			return eris.New("assess: no matching flight in dataset")
		}

		zap.L().Info("assess: flight selected",
			zap.String("flight_id", sel.FlightID),
			zap.String("route", sel.RouteKey),
		)

		result := assess.Flight(sel.Record)
		result.FlightID = sel.FlightID
		result.RouteKey = sel.RouteKey
		return printJSON(os.Stdout, result)
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessFile, "file", "", "path to CSV or XLSX dataset (required)")
	assessCmd.Flags().StringVar(&assessTail, "tail", "", "flight identity (tail or flight number)")
	assessCmd.Flags().StringVar(&assessRoute, "route", "", `route key, e.g. "JFK → LAX"`)
	_ = assessCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(assessCmd)
}
