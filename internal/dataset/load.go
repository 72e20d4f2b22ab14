package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/skyward-analytics/flightrisk/internal/config"
	"github.com/skyward-analytics/flightrisk/internal/fetcher"
	"github.com/skyward-analytics/flightrisk/internal/model"
)

// Load reads a dataset file, dispatching on extension: .xlsx workbooks are
// read with the XLSX reader, everything else is treated as CSV text.
func Load(path string, cfg config.IngestConfig) (*model.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		header, rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{
			SheetName: cfg.Sheet,
			MaxRows:   cfg.MaxRows,
		})
		if err != nil {
			return nil, err
		}
		return build(path, header, rows)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	header, rows, err := fetcher.ReadCSV(f, csvOptions(cfg))
	if err != nil {
		return nil, err
	}
	return build(path, header, rows)
}

// Parse builds a dataset from raw CSV bytes, as received by an upload
// endpoint.
func Parse(data []byte, cfg config.IngestConfig) (*model.Dataset, error) {
	header, rows, err := fetcher.ReadCSV(bytes.NewReader(data), csvOptions(cfg))
	if err != nil {
		return nil, err
	}
	return build("upload", header, rows)
}

func csvOptions(cfg config.IngestConfig) fetcher.CSVOptions {
	opts := fetcher.CSVOptions{
		LazyQuotes: cfg.LazyQuotes,
		MaxRows:    cfg.MaxRows,
	}
	if cfg.Delimiter != "" {
		opts.Delimiter = rune(cfg.Delimiter[0])
	}
	return opts
}

func build(source string, header []string, rows [][]string) (*model.Dataset, error) {
	ds, err := New(header, rows)
	if err != nil {
		return nil, err
	}
	zap.L().Info("dataset: parsed",
		zap.String("source", source),
		zap.Int("columns", len(ds.Headers)),
		zap.Int("rows", ds.Len()),
	)
	return ds, nil
}
