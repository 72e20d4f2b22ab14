// Package dataset builds parsed uploads into Datasets and answers
// dataset-wide queries: summaries and flight selection.
package dataset

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/skyward-analytics/flightrisk/internal/model"
)

// Structural input errors. These are the only hard failures in the core;
// per-field problems degrade to empty-string/zero defaults instead.
var (
	ErrEmptyInput = eris.New("dataset: input has no header row")
	ErrNoDataRows = eris.New("dataset: input has a header row but no data rows")
)

// New assembles a Dataset from a parsed header row and data rows. Header
// cells are trimmed and kept in upload order. Rows shorter than the header
// get empty strings for the missing trailing cells; extra cells are dropped.
func New(header []string, rows [][]string) (*model.Dataset, error) {
	headers := make([]string, 0, len(header))
	for _, h := range header {
		headers = append(headers, strings.TrimSpace(h))
	}
	if len(headers) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}

	records := make([]model.RawRecord, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if _, dup := values[h]; dup {
				continue // first occurrence of a duplicated header wins
			}
			if i < len(row) {
				values[h] = strings.TrimSpace(row[i])
			} else {
				values[h] = ""
			}
		}
		records = append(records, model.RawRecord{Headers: headers, Values: values})
	}

	return &model.Dataset{Headers: headers, Records: records}, nil
}
