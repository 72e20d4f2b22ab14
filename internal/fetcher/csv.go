// Package fetcher parses flight-operations uploads from CSV and XLSX sources.
package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures the CSV parser.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
	MaxRows    int // cap on data rows (0 = unlimited)
}

// ReadCSV parses comma-separated text into a header row and data rows.
// Field values are trimmed. Rows may have fewer or more cells than the
// header; the caller squares them against the header. A UTF-8 byte order
// mark on the first cell is stripped.
func ReadCSV(r io.Reader, opts CSVOptions) (header []string, rows [][]string, err error) {
	// Excel exports routinely lead with a BOM; strip it before csv sees it.
	bomAware := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(bomAware)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			return header, rows, nil
		}
		if readErr != nil {
			return nil, nil, eris.Wrap(readErr, "csv: read row")
		}

		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}

		if header == nil {
			header = record
			continue
		}

		rows = append(rows, record)
		if opts.MaxRows > 0 && len(rows) >= opts.MaxRows {
			return header, rows, nil
		}
	}
}
