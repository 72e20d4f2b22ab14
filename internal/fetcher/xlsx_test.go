package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	err := f.Save(path)
	require.NoError(t, err)
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"ORIGIN", "DESTINATION_AIRPORT"},
			{"JFK", "LAX"},
			{"EWR", "SFO"},
		},
	})

	header, rows, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ORIGIN", "DESTINATION_AIRPORT"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"JFK", "LAX"}, rows[0])
}

func TestReadXLSX_SheetByName(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"2024": {{"ORIGIN"}, {"JFK"}},
	})

	header, rows, err := ReadXLSX(path, XLSXOptions{SheetName: "2024"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ORIGIN"}, header)
	assert.Len(t, rows, 1)
}

func TestReadXLSX_SheetNotFound(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"A"}},
	})

	_, _, err := ReadXLSX(path, XLSXOptions{SheetName: "missing"})
	assert.Error(t, err)
}

func TestReadXLSX_MaxRows(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"A"}, {"1"}, {"2"}, {"3"}},
	})

	_, rows, err := ReadXLSX(path, XLSXOptions{MaxRows: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadXLSX_FileMissing(t *testing.T) {
	_, _, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	assert.Error(t, err)
}
