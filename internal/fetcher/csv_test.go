package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_Basic(t *testing.T) {
	input := "ORIGIN,DEST\nJFK,LAX\nEWR,SFO\n"

	header, rows, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ORIGIN", "DEST"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"JFK", "LAX"}, rows[0])
	assert.Equal(t, []string{"EWR", "SFO"}, rows[1])
}

func TestReadCSV_StripsBOM(t *testing.T) {
	input := "\ufeffORIGIN,DEST\nJFK,LAX\n"

	header, _, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ORIGIN", header[0])
}

func TestReadCSV_TrimsFields(t *testing.T) {
	input := " ORIGIN , DEST \n JFK , LAX \n"

	header, rows, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ORIGIN", "DEST"}, header)
	assert.Equal(t, []string{"JFK", "LAX"}, rows[0])
}

func TestReadCSV_VariableFieldCounts(t *testing.T) {
	input := "A,B,C\n1,2\n1,2,3,4\n"

	_, rows, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 4)
}

func TestReadCSV_CustomDelimiter(t *testing.T) {
	input := "A;B\n1;2\n"

	header, rows, err := ReadCSV(strings.NewReader(input), CSVOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, header)
	assert.Equal(t, []string{"1", "2"}, rows[0])
}

func TestReadCSV_Empty(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	require.NoError(t, err)
	assert.Nil(t, header)
	assert.Nil(t, rows)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	header, rows, err := ReadCSV(strings.NewReader("A,B\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, header)
	assert.Empty(t, rows)
}

func TestReadCSV_MaxRows(t *testing.T) {
	input := "A\n1\n2\n3\n"

	_, rows, err := ReadCSV(strings.NewReader(input), CSVOptions{MaxRows: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
