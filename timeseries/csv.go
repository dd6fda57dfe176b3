package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrColumnNotFound indicates the configured value column is missing from
// the input table.
var ErrColumnNotFound = errors.New("timeseries: value column not found")

// CSVOptions holds options for CSV ingestion.
type CSVOptions struct {
	ValueColumn string // Column name for values, used when HasHeader (default: "y")
	ColumnIndex int    // Column index for values, used when no header
	HasHeader   bool   // Whether the input has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at the start
}

// DefaultCSVOptions returns the default options for CSV ingestion.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file. This is a boundary convenience;
// the modeling layers never touch raw text themselves.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader producing CSV rows.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := opts.ColumnIndex
	name := ""
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx = -1
		for i, col := range header {
			if col == opts.ValueColumn {
				valueIdx = i
				break
			}
		}
		if valueIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.ValueColumn)
		}
		name = opts.ValueColumn
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			return nil, fmt.Errorf("%w: index %d in a row of %d fields", ErrColumnNotFound, valueIdx, len(record))
		}
		v, err := strconv.ParseFloat(record[valueIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: parsing value %q: %w", record[valueIdx], err)
		}
		values = append(values, v)
	}

	return Named(name, values), nil
}
