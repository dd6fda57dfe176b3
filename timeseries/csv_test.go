package timeseries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	t.Run("WithHeader", func(t *testing.T) {
		input := "date,y\n2024-01-01,1.5\n2024-01-02,2.5\n2024-01-03,3.5\n"
		s, err := LoadCSVFromReader(strings.NewReader(input), nil)
		require.NoError(t, err)
		require.Equal(t, []float64{1.5, 2.5, 3.5}, s.Values())
		require.Equal(t, "y", s.Name())
	})

	t.Run("CustomValueColumn", func(t *testing.T) {
		input := "value,other\n10,a\n20,b\n"
		opts := &CSVOptions{ValueColumn: "value", HasHeader: true, Delimiter: ','}
		s, err := LoadCSVFromReader(strings.NewReader(input), opts)
		require.NoError(t, err)
		require.Equal(t, []float64{10, 20}, s.Values())
	})

	t.Run("NoHeaderByIndex", func(t *testing.T) {
		input := "a,1\nb,2\nc,3\n"
		opts := &CSVOptions{ColumnIndex: 1, Delimiter: ','}
		s, err := LoadCSVFromReader(strings.NewReader(input), opts)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3}, s.Values())
	})

	t.Run("SkipRows", func(t *testing.T) {
		input := "junk\ny\n1\n2\n"
		opts := &CSVOptions{ValueColumn: "y", HasHeader: true, Delimiter: ',', SkipRows: 1}
		s, err := LoadCSVFromReader(strings.NewReader(input), opts)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2}, s.Values())
	})

	t.Run("MissingColumn", func(t *testing.T) {
		input := "a,b\n1,2\n"
		_, err := LoadCSVFromReader(strings.NewReader(input), nil)
		require.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("NonNumericValue", func(t *testing.T) {
		input := "y\nnot-a-number\n"
		_, err := LoadCSVFromReader(strings.NewReader(input), nil)
		require.Error(t, err)
	})

	t.Run("SemicolonDelimiter", func(t *testing.T) {
		input := "y;x\n1.5;a\n2.5;b\n"
		opts := &CSVOptions{ValueColumn: "y", HasHeader: true, Delimiter: ';'}
		s, err := LoadCSVFromReader(strings.NewReader(input), opts)
		require.NoError(t, err)
		require.Equal(t, []float64{1.5, 2.5}, s.Values())
	})
}
