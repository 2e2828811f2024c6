package samplefile

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HazyCorp/statscalc/internal/hazyerr"
	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

func TestRead_WhitespaceSeparated(t *testing.T) {
	input := "2.0 4.0\t6.0\n-1.5\n\n  3e2"

	vals, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []float64{2.0, 4.0, 6.0, -1.5, 300.0}, vals)
}

func TestRead_Empty(t *testing.T) {
	vals, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, vals)
}

func TestRead_MalformedTokensAreReportedNotFatal(t *testing.T) {
	input := "1.0 banana 2.0 0x 3.0"

	vals, err := Read(strings.NewReader(input))
	require.Error(t, err)
	require.ErrorIs(t, err, hazyerr.ErrMalformedInput)
	require.Contains(t, err.Error(), "banana")

	// the well-formed values still come through, in order
	require.Equal(t, []float64{1.0, 2.0, 3.0}, vals)
}

func TestReadValues_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 4 6"), 0644))

	vals, err := ReadValues(path)
	require.NoError(t, err)
	require.Equal(t, []float64{2.0, 4.0, 6.0}, vals)
}

func TestReadValues_MissingFile(t *testing.T) {
	_, err := ReadValues(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestFileSource_IsValueSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3"), 0644))

	var src statcalc.ValueSource = FileSource{Path: path}
	vals, err := src.Values()
	require.NoError(t, err)
	require.Len(t, vals, 3)
}

func TestWriteSummary_FixedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")

	err := WriteSummary(path, statcalc.Summary{Sum: 12, Mean: 4, StdDev: 1.5})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(
		t,
		"sum:                12\n"+
			"mean:               4\n"+
			"standard deviation: 1.5\n",
		string(data),
	)
}

func TestFprintSummary_NaN(t *testing.T) {
	var sb strings.Builder

	err := FprintSummary(&sb, statcalc.Summary{Sum: 0, Mean: math.NaN(), StdDev: math.NaN()})
	require.NoError(t, err)
	require.Contains(t, sb.String(), "mean:               NaN")
}
