package statcalc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Empty(t *testing.T) {
	c := New()

	require.Equal(t, 0, c.Count())
	require.Equal(t, 0.0, c.Sum())

	// 0/0 is not special-cased: mean and stddev of nothing are NaN
	require.True(t, math.IsNaN(c.Mean()))
	require.True(t, math.IsNaN(c.StdDev()))
}

func TestCalculator_Scenario(t *testing.T) {
	c := New()
	c.Append(2.0)
	c.Append(4.0)
	c.Append(6.0)

	require.Equal(t, 3, c.Count())
	require.Equal(t, 12.0, c.Sum())
	require.Equal(t, 4.0, c.Mean())
	require.InDelta(t, math.Sqrt(8.0/3.0), c.StdDev(), 1e-12)
}

func TestCalculator_SumIsLeftToRight(t *testing.T) {
	vals := []float64{0.1, 0.2, 0.3, -1.5, 42.0, 0.2}

	c := New()
	var want float64
	for _, v := range vals {
		c.Append(v)
		want += v
	}

	require.Equal(t, want, c.Sum())
	require.Equal(t, want/float64(len(vals)), c.Mean())
}

func TestCalculator_PopulationStdDev(t *testing.T) {
	// single sample: population formula divides by N, not N-1
	c := New()
	c.Append(3.5)

	require.Equal(t, 3.5, c.Mean())
	require.Equal(t, 0.0, c.StdDev())
}

func TestCalculator_NonFiniteValuesFlowThrough(t *testing.T) {
	c := New()
	c.Append(1.0)
	c.Append(math.Inf(1))

	require.True(t, math.IsInf(c.Sum(), 1))
	require.True(t, math.IsInf(c.Mean(), 1))

	c2 := New()
	c2.Append(math.NaN())
	require.True(t, math.IsNaN(c2.Sum()))
}

type sliceSource struct {
	vals []float64
	err  error
}

func (s sliceSource) Values() ([]float64, error) {
	return s.vals, s.err
}

func TestCalculator_LoadFrom(t *testing.T) {
	c := New()
	c.Append(1.0)

	n, err := c.LoadFrom(sliceSource{vals: []float64{2.0, 3.0}})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// loading appends, it never clears what is already stored
	require.Equal(t, 3, c.Count())
	require.Equal(t, 6.0, c.Sum())
}

func TestCalculator_LoadFrom_PartialSource(t *testing.T) {
	c := New()

	n, err := c.LoadFrom(sliceSource{vals: []float64{5.0}, err: errors.New("boom")})
	require.Error(t, err)
	require.Equal(t, 1, n)

	// values yielded before the failure are kept
	require.Equal(t, 5.0, c.Sum())
}

func TestSummary_JSONRendersNaN(t *testing.T) {
	data, err := json.Marshal(New().Summary())
	require.NoError(t, err)
	require.JSONEq(t, `{"sum": 0, "mean": "NaN", "std_dev": "NaN"}`, string(data))
}

func TestFloat_JSON(t *testing.T) {
	data, err := json.Marshal(Float(1.5))
	require.NoError(t, err)
	require.Equal(t, `1.5`, string(data))

	data, err = json.Marshal(Float(math.Inf(-1)))
	require.NoError(t, err)
	require.Equal(t, `"-Inf"`, string(data))
}
