// Package statcalc implements a batch statistics accumulator over a
// sequence of float64 samples. All queries recompute from the full
// sample sequence, there is no cached or streaming state.
package statcalc

import (
	"math"

	"github.com/pkg/errors"
)

// Summary is a read-only view combining the three query results.
// Rendering and I/O belong to the callers (see internal/samplefile).
type Summary struct {
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ValueSource yields parsed numeric values in source order. The
// tokenization and parse policy lives behind this interface, the
// calculator only appends what it is handed.
type ValueSource interface {
	Values() ([]float64, error)
}

type Calculator struct {
	samples []float64
}

func New() *Calculator {
	return &Calculator{}
}

// Append adds v to the end of the sample sequence. Any float64 is
// accepted, including NaN and the infinities.
func (c *Calculator) Append(v float64) {
	c.samples = append(c.samples, v)
}

func (c *Calculator) Count() int {
	return len(c.samples)
}

// Sum returns the left-to-right sum of all stored samples,
// 0.0 for an empty calculator.
func (c *Calculator) Sum() float64 {
	var sum float64
	for _, v := range c.samples {
		sum += v
	}

	return sum
}

// Mean returns Sum()/Count(). With zero samples this is 0/0 and
// yields NaN, matching plain floating point division.
func (c *Calculator) Mean() float64 {
	return c.Sum() / float64(len(c.samples))
}

// StdDev returns the population standard deviation,
// sqrt(sum((x_i - mean)^2) / count). Not the N-1 sample variant.
// With zero samples the division yields NaN, same as Mean.
func (c *Calculator) StdDev() float64 {
	mean := c.Mean()

	var sqDiffSum float64
	for _, v := range c.samples {
		d := v - mean
		sqDiffSum += d * d
	}

	return math.Sqrt(sqDiffSum / float64(len(c.samples)))
}

// LoadFrom appends every value yielded by src, in source order, and
// reports how many were appended. Values parsed before a source error
// are still appended.
func (c *Calculator) LoadFrom(src ValueSource) (int, error) {
	vals, err := src.Values()
	for _, v := range vals {
		c.Append(v)
	}

	if err != nil {
		return len(vals), errors.Wrap(err, "value source failed")
	}

	return len(vals), nil
}

func (c *Calculator) Summary() Summary {
	return Summary{
		Sum:    c.Sum(),
		Mean:   c.Mean(),
		StdDev: c.StdDev(),
	}
}
