// Package samplefile is the file collaborator of the calculator: it
// tokenizes whitespace-separated numeric text and renders summary
// reports. The registry and calculators never touch the filesystem
// themselves.
package samplefile

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/HazyCorp/statscalc/internal/hazyerr"
)

// Read scans r for whitespace-separated tokens and parses each as a
// float64, in left-to-right order. All well-formed values are
// returned even when some tokens are malformed; the malformed ones
// are reported together as one accumulated error.
func Read(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var vals []float64
	var errlist *multierror.Error
	for scanner.Scan() {
		token := scanner.Text()

		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			errlist = multierror.Append(
				errlist,
				errors.Wrapf(hazyerr.ErrMalformedInput, "token %q is not numeric", token),
			)
			continue
		}

		vals = append(vals, v)
	}

	if err := scanner.Err(); err != nil {
		errlist = multierror.Append(errlist, errors.Wrap(err, "cannot scan input"))
	}

	return vals, errlist.ErrorOrNil()
}

// ReadValues reads a whitespace-separated list of numeric values from
// the file at path.
func ReadValues(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open sample file %q", path)
	}
	defer f.Close()

	return Read(f)
}

// FileSource adapts a file path to the statcalc.ValueSource seam.
type FileSource struct {
	Path string
}

func (s FileSource) Values() ([]float64, error) {
	return ReadValues(s.Path)
}
