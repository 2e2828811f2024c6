package samplefile

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

// FprintSummary renders the fixed-format textual summary to w.
func FprintSummary(w io.Writer, s statcalc.Summary) error {
	_, err := fmt.Fprintf(
		w,
		"sum:                %g\n"+
			"mean:               %g\n"+
			"standard deviation: %g\n",
		s.Sum, s.Mean, s.StdDev,
	)
	if err != nil {
		return errors.Wrap(err, "cannot render summary")
	}

	return nil
}

// WriteSummary writes the fixed-format summary to the file at path,
// truncating any previous content.
func WriteSummary(path string, s statcalc.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create stats file %q", path)
	}
	defer f.Close()

	if err := FprintSummary(f, s); err != nil {
		return errors.Wrapf(err, "cannot write stats to %q", path)
	}

	return nil
}
