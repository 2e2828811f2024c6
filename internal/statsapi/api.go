// Package statsapi is the boundary layer over the registry. It keeps
// the original handle-API contract: operations addressed to an
// unknown handle are swallowed, mutations become no-ops and queries
// return 0.0. Callers that need to distinguish the miss use Report.
package statsapi

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/HazyCorp/statscalc/internal/hazyerr"
	"github.com/HazyCorp/statscalc/internal/registry"
	"github.com/HazyCorp/statscalc/internal/samplefile"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

type API struct {
	reg *registry.Registry
	l   *slog.Logger
}

type In struct {
	fx.In

	Logger   *slog.Logger
	Registry *registry.Registry
}

func New(in In) *API {
	return &API{
		reg: in.Registry,
		l:   in.Logger.With(slog.String("component", "stats-api")),
	}
}

// Create allocates a new calculator and returns its handle. Never
// fails.
func (a *API) Create() int {
	handle := a.reg.Create()
	handlesCreated.Inc()

	return handle
}

// Destroy removes the calculator under handle, silently ignoring an
// unknown handle.
func (a *API) Destroy(handle int) {
	if !a.reg.Destroy(handle) {
		a.missed("destroy", handle)
		return
	}

	handlesDestroyed.Inc()
}

// AppendValue appends v to the calculator under handle. Unknown
// handle: no-op.
func (a *API) AppendValue(handle int, v float64) {
	exists := a.reg.With(handle, func(c *statcalc.Calculator) {
		c.Append(v)
	})
	if !exists {
		a.missed("append_value", handle)
		return
	}

	valuesAppended.Inc()
}

// ReadFile appends every numeric token of the file at path to the
// calculator under handle. Unknown handle: no-op. File problems are
// logged and swallowed, boundary operations never fail; values parsed
// before a malformed token are still applied.
func (a *API) ReadFile(handle int, path string) {
	var n int
	var err error
	exists := a.reg.With(handle, func(c *statcalc.Calculator) {
		n, err = c.LoadFrom(samplefile.FileSource{Path: path})
	})
	if !exists {
		a.missed("read_file", handle)
		return
	}

	if err != nil {
		fileErrors.Inc()
		a.l.Warn(
			"cannot fully load sample file",
			slog.Int("handle", handle),
			slog.String("path", path),
			slog.Int("loaded", n),
			hzlog.Error(err),
		)
		return
	}

	a.l.Debug(
		"loaded sample file",
		slog.Int("handle", handle),
		slog.String("path", path),
		slog.Int("loaded", n),
	)
}

// WriteStats writes the fixed-format summary of the calculator under
// handle to the file at path. Unknown handle: no-op.
func (a *API) WriteStats(handle int, path string) {
	var err error
	exists := a.reg.With(handle, func(c *statcalc.Calculator) {
		err = samplefile.WriteSummary(path, c.Summary())
	})
	if !exists {
		a.missed("write_stats", handle)
		return
	}

	if err != nil {
		fileErrors.Inc()
		a.l.Warn(
			"cannot write stats file",
			slog.Int("handle", handle),
			slog.String("path", path),
			hzlog.Error(err),
		)
	}
}

// Sum returns the sum of the samples under handle, 0.0 for an unknown
// handle.
func (a *API) Sum(handle int) float64 {
	return a.query("get_sum", handle, (*statcalc.Calculator).Sum)
}

// Mean returns the mean of the samples under handle, 0.0 for an
// unknown handle. An empty calculator yields NaN.
func (a *API) Mean(handle int) float64 {
	return a.query("get_mean", handle, (*statcalc.Calculator).Mean)
}

// StdDev returns the population standard deviation of the samples
// under handle, 0.0 for an unknown handle. An empty calculator yields
// NaN.
func (a *API) StdDev(handle int) float64 {
	return a.query("get_std_dev", handle, (*statcalc.Calculator).StdDev)
}

func (a *API) query(op string, handle int, get func(c *statcalc.Calculator) float64) float64 {
	var val float64
	exists := a.reg.With(handle, func(c *statcalc.Calculator) {
		val = get(c)
	})
	if !exists {
		a.missed(op, handle)
		return 0.0
	}

	return val
}

// Report returns the structured summary. Unlike the scalar getters it
// does not fold the miss into a default value: an unknown handle
// yields an error wrapping hazyerr.ErrNotFound.
func (a *API) Report(handle int) (statcalc.Summary, error) {
	var summary statcalc.Summary
	exists := a.reg.With(handle, func(c *statcalc.Calculator) {
		summary = c.Summary()
	})
	if !exists {
		a.missed("report", handle)
		return statcalc.Summary{}, errors.Wrapf(hazyerr.ErrNotFound, "no calculator under handle %d", handle)
	}

	return summary, nil
}

// Handles returns the live handles in ascending order.
func (a *API) Handles() []int {
	return a.reg.Handles()
}

func (a *API) missed(op string, handle int) {
	unknownHandleOpsFor(op).Inc()
	a.l.Debug(
		"operation addressed to unknown handle, skipped",
		slog.String("op", op),
		slog.Int("handle", handle),
	)
}
