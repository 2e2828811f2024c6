// Package registry owns the live Calculator instances and hands out
// integer handles for indirect access to them.
package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

const (
	// HandleModeCompat computes the next handle as (max live handle)+1,
	// or 0 when the registry is empty. A handle CAN be handed out again
	// after the entry holding the current maximum is destroyed. This
	// matches the original allocation scheme and is the default.
	HandleModeCompat = "compat"

	// HandleModeMonotonic never reuses a handle for the lifetime of the
	// registry. Opt-in deviation for callers that cannot tolerate a
	// stale handle silently pointing at a new instance.
	HandleModeMonotonic = "monotonic"
)

type Config struct {
	HandleMode string `json:"handle_mode" yaml:"handle_mode"`
}

func DefaultConfig() Config {
	return Config{HandleMode: HandleModeCompat}
}

// Registry maps handles to calculators it exclusively owns. The
// registry sits behind the HTTP surface, so a single lock guards both
// the collection and every calculator access: instances never leave
// the lock, all per-instance work goes through With.
type Registry struct {
	mu sync.Mutex

	calcs map[int]*statcalc.Calculator
	next  int // used only in monotonic mode

	conf Config
	l    *slog.Logger
}

type opts struct {
	logger *slog.Logger
}

type Opt interface {
	apply(*opts)
}

type optFunc func(o *opts)

func (f optFunc) apply(o *opts) { f(o) }

func WithLogger(l *slog.Logger) Opt {
	return optFunc(func(o *opts) { o.logger = l })
}

func New(conf Config, options ...Opt) *Registry {
	var o opts
	for _, opt := range options {
		opt.apply(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = hzlog.NopLogger()
	}
	logger = logger.With(slog.String("component", "registry"))

	if conf.HandleMode == "" {
		conf.HandleMode = HandleModeCompat
	}

	return &Registry{
		calcs: make(map[int]*statcalc.Calculator),
		conf:  conf,
		l:     logger,
	}
}

// Create allocates a fresh empty calculator and returns its handle.
func (r *Registry) Create() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := r.nextHandle()
	r.calcs[handle] = statcalc.New()

	r.l.Debug("created calculator", slog.Int("handle", handle))

	return handle
}

func (r *Registry) nextHandle() int {
	if r.conf.HandleMode == HandleModeMonotonic {
		h := r.next
		r.next++
		return h
	}

	if len(r.calcs) == 0 {
		return 0
	}

	return lo.Max(lo.Keys(r.calcs)) + 1
}

// Destroy removes the entry for handle and reports whether an entry
// was actually removed. Destroying an unknown handle is a no-op, not
// an error.
func (r *Registry) Destroy(handle int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calcs[handle]; !exists {
		return false
	}

	delete(r.calcs, handle)
	r.l.Debug("destroyed calculator", slog.Int("handle", handle))

	return true
}

// With runs op on the calculator owned under handle while holding the
// registry lock, and reports whether the handle was live. The
// calculator must not escape op: it is the only way concurrent
// callers stay serialized on the same instance.
func (r *Registry) With(handle int, op func(c *statcalc.Calculator)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.calcs[handle]
	if !exists {
		return false
	}

	op(c)
	return true
}

// Handles returns the live handles in ascending order.
func (r *Registry) Handles() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := lo.Keys(r.calcs)
	sort.Ints(handles)

	return handles
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calcs)
}
