package statsapi

import (
	"fmt"
	"sync"

	"github.com/VictoriaMetrics/metrics"
)

var (
	handlesCreated   = metrics.NewCounter(`statscalc_handles_created_total`)
	handlesDestroyed = metrics.NewCounter(`statscalc_handles_destroyed_total`)
	valuesAppended   = metrics.NewCounter(`statscalc_values_appended_total`)
	fileErrors       = metrics.NewCounter(`statscalc_file_errors_total`)

	unknownHandleMu  sync.Mutex
	unknownHandleOps = map[string]*metrics.Counter{}
)

// unknownHandleOpsFor lazily registers the per-op miss counter. The
// op set is small and fixed, lock contention is not a concern here.
func unknownHandleOpsFor(op string) *metrics.Counter {
	unknownHandleMu.Lock()
	defer unknownHandleMu.Unlock()

	c, exists := unknownHandleOps[op]
	if exists {
		return c
	}

	c = metrics.NewCounter(fmt.Sprintf(`statscalc_unknown_handle_ops_total{op=%q}`, op))
	unknownHandleOps[op] = c

	return c
}
