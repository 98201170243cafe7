//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// SpyProgressFactory records every progress reporter it starts.
type SpyProgressFactory struct {
	Labels    []string
	Reporters []*SpyProgressReporter
}

var _ repositories.ProgressFactory = (*SpyProgressFactory)(nil)

func (f *SpyProgressFactory) Start(label string, total int) repositories.ProgressReporter {
	reporter := &SpyProgressReporter{Total: total}
	f.Labels = append(f.Labels, label)
	f.Reporters = append(f.Reporters, reporter)
	return reporter
}

// SpyProgressReporter counts Advance and Done calls; Advance is safe for
// concurrent use.
type SpyProgressReporter struct {
	Total int

	mu       sync.Mutex
	advanced int
	changed  int
	done     int
}

var _ repositories.ProgressReporter = (*SpyProgressReporter)(nil)

func (r *SpyProgressReporter) Advance(_ string, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanced++
	if changed {
		r.changed++
	}
}

func (r *SpyProgressReporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
}

// Counts returns how many files were advanced, how many of them changed and
// how many times Done was called.
func (r *SpyProgressReporter) Counts() (int, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advanced, r.changed, r.done
}
