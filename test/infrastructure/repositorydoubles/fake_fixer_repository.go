//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"slices"
	"sync"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// FakeFixerRepository implements repositories.FixerRepository over an
// in-memory table of violations: a file changes the first time one of its
// violation codes is selected, and never again.
type FakeFixerRepository struct {
	VersionValue string
	VersionErr   error

	// Violations maps a file path to the codes it violates.
	Violations map[string][]string
	// ApplyErrs fails every Apply call on the given path.
	ApplyErrs map[string]error
	// Block, when set, makes Apply wait until the context is cancelled.
	Block bool

	mu    sync.Mutex
	fixed map[string]bool
	calls []ApplyCall
}

// ApplyCall records a single invocation of Apply.
type ApplyCall struct {
	Path string
	Opts entities.FixOptions
}

var _ repositories.FixerRepository = (*FakeFixerRepository)(nil)

func (f *FakeFixerRepository) Name() string { return "fake" }

func (f *FakeFixerRepository) Version(_ context.Context) (string, error) {
	if f.VersionErr != nil {
		return "", f.VersionErr
	}
	if f.VersionValue == "" {
		return "2.3.1", nil
	}
	return f.VersionValue, nil
}

func (f *FakeFixerRepository) Apply(ctx context.Context, path string, opts entities.FixOptions) (bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, ApplyCall{Path: path, Opts: opts})
	f.mu.Unlock()

	if f.Block {
		<-ctx.Done()
		return false, ctx.Err()
	}
	if err := f.ApplyErrs[path]; err != nil {
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fixed == nil {
		f.fixed = make(map[string]bool)
	}

	changed := false
	for _, code := range f.Violations[path] {
		key := path + "|" + code
		if f.fixed[key] || !slices.Contains(opts.Select, code) {
			continue
		}
		if opts.Mode != entities.ModeDiff {
			f.fixed[key] = true
		}
		changed = true
	}
	return changed, nil
}

// Calls returns a copy of the recorded Apply invocations.
func (f *FakeFixerRepository) Calls() []ApplyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ApplyCall(nil), f.calls...)
}

// CalledPaths returns the paths of the recorded Apply invocations.
func (f *FakeFixerRepository) CalledPaths() []string {
	calls := f.Calls()
	paths := make([]string, 0, len(calls))
	for _, call := range calls {
		paths = append(paths, call.Path)
	}
	return paths
}
