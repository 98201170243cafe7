//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// SpyVCSRepository implements repositories.VCSRepository as a configurable spy.
type SpyVCSRepository struct {
	// --- identity ---
	VCSName string

	// --- Detect ---
	Root         string
	DetectResult bool
	DetectedDirs []string

	// --- ListTrackedFiles ---
	Tracked []string
	ListErr error

	// --- HasPendingChanges ---
	Dirty    bool
	DirtyErr error

	// --- CommitAll ---
	CommitErr error
	// CommitErrs fails only the commits with the given message.
	CommitErrs map[string]error
	Commits    []string
	// OnCommit runs before each commit is recorded, e.g. to reset a fake
	// working tree.
	OnCommit func(message string)
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (v *SpyVCSRepository) Name() string {
	if v.VCSName == "" {
		return "spy"
	}
	return v.VCSName
}

func (v *SpyVCSRepository) Detect(_ context.Context, dir string) (string, bool) {
	v.DetectedDirs = append(v.DetectedDirs, dir)
	if !v.DetectResult {
		return "", false
	}
	return v.Root, true
}

func (v *SpyVCSRepository) ListTrackedFiles(_ context.Context, _ string) ([]string, error) {
	return v.Tracked, v.ListErr
}

func (v *SpyVCSRepository) HasPendingChanges(_ context.Context, _ string) (bool, error) {
	return v.Dirty, v.DirtyErr
}

func (v *SpyVCSRepository) CommitAll(_ context.Context, _ string, message string) error {
	if v.OnCommit != nil {
		v.OnCommit(message)
	}
	if err := v.CommitErrs[message]; err != nil {
		return err
	}
	if v.CommitErr != nil {
		return v.CommitErr
	}
	v.Commits = append(v.Commits, message)
	return nil
}
