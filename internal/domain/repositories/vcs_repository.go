package repositories

import (
	"context"
)

// VCSRepository abstracts a version-control system (git, mercurial).
// Implementations only list what is tracked and commit what is pending; they
// never decide which files get fixed.
type VCSRepository interface {
	// Name returns the VCS identifier (e.g. "git", "hg").
	Name() string

	// Detect reports whether dir lives inside a repository of this kind and
	// returns the repository root.
	Detect(ctx context.Context, dir string) (string, bool)

	// ListTrackedFiles returns the tracked paths relative to root, slash
	// separated, in the order the VCS reports them.
	ListTrackedFiles(ctx context.Context, root string) ([]string, error)

	// HasPendingChanges reports whether tracked files differ from the last
	// revision.
	HasPendingChanges(ctx context.Context, root string) (bool, error)

	// CommitAll records every pending change to tracked files as one revision.
	CommitAll(ctx context.Context, root, message string) error
}
