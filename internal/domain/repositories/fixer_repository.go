package repositories

import (
	"context"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// FixerRepository abstracts the external style-fix engine.
type FixerRepository interface {
	// Name returns the fixer identifier (e.g. "autopep8").
	Name() string

	// Version returns the fixer version as reported by the executable.
	Version(ctx context.Context) (string, error)

	// Apply runs the active rules of opts against a single file and reports
	// whether the file content changed (or would change, in diff mode).
	Apply(ctx context.Context, path string, opts entities.FixOptions) (bool, error)
}
