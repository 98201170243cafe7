//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// StubFileTypeDetector implements repositories.FileTypeDetector with fixed
// answers per path.
type StubFileTypeDetector struct {
	Python  map[string]bool
	Errs    map[string]error
	Checked []string
}

var _ repositories.FileTypeDetector = (*StubFileTypeDetector)(nil)

func (d *StubFileTypeDetector) IsPythonScript(_ context.Context, path string) (bool, error) {
	d.Checked = append(d.Checked, path)
	if err := d.Errs[path]; err != nil {
		return false, err
	}
	return d.Python[path], nil
}
