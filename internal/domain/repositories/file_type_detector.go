package repositories

import (
	"context"
)

// FileTypeDetector decides whether an extension-less file is a Python script.
type FileTypeDetector interface {
	IsPythonScript(ctx context.Context, path string) (bool, error)
}
