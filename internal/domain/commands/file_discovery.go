package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

const pythonExtension = ".py"

// FileDiscovery selects the tracked files of a working tree that the fixer
// should process.
type FileDiscovery struct {
	fs       afero.Fs
	detector repositories.FileTypeDetector
}

// NewFileDiscovery creates a FileDiscovery reading file metadata from fs and
// classifying extension-less files with detector.
func NewFileDiscovery(fs afero.Fs, detector repositories.FileTypeDetector) *FileDiscovery {
	return &FileDiscovery{fs: fs, detector: detector}
}

// Discover returns the absolute paths of the eligible files under root, in
// the order the VCS lists them. With strict set, a failing file-type check
// aborts the discovery instead of excluding the file.
func (it *FileDiscovery) Discover(
	ctx context.Context,
	vcs repositories.VCSRepository,
	root string,
	strict bool,
) ([]string, error) {
	tracked, err := vcs.ListTrackedFiles(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s files in %s: %w", entities.ErrRepositoryNotFound, vcs.Name(), root, err)
	}

	files := make([]string, 0, len(tracked))
	for _, rel := range tracked {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		path := filepath.Join(root, filepath.FromSlash(rel))

		info, statErr := it.fs.Stat(path)
		if statErr != nil {
			logger.Debugf("Skipping %s: %v", rel, statErr)
			continue
		}
		if info.IsDir() {
			logger.Debugf("Skipping directory %s", rel)
			continue
		}

		eligible, checkErr := it.isEligible(ctx, path)
		if checkErr != nil {
			if strict {
				return nil, fmt.Errorf("file type detection failed for %s: %w", rel, checkErr)
			}
			logger.Warnf("File type detection failed for %s, skipping it: %v", rel, checkErr)
			continue
		}
		if eligible {
			files = append(files, path)
		}
	}

	logger.Infof("Found %d Python files out of %d tracked files", len(files), len(tracked))
	return files, nil
}

// isEligible accepts ".py" files outright and asks the detector about files
// without an extension. Anything else is not a Python source.
func (it *FileDiscovery) isEligible(ctx context.Context, path string) (bool, error) {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, pythonExtension) {
		return true, nil
	}
	if ext != "" && ext != filepath.Base(path) {
		return false, nil
	}
	if it.detector == nil {
		return false, errors.New("no file type detector configured")
	}
	return it.detector.IsPythonScript(ctx, path)
}
