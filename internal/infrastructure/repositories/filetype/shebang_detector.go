package filetype

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// sniffSize is how much of a file is inspected for an interpreter line.
const sniffSize = 300

// ShebangDetector recognizes Python scripts by their first bytes: a shebang
// naming a python interpreter, or a PEP 263 encoding declaration.
type ShebangDetector struct {
	fs afero.Fs
}

var _ domainRepos.FileTypeDetector = (*ShebangDetector)(nil)

// NewShebangDetector creates a detector reading files through fs.
func NewShebangDetector(fs afero.Fs) *ShebangDetector {
	return &ShebangDetector{fs: fs}
}

func (it *ShebangDetector) IsPythonScript(_ context.Context, path string) (bool, error) {
	file, err := it.fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	return looksLikePython(string(head[:n])), nil
}

func looksLikePython(head string) bool {
	lines := strings.SplitN(strings.ToLower(head), "\n", 3) //nolint:mnd // PEP 263 allows line 1 or 2
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") && strings.Contains(lines[0], "python") {
		return true
	}
	for i, line := range lines {
		if i > 1 {
			break
		}
		if strings.HasPrefix(line, "#") && (strings.Contains(line, "coding:") || strings.Contains(line, "coding=")) {
			return true
		}
	}
	return false
}
