package filetype

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// FileCommandDetector asks file(1) for the type of a file and accepts
// anything it describes as a Python script.
type FileCommandDetector struct {
	executable string
}

var _ domainRepos.FileTypeDetector = (*FileCommandDetector)(nil)

// NewFileCommandDetector creates a detector using "file" from PATH.
func NewFileCommandDetector() *FileCommandDetector {
	return &FileCommandDetector{executable: "file"}
}

// NewFileCommandDetectorWithExecutable creates a detector using the given
// file(1) executable.
func NewFileCommandDetectorWithExecutable(executable string) *FileCommandDetector {
	return &FileCommandDetector{executable: executable}
}

// IsPythonScript runs `file --brief <path>`; output such as
// "Python script, ASCII text executable" is a match.
func (it *FileCommandDetector) IsPythonScript(ctx context.Context, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, it.executable, "--brief", path)

	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("%s --brief %s: %w", it.executable, path, err)
	}
	return isPythonDescription(string(output)), nil
}

func isPythonDescription(description string) bool {
	lower := strings.ToLower(description)
	return strings.Contains(lower, "python") && strings.Contains(lower, "script")
}
