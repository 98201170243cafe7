package mercurial

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

const vcsName = "hg"

// VCSRepository implements repositories.VCSRepository by shelling out to the
// hg executable.
type VCSRepository struct {
	executable string
}

var _ domainRepos.VCSRepository = (*VCSRepository)(nil)

// NewVCSRepository creates a mercurial VCS repository using "hg" from PATH.
func NewVCSRepository() *VCSRepository {
	return &VCSRepository{executable: "hg"}
}

// NewVCSRepositoryWithExecutable creates a mercurial VCS repository using the
// given hg executable.
func NewVCSRepositoryWithExecutable(executable string) *VCSRepository {
	return &VCSRepository{executable: executable}
}

func (it *VCSRepository) Name() string { return vcsName }

// Detect runs `hg root` from dir.
func (it *VCSRepository) Detect(ctx context.Context, dir string) (string, bool) {
	output, err := it.run(ctx, dir, "root")
	if err != nil {
		logger.Debugf("[hg] %s is not a mercurial repository: %v", dir, err)
		return "", false
	}
	return strings.TrimSpace(output), true
}

// ListTrackedFiles runs `hg files` from the repository root.
func (it *VCSRepository) ListTrackedFiles(ctx context.Context, root string) ([]string, error) {
	output, err := it.run(ctx, root, "files")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// HasPendingChanges runs `hg status` restricted to modified, added and
// removed files.
func (it *VCSRepository) HasPendingChanges(ctx context.Context, root string) (bool, error) {
	output, err := it.run(ctx, root, "status", "--modified", "--added", "--removed", "--deleted")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// CommitAll runs `hg commit -m <message>`, which records every modified
// tracked file.
func (it *VCSRepository) CommitAll(ctx context.Context, root, message string) error {
	output, err := it.run(ctx, root, "commit", "-m", message)
	if err != nil {
		return err
	}
	logger.Debugf("[hg] %s", strings.TrimSpace(output))
	return nil
}

func (it *VCSRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, it.executable, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HGPLAIN=1")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("hg %s: %w\nOutput:\n%s", strings.Join(args, " "), err, output)
	}
	return string(output), nil
}

func splitLines(output string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, filepath.ToSlash(line))
	}
	return lines
}
