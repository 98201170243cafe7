package autopep8

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

const fixerName = "autopep8"

// FixerRepository implements repositories.FixerRepository by running the
// autopep8 executable on one file at a time.
type FixerRepository struct {
	executable string
	fs         afero.Fs
}

var _ domainRepos.FixerRepository = (*FixerRepository)(nil)

// NewFixerRepository creates an autopep8 fixer running the given executable
// and hashing file contents through fs.
func NewFixerRepository(executable string, fs afero.Fs) *FixerRepository {
	if executable == "" {
		executable = fixerName
	}
	return &FixerRepository{executable: executable, fs: fs}
}

func (it *FixerRepository) Name() string { return fixerName }

// Version parses the output of `autopep8 --version`, e.g.
// "autopep8 2.0.4 (pycodestyle: 2.11.1)".
func (it *FixerRepository) Version(ctx context.Context) (string, error) {
	output, err := it.run(ctx, "--version")
	if err != nil {
		return "", err
	}

	fields := strings.Fields(output)
	if len(fields) < 2 || fields[0] != fixerName { //nolint:mnd // name + version
		return "", fmt.Errorf("unexpected %s --version output: %q", it.executable, strings.TrimSpace(output))
	}
	return fields[1], nil
}

// Apply runs autopep8 with the active rules of opts on path. In in-place mode
// the file is rewritten and the change is detected by comparing content
// hashes; in diff mode the file is left alone and any diff output counts as
// a change.
func (it *FixerRepository) Apply(ctx context.Context, path string, opts entities.FixOptions) (bool, error) {
	if len(opts.Select) == 0 {
		return false, nil
	}

	before, err := it.hash(path)
	if err != nil {
		return false, err
	}

	output, err := it.run(ctx, buildArgs(path, opts)...)
	if err != nil {
		return false, err
	}

	if opts.Mode == entities.ModeDiff {
		if strings.TrimSpace(output) == "" {
			return false, nil
		}
		logger.Infof("[%s] %s\n%s", strings.Join(opts.Select, ","), path, output)
		return true, nil
	}

	after, err := it.hash(path)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(before, after), nil
}

// buildArgs maps the fix options onto autopep8 flags. Parallelism is handled
// by the caller, so autopep8 always gets a single file.
func buildArgs(path string, opts entities.FixOptions) []string {
	args := make([]string, 0, 8) //nolint:mnd // typical flag count

	if opts.Mode == entities.ModeDiff {
		args = append(args, "--diff")
	} else {
		args = append(args, "--in-place")
	}

	args = append(args, "--select="+strings.Join(opts.Select, ","))
	if opts.MaxLineLength > 0 {
		args = append(args, "--max-line-length="+strconv.Itoa(opts.MaxLineLength))
	}
	if opts.IndentSize > 0 {
		args = append(args, "--indent-size="+strconv.Itoa(opts.IndentSize))
	}
	for range opts.Aggressive {
		args = append(args, "--aggressive")
	}

	return append(args, "--", path)
}

func (it *FixerRepository) hash(path string) ([]byte, error) {
	content, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	sum := sha256.Sum256(content)
	return sum[:], nil
}

func (it *FixerRepository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, it.executable, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", entities.ErrFixerNotFound, it.executable, err)
		}
		return "", fmt.Errorf("%s %s: %w: %s",
			it.executable, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
