//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/test/infrastructure/repositorydoubles"
)

const repoRoot = "/repo"

// newWorkingTree creates the given files (and their parent directories) in
// an in-memory filesystem.
func newWorkingTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(repoRoot, 0o755))
	for _, file := range files {
		require.NoError(t, afero.WriteFile(fs, repoRoot+"/"+file, []byte("x=1\n"), 0o644))
	}
	return fs
}

func TestFileDiscovery_Discover(t *testing.T) {
	t.Parallel()

	t.Run("should keep python sources and detected scripts in VCS order", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t, "a.py", "src/b.PY", "README.md", "bin/tool", ".bashrc", "untracked.py")
		require.NoError(t, fs.MkdirAll(repoRoot+"/docs", 0o755))
		vcs := &repositorydoubles.SpyVCSRepository{
			Tracked: []string{"a.py", "src/b.PY", "README.md", "bin/tool", "docs", "deleted.py", ".bashrc"},
		}
		detector := &repositorydoubles.StubFileTypeDetector{
			Python: map[string]bool{"/repo/bin/tool": true},
		}

		// when
		files, err := commands.NewFileDiscovery(fs, detector).Discover(context.Background(), vcs, repoRoot, false)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.py", "/repo/src/b.PY", "/repo/bin/tool"}, files)
		assert.Equal(t, []string{"/repo/bin/tool", "/repo/.bashrc"}, detector.Checked)
	})

	t.Run("should skip a file whose type cannot be detected", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t, "a.py", "script")
		vcs := &repositorydoubles.SpyVCSRepository{Tracked: []string{"a.py", "script"}}
		detector := &repositorydoubles.StubFileTypeDetector{
			Errs: map[string]error{"/repo/script": errors.New("file: command not found")},
		}

		// when
		files, err := commands.NewFileDiscovery(fs, detector).Discover(context.Background(), vcs, repoRoot, false)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/a.py"}, files)
	})

	t.Run("should fail on a detection error in strict mode", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t, "a.py", "script")
		vcs := &repositorydoubles.SpyVCSRepository{Tracked: []string{"a.py", "script"}}
		detector := &repositorydoubles.StubFileTypeDetector{
			Errs: map[string]error{"/repo/script": errors.New("file: command not found")},
		}

		// when
		files, err := commands.NewFileDiscovery(fs, detector).Discover(context.Background(), vcs, repoRoot, true)

		// then
		require.Error(t, err)
		assert.Nil(t, files)
		assert.Contains(t, err.Error(), "script")
	})

	t.Run("should report a listing failure as a missing repository", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t)
		vcs := &repositorydoubles.SpyVCSRepository{ListErr: errors.New("not a repository")}

		// when
		files, err := commands.NewFileDiscovery(fs, nil).Discover(context.Background(), vcs, repoRoot, false)

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryNotFound)
		assert.Nil(t, files)
	})

	t.Run("should return an empty list when nothing is python", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t, "main.go", "Makefile")
		vcs := &repositorydoubles.SpyVCSRepository{Tracked: []string{"main.go", "Makefile"}}
		detector := &repositorydoubles.StubFileTypeDetector{}

		// when
		files, err := commands.NewFileDiscovery(fs, detector).Discover(context.Background(), vcs, repoRoot, false)

		// then
		require.NoError(t, err)
		assert.Empty(t, files)
		assert.Equal(t, []string{"/repo/Makefile"}, detector.Checked)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newWorkingTree(t, "a.py")
		vcs := &repositorydoubles.SpyVCSRepository{Tracked: []string{"a.py"}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		files, err := commands.NewFileDiscovery(fs, nil).Discover(ctx, vcs, repoRoot, false)

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, files)
	})
}
