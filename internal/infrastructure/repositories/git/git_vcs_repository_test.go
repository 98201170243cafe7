//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitRepo "github.com/rios0rios0/autostyle/internal/infrastructure/repositories/git"
)

// initRepository creates a repository with one commit tracking the given
// files; each file holds its own name.
func initRepository(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(file+"\n"), 0o600))
		_, addErr := worktree.Add(file)
		require.NoError(t, addErr)
	}

	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return root
}

func headMessage(t *testing.T, root string) string {
	t.Helper()
	repo, err := gogit.PlainOpen(root)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	return commit.Message
}

func headHash(t *testing.T, root string) string {
	t.Helper()
	repo, err := gogit.PlainOpen(root)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	return head.Hash().String()
}

func TestVCSRepository_Detect(t *testing.T) {
	t.Parallel()

	t.Run("should find the root from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "pkg/module.py")

		// when
		found, ok := gitRepo.NewVCSRepository().Detect(context.Background(), filepath.Join(root, "pkg"))

		// then
		assert.True(t, ok)
		assert.Equal(t, root, found)
	})

	t.Run("should not detect a plain directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		found, ok := gitRepo.NewVCSRepository().Detect(context.Background(), dir)

		// then
		assert.False(t, ok)
		assert.Empty(t, found)
	})
}

func TestVCSRepository_ListTrackedFiles(t *testing.T) {
	t.Parallel()

	t.Run("should list only tracked files", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "a.py", "pkg/b.py", "README.md")
		require.NoError(t, os.WriteFile(filepath.Join(root, "untracked.py"), []byte("x\n"), 0o600))

		// when
		files, err := gitRepo.NewVCSRepository().ListTrackedFiles(context.Background(), root)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.py", "pkg/b.py", "README.md"}, files)
	})
}

//nolint:paralleltest // t.Setenv is not compatible with parallel tests
func TestVCSRepository_CommitAll(t *testing.T) {
	t.Setenv("GIT_AUTHOR_NAME", "Style Bot")
	t.Setenv("GIT_AUTHOR_EMAIL", "style@example.com")

	t.Run("should commit modified tracked files", func(t *testing.T) {
		// given
		root := initRepository(t, "a.py", "b.py")
		vcs := gitRepo.NewVCSRepository()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("a = 1\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(root, "new.py"), []byte("x\n"), 0o600))

		dirty, err := vcs.HasPendingChanges(context.Background(), root)
		require.NoError(t, err)
		require.True(t, dirty)

		// when
		err = vcs.CommitAll(context.Background(), root, "[autopep8] E225 - Fix missing whitespace around operator")

		// then
		require.NoError(t, err)
		assert.Equal(t, "[autopep8] E225 - Fix missing whitespace around operator", headMessage(t, root))
		dirty, err = vcs.HasPendingChanges(context.Background(), root)
		require.NoError(t, err)
		assert.False(t, dirty)
		files, err := vcs.ListTrackedFiles(context.Background(), root)
		require.NoError(t, err)
		assert.NotContains(t, files, "new.py")
	})

	t.Run("should refuse to commit without a known author", func(t *testing.T) {
		// given
		t.Setenv("GIT_AUTHOR_NAME", "")
		t.Setenv("GIT_AUTHOR_EMAIL", "")
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		root := initRepository(t, "a.py")
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("a = 1\n"), 0o600))
		before := headHash(t, root)

		// when
		err := gitRepo.NewVCSRepository().CommitAll(context.Background(), root, "[autopep8] E225 - Fix missing whitespace around operator")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit author unknown")
		assert.Equal(t, before, headHash(t, root))
	})

	t.Run("should report a clean tree with only untracked files", func(t *testing.T) {
		// given
		root := initRepository(t, "a.py")
		require.NoError(t, os.WriteFile(filepath.Join(root, "scratch.py"), []byte("x\n"), 0o600))

		// when
		dirty, err := gitRepo.NewVCSRepository().HasPendingChanges(context.Background(), root)

		// then
		require.NoError(t, err)
		assert.False(t, dirty)
	})
}
