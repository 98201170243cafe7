package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

const vcsName = "git"

// VCSRepository implements repositories.VCSRepository on top of go-git, so
// no git binary is needed.
type VCSRepository struct{}

var _ domainRepos.VCSRepository = (*VCSRepository)(nil)

// NewVCSRepository creates a new git VCS repository.
func NewVCSRepository() *VCSRepository {
	return &VCSRepository{}
}

func (it *VCSRepository) Name() string { return vcsName }

// Detect opens the repository containing dir, walking up to the nearest .git.
func (it *VCSRepository) Detect(_ context.Context, dir string) (string, bool) {
	repo, err := open(dir)
	if err != nil {
		logger.Debugf("[git] %s is not a git repository: %v", dir, err)
		return "", false
	}

	worktree, err := repo.Worktree()
	if err != nil {
		logger.Debugf("[git] %s has no worktree: %v", dir, err)
		return "", false
	}
	return worktree.Filesystem.Root(), true
}

// ListTrackedFiles returns the index entries, which is what `git ls-files`
// prints: sorted, slash separated, root relative.
func (it *VCSRepository) ListTrackedFiles(_ context.Context, root string) ([]string, error) {
	repo, err := open(root)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	index, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading git index: %w", err)
	}

	seen := make(map[string]bool, len(index.Entries))
	files := make([]string, 0, len(index.Entries))
	for _, entry := range index.Entries {
		// conflicted paths appear once per stage
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		files = append(files, entry.Name)
	}
	return files, nil
}

// HasPendingChanges reports staged or unstaged modifications of tracked
// files. Untracked files are ignored, they are never committed.
func (it *VCSRepository) HasPendingChanges(_ context.Context, root string) (bool, error) {
	repo, err := open(root)
	if err != nil {
		return false, fmt.Errorf("opening git repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	for _, fileStatus := range status {
		if fileStatus.Worktree == git.Untracked {
			continue
		}
		if fileStatus.Staging != git.Unmodified || fileStatus.Worktree != git.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

// CommitAll stages every modified or deleted tracked file and commits it,
// like `git commit -a -m <message>`.
func (it *VCSRepository) CommitAll(_ context.Context, root, message string) error {
	repo, err := open(root)
	if err != nil {
		return fmt.Errorf("opening git repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	author, err := resolveAuthor(repo)
	if err != nil {
		return err
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		All:    true,
		Author: author,
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	logger.Debugf("[git] Created commit %s", hash.String()[:7])
	return nil
}

func open(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}

// resolveAuthor reads user.name and user.email from the repository and
// global configuration, falling back to the GIT_AUTHOR_* variables.
func resolveAuthor(repo *git.Repository) (*object.Signature, error) {
	name := os.Getenv("GIT_AUTHOR_NAME")
	email := os.Getenv("GIT_AUTHOR_EMAIL")

	if cfg, err := repo.ConfigScoped(config.GlobalScope); err == nil {
		if name == "" {
			name = cfg.User.Name
		}
		if email == "" {
			email = cfg.User.Email
		}
	}

	if name == "" || email == "" {
		return nil, errors.New("commit author unknown: set user.name and user.email in the git config")
	}

	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}, nil
}
