package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/autostyle/internal/infrastructure/repositories"
)

// minimumFixerVersion is the first autopep8 release that knows every code in
// the default catalog.
const minimumFixerVersion = "v1.5.0"

const singleCommitLabel = "all"

// Fix is the interface for the fix command (the commit orchestrator).
type Fix interface {
	Execute(ctx context.Context, settings *entities.Settings, opts FixOptions) (*entities.FixReport, error)
}

// FixOptions holds runtime options for a single run.
type FixOptions struct {
	RepoDir      string
	SingleCommit bool
	DryRun       bool
	AllowDirty   bool
}

// FixCommand applies every catalog rule to the tracked Python files of a
// repository and commits the changes of each rule separately (or all at
// once in single-commit mode).
type FixCommand struct {
	vcsRegistry      *infraRepos.VCSRegistry
	fixerRegistry    *infraRepos.FixerRegistry
	detectorRegistry *infraRepos.DetectorRegistry
	progress         repositories.ProgressFactory
	fs               afero.Fs
}

// NewFixCommand creates a new FixCommand with the given registries.
func NewFixCommand(
	vcsRegistry *infraRepos.VCSRegistry,
	fixerRegistry *infraRepos.FixerRegistry,
	detectorRegistry *infraRepos.DetectorRegistry,
	progress repositories.ProgressFactory,
	fs afero.Fs,
) *FixCommand {
	return &FixCommand{
		vcsRegistry:      vcsRegistry,
		fixerRegistry:    fixerRegistry,
		detectorRegistry: detectorRegistry,
		progress:         progress,
		fs:               fs,
	}
}

// run carries everything resolved during setup into the commit loop.
type run struct {
	settings *entities.Settings
	opts     FixOptions
	vcs      repositories.VCSRepository
	root     string
	runner   *BatchRunner
	catalog  []entities.FixRule
	files    []string
	base     entities.FixOptions
	strategy Strategy
	report   *entities.FixReport
}

// Execute runs the whole fix cycle. Setup failures (no repository, missing
// fixer, bad settings) are returned before any file is touched; failures
// inside the loop are logged and only returned in strict mode.
func (it *FixCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts FixOptions,
) (*entities.FixReport, error) {
	r, err := it.setup(ctx, settings, opts)
	if err != nil {
		return nil, err
	}
	if len(r.files) == 0 {
		logger.Info("No Python files found, nothing to do.")
		return r.report, nil
	}

	if opts.SingleCommit {
		err = it.runSingleCommit(ctx, r)
	} else {
		err = it.runPerRule(ctx, r)
	}

	logger.Infof(
		"Run complete: %d files, %d commits, %d failed commits, %d file failures",
		r.report.Files, len(r.report.Commits), len(r.report.FailedCommits), r.report.FailedFiles,
	)
	return r.report, err
}

func (it *FixCommand) setup(ctx context.Context, settings *entities.Settings, opts FixOptions) (*run, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if _, statErr := it.fs.Stat(repoDir); statErr != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrRepositoryNotFound, statErr)
	}

	vcs, root, err := it.vcsRegistry.Detect(ctx, settings.VCS, repoDir)
	if err != nil {
		return nil, err
	}
	if vcs == nil {
		tried := settings.VCS
		if tried == entities.VCSAuto {
			tried = strings.Join(it.vcsRegistry.Names(), ", ")
		}
		return nil, fmt.Errorf("%w in %s (tried: %s)", entities.ErrRepositoryNotFound, repoDir, tried)
	}
	logger.Infof("Detected %s repository at %s", vcs.Name(), root)

	if !opts.AllowDirty && !opts.DryRun {
		dirty, dirtyErr := vcs.HasPendingChanges(ctx, root)
		if dirtyErr != nil {
			return nil, fmt.Errorf("failed to read %s status: %w", vcs.Name(), dirtyErr)
		}
		if dirty {
			return nil, errors.New("working tree has uncommitted changes, please commit or stash first (or use --allow-dirty)")
		}
	}

	fixer, err := it.fixerRegistry.Get(entities.FixerAutopep8, settings.Fixer.Command)
	if err != nil {
		return nil, err
	}
	if versionErr := checkFixerVersion(ctx, fixer); versionErr != nil {
		return nil, versionErr
	}

	detector := it.detectorRegistry.Get(settings.Detector)
	if detector == nil {
		return nil, fmt.Errorf(
			"unknown file type detector: %q (available: %s)",
			settings.Detector, strings.Join(it.detectorRegistry.Names(), ", "),
		)
	}
	files, err := NewFileDiscovery(it.fs, detector).Discover(ctx, vcs, root, settings.Strict)
	if err != nil {
		return nil, err
	}

	catalog, err := settings.Catalog()
	if err != nil {
		return nil, err
	}

	base := settings.FixOptions(opts.DryRun)
	return &run{
		settings: settings,
		opts:     opts,
		vcs:      vcs,
		root:     root,
		runner:   NewBatchRunner(fixer),
		catalog:  catalog,
		files:    files,
		base:     base,
		strategy: StrategyFor(base.Jobs),
		report: &entities.FixReport{
			VCS:    vcs.Name(),
			Root:   root,
			Files:  len(files),
			Rules:  len(catalog),
			DryRun: opts.DryRun,
		},
	}, nil
}

// checkFixerVersion fails when the fixer cannot be executed at all and warns
// about releases too old for the catalog.
func checkFixerVersion(ctx context.Context, fixer repositories.FixerRepository) error {
	version, err := fixer.Version(ctx)
	if errors.Is(err, entities.ErrFixerNotFound) {
		return err
	}
	if err != nil {
		logger.Warnf("Could not determine %s version: %v", fixer.Name(), err)
		return nil
	}

	canonical := "v" + version
	if !semver.IsValid(canonical) {
		logger.Debugf("Unrecognized %s version %q", fixer.Name(), version)
		return nil
	}
	if semver.Compare(canonical, minimumFixerVersion) < 0 {
		logger.Warnf(
			"%s %s is older than %s, some rules may be ignored",
			fixer.Name(), version, minimumFixerVersion[1:],
		)
		return nil
	}
	logger.Debugf("Using %s %s", fixer.Name(), version)
	return nil
}

func (it *FixCommand) runPerRule(ctx context.Context, r *run) error {
	catalog := r.catalog
	for number, rule := range catalog {
		opts := r.base.WithSelect(rule.Code)
		progress := it.startProgress(rule.Code, len(r.files))

		result, runErr := r.runner.Run(ctx, rule.Code, r.files, opts, r.strategy, progress)
		if runErr != nil {
			return runErr
		}
		r.report.FailedFiles += len(result.Failed)

		if !result.HasChanges() {
			logger.Debugf("%d/%d %s: no changes", number+1, len(catalog), rule.Code)
			continue
		}

		message := r.settings.CommitMessage(rule)
		logger.Infof("%d/%d %s (%d files)", number+1, len(catalog), message, len(result.Changed))
		if commitErr := it.commit(ctx, r, message, len(result.Changed)); commitErr != nil {
			return commitErr
		}
	}
	return nil
}

func (it *FixCommand) runSingleCommit(ctx context.Context, r *run) error {
	opts := r.base.WithSelect(entities.RuleCodes(r.catalog)...)
	progress := it.startProgress(singleCommitLabel, len(r.files))

	result, err := r.runner.Run(ctx, singleCommitLabel, r.files, opts, r.strategy, progress)
	if err != nil {
		return err
	}
	r.report.FailedFiles += len(result.Failed)

	if !result.HasChanges() {
		logger.Info("No style violations fixed, nothing to commit.")
		return nil
	}

	message := r.settings.Commit.SingleMessage
	logger.Infof("%s (%d files)", message, len(result.Changed))
	return it.commit(ctx, r, message, len(result.Changed))
}

// commit records the pending changes. A failed commit is logged and the run
// goes on, unless the settings ask for strict behaviour.
func (it *FixCommand) commit(ctx context.Context, r *run, message string, changed int) error {
	record := entities.CommitRecord{Message: message, Files: changed}
	if r.opts.DryRun {
		logger.Infof("[DRY RUN] Would commit: %s", message)
		r.report.Commits = append(r.report.Commits, record)
		return nil
	}

	if err := r.vcs.CommitAll(ctx, r.root, message); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if r.settings.Strict {
			return fmt.Errorf("commit %q failed: %w", message, err)
		}
		logger.Errorf("Commit %q failed: %v", message, err)
		r.report.FailedCommits = append(r.report.FailedCommits, message)
		return nil
	}

	r.report.Commits = append(r.report.Commits, record)
	return nil
}

func (it *FixCommand) startProgress(label string, total int) repositories.ProgressReporter {
	if it.progress == nil {
		return nil
	}
	return it.progress.Start(label, total)
}
