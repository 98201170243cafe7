package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// Strategy decides how a batch spreads its files over workers.
type Strategy struct {
	Workers int // 1 (or less) runs the files sequentially
}

// Sequential processes files one after the other, in input order.
func Sequential() Strategy {
	return Strategy{Workers: 1}
}

// Parallel processes up to workers files at a time.
func Parallel(workers int) Strategy {
	return Strategy{Workers: workers}
}

// StrategyFor picks the strategy matching a jobs setting.
func StrategyFor(jobs int) Strategy {
	if jobs <= 1 {
		return Sequential()
	}
	return Parallel(jobs)
}

// IsParallel reports whether more than one worker is used.
func (s Strategy) IsParallel() bool {
	return s.Workers > 1
}

type fileOutcome int

const (
	outcomeUnchanged fileOutcome = iota
	outcomeChanged
	outcomeFailed
)

// BatchRunner applies one fixer configuration to a list of files.
type BatchRunner struct {
	fixer repositories.FixerRepository
}

// NewBatchRunner creates a BatchRunner on top of the given fixer.
func NewBatchRunner(fixer repositories.FixerRepository) *BatchRunner {
	return &BatchRunner{fixer: fixer}
}

// Run applies opts to every file and collects the files that changed.
// A file the fixer cannot process is logged and reported as failed; it never
// stops the batch. Cancelling ctx stops the batch and returns ctx.Err().
func (it *BatchRunner) Run(
	ctx context.Context,
	label string,
	files []string,
	opts entities.FixOptions,
	strategy Strategy,
	progress repositories.ProgressReporter,
) (*entities.RunResult, error) {
	result := &entities.RunResult{Label: label}
	if len(opts.Select) == 0 || len(files) == 0 {
		return result, nil
	}
	if progress != nil {
		defer progress.Done()
	}

	outcomes := make([]fileOutcome, len(files))
	var err error
	if strategy.IsParallel() {
		err = it.runParallel(ctx, label, files, opts, strategy.Workers, outcomes, progress)
	} else {
		err = it.runSequential(ctx, label, files, opts, outcomes, progress)
	}
	if err != nil {
		return nil, err
	}

	for i, outcome := range outcomes {
		switch outcome {
		case outcomeChanged:
			result.Changed = append(result.Changed, files[i])
		case outcomeFailed:
			result.Failed = append(result.Failed, files[i])
		case outcomeUnchanged:
		}
	}
	return result, nil
}

func (it *BatchRunner) runSequential(
	ctx context.Context,
	label string,
	files []string,
	opts entities.FixOptions,
	outcomes []fileOutcome,
	progress repositories.ProgressReporter,
) error {
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		outcomes[i] = it.applyOne(ctx, label, path, opts, progress)
	}
	return ctx.Err()
}

// runParallel writes each outcome into its own slot, so the workers share
// nothing but the read-only inputs.
func (it *BatchRunner) runParallel(
	ctx context.Context,
	label string,
	files []string,
	opts entities.FixOptions,
	workers int,
	outcomes []fileOutcome,
	progress repositories.ProgressReporter,
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = it.applyOne(groupCtx, label, path, opts, progress)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (it *BatchRunner) applyOne(
	ctx context.Context,
	label, path string,
	opts entities.FixOptions,
	progress repositories.ProgressReporter,
) fileOutcome {
	changed, err := it.fixer.Apply(ctx, path, opts)

	outcome := outcomeUnchanged
	switch {
	case err != nil && ctx.Err() == nil:
		logger.Errorf("[%s] Failed to fix %s: %v", label, path, err)
		outcome = outcomeFailed
	case err != nil:
		// cancelled: neither changed nor a failure worth reporting
	case changed:
		logger.Debugf("[%s] %s", label, path)
		outcome = outcomeChanged
	}

	if progress != nil {
		progress.Advance(path, outcome == outcomeChanged)
	}
	return outcome
}
