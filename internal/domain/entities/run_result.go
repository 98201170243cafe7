package entities

// RunResult is the outcome of applying one configuration to every file.
type RunResult struct {
	Label   string   // rule code, or "all" in single-commit mode
	Changed []string // files the fixer modified
	Failed  []string // files the fixer could not process
}

// HasChanges reports whether a commit is needed for this pass.
func (r *RunResult) HasChanges() bool {
	return r != nil && len(r.Changed) > 0
}

// CommitRecord describes one commit issued (or planned, in dry-run mode).
type CommitRecord struct {
	Message string
	Files   int
}

// FixReport summarises a whole run.
type FixReport struct {
	VCS           string
	Root          string
	Files         int
	Rules         int
	Commits       []CommitRecord
	FailedCommits []string
	FailedFiles   int
	DryRun        bool
}
