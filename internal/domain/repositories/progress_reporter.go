package repositories

// ProgressReporter renders per-file progress for one fix pass. Advance may be
// called from several workers at once.
type ProgressReporter interface {
	Advance(path string, changed bool)
	Done()
}

// ProgressFactory starts a reporter for a pass over total files.
type ProgressFactory interface {
	Start(label string, total int) ProgressReporter
}
