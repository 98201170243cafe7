package entities

import "runtime"

// FixMode selects how the fixer reports its work.
type FixMode string

const (
	// ModeInPlace rewrites files on disk.
	ModeInPlace FixMode = "in-place"
	// ModeDiff only reports the changes that would be made.
	ModeDiff FixMode = "diff"
)

const (
	DefaultMaxLineLength = 80
	DefaultIndentSize    = 4
)

// FixOptions is the configuration handed to the fixer for one pass over the
// file list. It is copied into every worker and never mutated during a pass.
type FixOptions struct {
	Select        []string // rule codes active for this pass
	MaxLineLength int
	Aggressive    int
	IndentSize    int
	Jobs          int
	Mode          FixMode
}

// WithSelect returns a copy of the options with the given active rules.
func (o FixOptions) WithSelect(codes ...string) FixOptions {
	o.Select = append([]string(nil), codes...)
	return o
}

// DefaultJobs mirrors the fixer's own default: half of the available CPUs,
// at least one.
func DefaultJobs() int {
	return max(1, runtime.NumCPU()/2) //nolint:mnd // half of the CPUs
}
