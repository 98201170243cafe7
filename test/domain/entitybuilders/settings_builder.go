//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autostyle/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	vcs      string
	strict   bool
	detector string
	jobs     int
	prefix   string
	only     []string
	exclude  []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults:
// sequential runs, auto-detected VCS, default commit prefix.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		vcs:         entities.VCSAuto,
		detector:    entities.DetectorFile,
		jobs:        1,
		prefix:      entities.DefaultCommitPrefix,
	}
}

// WithVCS sets the forced VCS type.
func (b *SettingsBuilder) WithVCS(vcs string) *SettingsBuilder {
	b.vcs = vcs
	return b
}

// WithStrict sets the strict flag.
func (b *SettingsBuilder) WithStrict(strict bool) *SettingsBuilder {
	b.strict = strict
	return b
}

// WithDetector sets the file-type detector name.
func (b *SettingsBuilder) WithDetector(detector string) *SettingsBuilder {
	b.detector = detector
	return b
}

// WithJobs sets the number of parallel workers.
func (b *SettingsBuilder) WithJobs(jobs int) *SettingsBuilder {
	b.jobs = jobs
	return b
}

// WithPrefix sets the commit message prefix.
func (b *SettingsBuilder) WithPrefix(prefix string) *SettingsBuilder {
	b.prefix = prefix
	return b
}

// WithOnly restricts the catalog to the given codes.
func (b *SettingsBuilder) WithOnly(codes ...string) *SettingsBuilder {
	b.only = codes
	return b
}

// WithExclude removes the given codes from the catalog.
func (b *SettingsBuilder) WithExclude(codes ...string) *SettingsBuilder {
	b.exclude = codes
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.VCS = b.vcs
	settings.Strict = b.strict
	settings.Detector = b.detector
	settings.Fixer.Jobs = b.jobs
	settings.Commit.Prefix = b.prefix
	settings.Rules.Only = append([]string(nil), b.only...)
	settings.Rules.Exclude = append([]string(nil), b.exclude...)
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.vcs = entities.VCSAuto
	b.strict = false
	b.detector = entities.DetectorFile
	b.jobs = 1
	b.prefix = entities.DefaultCommitPrefix
	b.only = nil
	b.exclude = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		vcs:         b.vcs,
		strict:      b.strict,
		detector:    b.detector,
		jobs:        b.jobs,
		prefix:      b.prefix,
		only:        append([]string(nil), b.only...),
		exclude:     append([]string(nil), b.exclude...),
	}
}
