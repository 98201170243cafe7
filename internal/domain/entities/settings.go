package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	VCSAuto      = "auto"
	VCSGit       = "git"
	VCSMercurial = "hg"

	DetectorFile    = "file"
	DetectorShebang = "shebang"

	DefaultCommitPrefix  = "[autopep8]"
	DefaultSingleMessage = "[autopep8] Fix all PEP8 style violations"
	DefaultFixerCommand  = "autopep8"

	FixerAutopep8 = "autopep8"
)

// Settings is the top-level configuration for autostyle.
type Settings struct {
	VCS      string         `yaml:"vcs"`      // "auto", "git", "hg"
	Strict   bool           `yaml:"strict"`   // external-command and commit failures abort the run
	Detector string         `yaml:"detector"` // "file", "shebang"
	Fixer    FixerConfig    `yaml:"fixer"`
	Commit   CommitConfig   `yaml:"commit"`
	Rules    RulesSelection `yaml:"rules"`
}

// FixerConfig holds the options forwarded to the style fixer.
type FixerConfig struct {
	Command       string `yaml:"command"`
	MaxLineLength int    `yaml:"max_line_length"`
	Aggressive    int    `yaml:"aggressive"`
	IndentSize    int    `yaml:"indent_size"`
	Jobs          int    `yaml:"jobs"` // 0 = auto
}

// CommitConfig controls the commits issued after each pass.
type CommitConfig struct {
	Prefix        string `yaml:"prefix"`
	SingleMessage string `yaml:"single_message"`
}

// RulesSelection narrows the default catalog.
type RulesSelection struct {
	Only    []string `yaml:"only"`
	Exclude []string `yaml:"exclude"`
}

// DefaultSettings returns the settings used when no file is found.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a settings file, filling unset values with
// defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in dirs (typically the
// repository being fixed), then in the standard locations, and returns the
// first one found.
func FindConfigFile(dirs ...string) (string, error) {
	locations := make([]string, 0, len(dirs)+6) //nolint:mnd // standard locations
	for _, dir := range dirs {
		if dir != "" && dir != "." {
			locations = append(locations, dir)
		}
	}
	locations = append(locations,
		".",
		".config",
		"configs",
	)
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}
	locations = append(locations, filepath.Join(xdg.ConfigHome, "autostyle"))

	patterns := []string{
		".autostyle.yaml",
		".autostyle.yml",
		"autostyle.yaml",
		"autostyle.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Catalog returns the default catalog narrowed by the rules selection.
func (s *Settings) Catalog() ([]FixRule, error) {
	return FilterCatalog(DefaultCatalog(), s.Rules.Only, s.Rules.Exclude)
}

// FixOptions builds the base fixer configuration for a run.
func (s *Settings) FixOptions(dryRun bool) FixOptions {
	mode := ModeInPlace
	if dryRun {
		mode = ModeDiff
	}

	jobs := s.Fixer.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs()
	}

	return FixOptions{
		MaxLineLength: s.Fixer.MaxLineLength,
		Aggressive:    s.Fixer.Aggressive,
		IndentSize:    s.Fixer.IndentSize,
		Jobs:          jobs,
		Mode:          mode,
	}
}

// CommitMessage returns the per-rule commit message, e.g.
// "[autopep8] E225 - Fix missing whitespace around operator".
func (s *Settings) CommitMessage(rule FixRule) string {
	return strings.TrimSpace(s.Commit.Prefix + " " + rule.String())
}

// Validate checks the settings for values the run cannot work with.
func (s *Settings) Validate() error {
	switch s.VCS {
	case VCSAuto, VCSGit, VCSMercurial:
	default:
		return fmt.Errorf("vcs must be one of %q, %q or %q, got %q", VCSAuto, VCSGit, VCSMercurial, s.VCS)
	}

	switch s.Detector {
	case DetectorFile, DetectorShebang:
	default:
		return fmt.Errorf("detector must be %q or %q, got %q", DetectorFile, DetectorShebang, s.Detector)
	}

	if s.Fixer.MaxLineLength <= 0 {
		return fmt.Errorf("fixer.max_line_length must be positive, got %d", s.Fixer.MaxLineLength)
	}
	if s.Fixer.Aggressive < 0 {
		return fmt.Errorf("fixer.aggressive must not be negative, got %d", s.Fixer.Aggressive)
	}
	if s.Fixer.Jobs < 0 {
		return fmt.Errorf("fixer.jobs must not be negative, got %d", s.Fixer.Jobs)
	}

	if _, err := s.Catalog(); err != nil {
		return err
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.VCS == "" {
		s.VCS = VCSAuto
	}
	if s.Detector == "" {
		s.Detector = DetectorFile
	}
	if s.Fixer.Command == "" {
		s.Fixer.Command = DefaultFixerCommand
	}
	if s.Fixer.MaxLineLength == 0 {
		s.Fixer.MaxLineLength = DefaultMaxLineLength
	}
	if s.Fixer.IndentSize == 0 {
		s.Fixer.IndentSize = DefaultIndentSize
	}
	if s.Commit.Prefix == "" {
		s.Commit.Prefix = DefaultCommitPrefix
	}
	if s.Commit.SingleMessage == "" {
		s.Commit.SingleMessage = DefaultSingleMessage
	}
}
