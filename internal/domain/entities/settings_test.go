//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autostyle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should fill every default and validate", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		err := settings.Validate()

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VCSAuto, settings.VCS)
		assert.Equal(t, entities.DetectorFile, settings.Detector)
		assert.Equal(t, "autopep8", settings.Fixer.Command)
		assert.Equal(t, 80, settings.Fixer.MaxLineLength)
		assert.Equal(t, 4, settings.Fixer.IndentSize)
		assert.Equal(t, "[autopep8]", settings.Commit.Prefix)
		assert.Equal(t, "[autopep8] Fix all PEP8 style violations", settings.Commit.SingleMessage)
		assert.False(t, settings.Strict)
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should parse a complete file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, `
vcs: hg
strict: true
detector: shebang
fixer:
  command: /opt/bin/autopep8
  max_line_length: 100
  aggressive: 2
  jobs: 3
commit:
  prefix: "style:"
  single_message: "style: pep8"
rules:
  only: [E225, W291]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.VCSMercurial, settings.VCS)
		assert.True(t, settings.Strict)
		assert.Equal(t, entities.DetectorShebang, settings.Detector)
		assert.Equal(t, "/opt/bin/autopep8", settings.Fixer.Command)
		assert.Equal(t, 100, settings.Fixer.MaxLineLength)
		assert.Equal(t, 2, settings.Fixer.Aggressive)
		assert.Equal(t, 4, settings.Fixer.IndentSize)
		assert.Equal(t, 3, settings.Fixer.Jobs)
		assert.Equal(t, "style: pep8", settings.Commit.SingleMessage)

		catalog, catalogErr := settings.Catalog()
		require.NoError(t, catalogErr)
		assert.Equal(t, []string{"E225", "W291"}, entities.RuleCodes(catalog))
	})

	t.Run("should apply defaults to an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultSettings(), settings)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "fixer: [unclosed")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail on an unknown rule", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "rules:\n  exclude: [X999]\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownRule)
		assert.Nil(t, settings)
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*entities.Settings)
		message string
	}{
		{"unknown vcs", func(s *entities.Settings) { s.VCS = "svn" }, "vcs must be one of"},
		{"unknown detector", func(s *entities.Settings) { s.Detector = "magic" }, "detector must be"},
		{"zero line length", func(s *entities.Settings) { s.Fixer.MaxLineLength = 0 }, "max_line_length"},
		{"negative aggressive", func(s *entities.Settings) { s.Fixer.Aggressive = -1 }, "aggressive"},
		{"negative jobs", func(s *entities.Settings) { s.Fixer.Jobs = -2 }, "jobs"},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := entities.DefaultSettings()
			tt.mutate(settings)

			// when
			err := settings.Validate()

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSettingsCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the rule", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		rule := entities.FixRule{Code: "W291", Description: "Remove trailing whitespace"}

		// when
		message := settings.CommitMessage(rule)

		// then
		assert.Equal(t, "[autopep8] W291 - Remove trailing whitespace", message)
	})

	t.Run("should omit an empty prefix", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Commit.Prefix = ""
		rule := entities.FixRule{Code: "W291", Description: "Remove trailing whitespace"}

		// when
		message := settings.CommitMessage(rule)

		// then
		assert.Equal(t, "W291 - Remove trailing whitespace", message)
	})
}

func TestSettingsFixOptions(t *testing.T) {
	t.Parallel()

	t.Run("should use in-place mode and auto jobs by default", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		opts := settings.FixOptions(false)

		// then
		assert.Equal(t, entities.ModeInPlace, opts.Mode)
		assert.Equal(t, entities.DefaultJobs(), opts.Jobs)
		assert.GreaterOrEqual(t, opts.Jobs, 1)
		assert.Equal(t, 80, opts.MaxLineLength)
		assert.Empty(t, opts.Select)
	})

	t.Run("should use diff mode for dry runs", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Fixer.Jobs = 6

		// when
		opts := settings.FixOptions(true)

		// then
		assert.Equal(t, entities.ModeDiff, opts.Mode)
		assert.Equal(t, 6, opts.Jobs)
	})

	t.Run("should copy the selection instead of sharing it", func(t *testing.T) {
		t.Parallel()

		// given
		codes := []string{"E225"}
		base := entities.DefaultSettings().FixOptions(false)

		// when
		opts := base.WithSelect(codes...)
		codes[0] = "W291"

		// then
		assert.Equal(t, []string{"E225"}, opts.Select)
		assert.Empty(t, base.Select)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("should prefer a file in the searched directory", func(t *testing.T) {
		t.Parallel()

		// given
		repoDir := t.TempDir()
		expected := filepath.Join(repoDir, ".autostyle.yaml")
		require.NoError(t, os.WriteFile(expected, []byte("strict: true\n"), 0o600))

		// when
		found, err := entities.FindConfigFile(repoDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("should match the searched directory before the standard names", func(t *testing.T) {
		t.Parallel()

		// given
		repoDir := t.TempDir()
		expected := filepath.Join(repoDir, "autostyle.yml")
		require.NoError(t, os.WriteFile(expected, []byte(""), 0o600))

		// when
		found, err := entities.FindConfigFile("", repoDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})
}
