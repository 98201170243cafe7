//go:build unit

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autostyle/internal/infrastructure/logging"
)

//nolint:paralleltest // the logger is process-wide
func TestSetup(t *testing.T) {
	t.Run("should use info level by default", func(t *testing.T) {
		// given
		t.Setenv("DEBUG", "")

		// when
		closer := logging.Setup(logging.Options{})

		// then
		require.NoError(t, closer.Close())
		assert.Equal(t, logger.InfoLevel, logger.GetLevel())
	})

	t.Run("should use debug level when verbose", func(t *testing.T) {
		// given
		t.Setenv("DEBUG", "")

		// when
		closer := logging.Setup(logging.Options{Verbose: true})

		// then
		require.NoError(t, closer.Close())
		assert.Equal(t, logger.DebugLevel, logger.GetLevel())
	})

	t.Run("should use debug level when DEBUG is set", func(t *testing.T) {
		// given
		t.Setenv("DEBUG", "true")

		// when
		closer := logging.Setup(logging.Options{})

		// then
		require.NoError(t, closer.Close())
		assert.Equal(t, logger.DebugLevel, logger.GetLevel())
	})

	t.Run("should also write to the log file", func(t *testing.T) {
		// given
		t.Setenv("DEBUG", "")
		path := filepath.Join(t.TempDir(), "autostyle.log")
		closer := logging.Setup(logging.Options{LogFile: path})

		// when
		logger.Info("Detected git repository at /repo")
		require.NoError(t, closer.Close())

		// then
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Detected git repository at /repo")
	})

	logging.Setup(logging.Options{})
}
