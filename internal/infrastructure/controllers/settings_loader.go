package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// fixerEnvVar overrides the fixer executable without touching the config.
const fixerEnvVar = "AUTOSTYLE_AUTOPEP8"

// loadSettings reads the file given by --config, or the first one found in
// the searched directories and the default locations, and falls back to the
// built-in defaults.
func loadSettings(cmd *cobra.Command, searchDirs ...string) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile(searchDirs...)
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return withEnvOverrides(entities.DefaultSettings()), nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return withEnvOverrides(settings), nil
}

func withEnvOverrides(settings *entities.Settings) *entities.Settings {
	if executable := os.Getenv(fixerEnvVar); executable != "" {
		settings.Fixer.Command = executable
	}
	return settings
}
