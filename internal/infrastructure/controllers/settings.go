package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// loadSettings resolves the settings for one invocation: environment (.env
// included), then the config file, then the global flags.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := entities.LoadDotEnv(); err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	basePath, _ := cmd.Flags().GetString("base-path")
	token, _ := cmd.Flags().GetString("token")
	sshKey, _ := cmd.Flags().GetString("ssh-key")
	settings.Apply(entities.SettingsOverrides{
		BasePath:   basePath,
		Token:      token,
		SSHKeyPath: sshKey,
	})

	logger.Debugf("Starting %s with base path %s", settings.AppName, settings.BasePath)
	return settings, nil
}
