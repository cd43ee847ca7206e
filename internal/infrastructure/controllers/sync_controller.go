package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// SyncController handles the "sync" subcommand (batch mode).
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Clone or pull every repository of the config file",
		Long: `Clone or pull every repository listed in the config file.

Repositories missing from the base path are cloned, the others are
pulled (checking out the configured branch first). A failing entry
does not stop the run. Intended to be used in a cronjob.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the sync.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if len(settings.Repositories) == 0 {
		return errors.New("no repositories configured; add a repositories list to gitkeeper.yaml")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	logger.Infof("Starting %s sync of %d repositories...", settings.AppName, len(settings.Repositories))

	_, err = it.command.Execute(context.Background(), settings, commands.SyncOptions{DryRun: dryRun})
	return err
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show what would be done without making changes")
}
