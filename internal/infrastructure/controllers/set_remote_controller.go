package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// SetRemoteController handles the "set-remote" subcommand.
type SetRemoteController struct {
	command commands.SetRemote
}

// NewSetRemoteController creates a new SetRemoteController.
func NewSetRemoteController(command commands.SetRemote) *SetRemoteController {
	return &SetRemoteController{command: command}
}

// GetBind returns the Cobra command metadata for the set-remote controller.
func (it *SetRemoteController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "set-remote <path> <url>",
		Short: "Point origin of a checkout at a new URL",
		Long: `Point origin of a checkout at a new URL. HTTPS URLs get --token
embedded unless they already carry credentials.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // path and url
	}
}

// Execute rewrites origin.
func (it *SetRemoteController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), settings, commands.SetRemoteOptions{
		RepoPath: args[0],
		URL:      args[1],
	})
}
