package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// CloneController handles the "clone" subcommand.
type CloneController struct {
	command commands.Clone
}

// NewCloneController creates a new CloneController.
func NewCloneController(command commands.Clone) *CloneController {
	return &CloneController{command: command}
}

// GetBind returns the Cobra command metadata for the clone controller.
func (it *CloneController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clone <url>",
		Short: "Clone a repository into the base path",
		Long: `Clone a repository into <base-path>/<name>, where <name> is the last
path segment of the URL without its ".git" suffix.

SSH URLs (git@host:owner/repo.git) authenticate with --ssh-key.
HTTPS URLs get --token embedded as oauth2:<token>@host unless they
already carry credentials. The target directory must not exist.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute runs the clone.
func (it *CloneController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	branch, _ := cmd.Flags().GetString("branch")
	repoPath, err := it.command.Execute(context.Background(), settings, commands.CloneOptions{
		URL:    args[0],
		Branch: branch,
	})
	if err != nil {
		return err
	}

	cmd.Println(repoPath)
	return nil
}

// AddFlags adds the clone-specific flags to the given Cobra command.
func (it *CloneController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("branch", "b", "", "Clone only this branch")
}
