package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// PullController handles the "pull" subcommand.
type PullController struct {
	command commands.Pull
}

// NewPullController creates a new PullController.
func NewPullController(command commands.Pull) *PullController {
	return &PullController{command: command}
}

// GetBind returns the Cobra command metadata for the pull controller.
func (it *PullController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pull <path>",
		Short: "Pull the latest changes of a checkout",
		Long: `Pull the latest changes of a checkout. <path> may also be the name of
a directory under the base path. With --branch the branch is checked
out first.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute runs the pull.
func (it *PullController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	branch, _ := cmd.Flags().GetString("branch")
	return it.command.Execute(context.Background(), settings, commands.PullOptions{
		RepoPath: args[0],
		Branch:   branch,
	})
}

// AddFlags adds the pull-specific flags to the given Cobra command.
func (it *PullController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("branch", "b", "", "Check out this branch before pulling")
}
