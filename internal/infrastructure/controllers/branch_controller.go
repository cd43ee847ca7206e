package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// BranchController handles the "branch" subcommand.
type BranchController struct {
	command commands.Branch
}

// NewBranchController creates a new BranchController.
func NewBranchController(command commands.Branch) *BranchController {
	return &BranchController{command: command}
}

// GetBind returns the Cobra command metadata for the branch controller.
func (it *BranchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "branch <path>",
		Short: "Print the branch checked out in a checkout",
		Args:  cobra.ExactArgs(1),
	}
}

// Execute prints the current branch.
func (it *BranchController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	branch, err := it.command.Execute(context.Background(), settings, commands.BranchOptions{
		RepoPath: args[0],
	})
	if err != nil {
		return err
	}

	cmd.Println(branch)
	return nil
}
