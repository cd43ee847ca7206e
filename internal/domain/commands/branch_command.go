package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// Branch is the interface for the branch command.
type Branch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BranchOptions) (string, error)
}

// BranchOptions holds runtime options for reading the current branch.
type BranchOptions struct {
	RepoPath string
}

// BranchCommand reports the branch checked out in a working tree.
type BranchCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewBranchCommand creates a new BranchCommand.
func NewBranchCommand(factory repositories.GitRepositoryFactory) *BranchCommand {
	return &BranchCommand{factory: factory}
}

// Execute returns the current branch of opts.RepoPath.
func (it *BranchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BranchOptions,
) (string, error) {
	git, err := it.factory(settings.BasePath, settings.SSHKeyPath)
	if err != nil {
		return "", fmt.Errorf("failed to initialize git: %w", err)
	}

	return git.CurrentBranch(ctx, resolveRepoPath(git.BasePath(), opts.RepoPath))
}
