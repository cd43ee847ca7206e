package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// Pull is the interface for the pull command.
type Pull interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PullOptions) error
}

// PullOptions holds runtime options for a pull.
type PullOptions struct {
	RepoPath string // Absolute, relative to the working directory, or a name under the base path
	Branch   string // Optional, checked out before pulling
}

// PullCommand updates an existing checkout.
type PullCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewPullCommand creates a new PullCommand.
func NewPullCommand(factory repositories.GitRepositoryFactory) *PullCommand {
	return &PullCommand{factory: factory}
}

// Execute checks out opts.Branch when given and pulls.
func (it *PullCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PullOptions,
) error {
	git, err := it.factory(settings.BasePath, settings.SSHKeyPath)
	if err != nil {
		return fmt.Errorf("failed to initialize git: %w", err)
	}

	return git.Pull(ctx, resolveRepoPath(git.BasePath(), opts.RepoPath), opts.Branch)
}
