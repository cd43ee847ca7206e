package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// Clone is the interface for the clone command.
type Clone interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CloneOptions) (string, error)
}

// CloneOptions holds runtime options for a clone.
type CloneOptions struct {
	URL    string
	Branch string // Optional, cloned as a single branch
}

// CloneCommand clones one repository under the configured base path and
// reports the branch it ended up on.
type CloneCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewCloneCommand creates a new CloneCommand.
func NewCloneCommand(factory repositories.GitRepositoryFactory) *CloneCommand {
	return &CloneCommand{factory: factory}
}

// Execute clones opts.URL with the settings' credential and returns the checkout path.
func (it *CloneCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CloneOptions,
) (string, error) {
	git, err := it.factory(settings.BasePath, settings.SSHKeyPath)
	if err != nil {
		return "", fmt.Errorf("failed to initialize git: %w", err)
	}

	repoPath, err := git.Clone(ctx, opts.URL, opts.Branch, settings.Token)
	if err != nil {
		return "", err
	}

	branch, err := git.CurrentBranch(ctx, repoPath)
	if err != nil {
		return repoPath, err
	}
	logger.Infof("Current branch: %s", branch)

	return repoPath, nil
}
