package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Repository, error)
}

// ListCommand reports the checkouts present under the base path.
type ListCommand struct {
	workspace repositories.WorkspaceRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(workspace repositories.WorkspaceRepository) *ListCommand {
	return &ListCommand{workspace: workspace}
}

// Execute discovers the working trees under settings.BasePath.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Repository, error) {
	repos, err := it.workspace.DiscoverRepositories(ctx, settings.BasePath)
	if err != nil {
		return nil, err
	}

	logger.Infof("Found %d repositories in %s", len(repos), settings.BasePath)
	for _, repo := range repos {
		logger.Infof("  %s [%s] %s", repo.Name, repo.DefaultBranch, repo.RemoteURL)
	}
	return repos, nil
}
