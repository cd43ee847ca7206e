package repositories

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// WorkspaceRepository inspects the checkouts that live under a base path
// without spawning git.
type WorkspaceRepository interface {
	// DiscoverRepositories lists the git working trees directly under basePath.
	DiscoverRepositories(ctx context.Context, basePath string) ([]entities.Repository, error)
}
