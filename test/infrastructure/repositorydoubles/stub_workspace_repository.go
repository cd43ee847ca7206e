//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository.
type StubWorkspaceRepository struct {
	Repositories []entities.Repository
	DiscoverErr  error
	BasePaths    []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) DiscoverRepositories(
	_ context.Context, basePath string,
) ([]entities.Repository, error) {
	s.BasePaths = append(s.BasePaths, basePath)
	return s.Repositories, s.DiscoverErr
}
