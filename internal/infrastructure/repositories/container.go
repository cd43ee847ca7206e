package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gitkeeper/internal/domain/repositories"
	"github.com/rios0rios0/gitkeeper/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/gitkeeper/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The executor depends on flags (base path, SSH key), so commands receive a factory
	if err := container.Provide(func() domainRepos.GitRepositoryFactory {
		return gitcli.NewGitCLIRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(gogit.NewWorkspaceRepository); err != nil {
		return err
	}

	return nil
}
