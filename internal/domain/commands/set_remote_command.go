package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// SetRemote is the interface for the set-remote command.
type SetRemote interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SetRemoteOptions) error
}

// SetRemoteOptions holds runtime options for rewriting origin.
type SetRemoteOptions struct {
	RepoPath string
	URL      string
}

// SetRemoteCommand points origin of a checkout at a (possibly authenticated) URL.
type SetRemoteCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewSetRemoteCommand creates a new SetRemoteCommand.
func NewSetRemoteCommand(factory repositories.GitRepositoryFactory) *SetRemoteCommand {
	return &SetRemoteCommand{factory: factory}
}

// Execute rewrites origin with the settings' credential.
func (it *SetRemoteCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SetRemoteOptions,
) error {
	git, err := it.factory(settings.BasePath, settings.SSHKeyPath)
	if err != nil {
		return fmt.Errorf("failed to initialize git: %w", err)
	}

	return git.SetRemoteURL(ctx, resolveRepoPath(git.BasePath(), opts.RepoPath), opts.URL, settings.Token)
}
