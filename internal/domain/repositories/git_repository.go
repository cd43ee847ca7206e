package repositories

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// GitRepository runs git subcommands against checkouts under one base path,
// injecting the SSH key or bearer token each call needs.
type GitRepository interface {
	// BasePath returns the absolute directory repositories are cloned into.
	BasePath() string

	// Run executes git with args in dir, overlaying extraEnv on the ambient environment.
	Run(ctx context.Context, args []string, dir string, extraEnv map[string]string) (*entities.CommandResult, error)

	// Clone clones url into BasePath()/<name> and returns that path. branch and
	// credential are optional.
	Clone(ctx context.Context, url, branch, credential string) (string, error)

	// Pull checks out branch when given, then pulls in repoPath.
	Pull(ctx context.Context, repoPath, branch string) error

	// CurrentBranch returns the abbreviated name of HEAD in repoPath.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// SetRemoteURL points origin of repoPath at url, embedding credential for HTTPS.
	SetRemoteURL(ctx context.Context, repoPath, url, credential string) error
}

// GitRepositoryFactory builds a GitRepository for a base path and an optional SSH key.
type GitRepositoryFactory func(basePath, sshKeyPath string) (GitRepository, error)
