package gogit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

const (
	originRemote  = "origin"
	detachedHEAD  = "HEAD"
	providerLocal = "local"
)

// WorkspaceRepository reads checkouts with go-git, so listing a workspace
// never spawns git nor touches the network.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a new go-git backed WorkspaceRepository.
func NewWorkspaceRepository() repositories.WorkspaceRepository {
	return &WorkspaceRepository{}
}

// DiscoverRepositories lists the git working trees directly under basePath,
// sorted by directory name. Directories that are not repositories are skipped.
func (it *WorkspaceRepository) DiscoverRepositories(
	ctx context.Context,
	basePath string,
) ([]entities.Repository, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base path %q: %w", basePath, err)
	}

	var found []entities.Repository
	for _, entry := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !entry.IsDir() {
			continue
		}

		repoPath := filepath.Join(basePath, entry.Name())
		repo, openErr := git.PlainOpen(repoPath)
		if errors.Is(openErr, git.ErrRepositoryNotExists) {
			logger.Debugf("Skipping %s: not a git repository", repoPath)
			continue
		}
		if openErr != nil {
			return nil, fmt.Errorf("failed to open %s: %w", repoPath, openErr)
		}

		branch, branchErr := headBranch(repo)
		if branchErr != nil {
			return nil, fmt.Errorf("failed to read HEAD of %s: %w", repoPath, branchErr)
		}

		found = append(found, entities.Repository{
			ID:            repoPath,
			Name:          entry.Name(),
			DefaultBranch: branch,
			RemoteURL:     originURL(repo),
			ProviderName:  providerLocal,
		})
	}

	return found, nil
}

// headBranch mirrors git rev-parse --abbrev-ref HEAD: the short branch name,
// or "HEAD" when detached. Unborn branches resolve through the symbolic ref.
func headBranch(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err == nil {
		if head.Name().IsBranch() {
			return head.Name().Short(), nil
		}
		return detachedHEAD, nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", err
	}

	symbolic, refErr := repo.Storer.Reference(plumbing.HEAD)
	if refErr != nil {
		return "", nil //nolint:nilerr // repository without HEAD reference
	}
	return symbolic.Target().Short(), nil
}

// originURL returns the first URL of origin with credentials redacted, or an
// empty string when there is no origin.
func originURL(repo *git.Repository) string {
	remote, err := repo.Remote(originRemote)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return entities.RedactURL(urls[0])
}
