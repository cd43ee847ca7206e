package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// Sync is the interface for the sync command (batch mode).
type Sync interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SyncOptions) (*SyncReport, error)
}

// SyncOptions holds runtime options for a single sync run.
type SyncOptions struct {
	DryRun bool
}

// SyncReport summarizes a sync run.
type SyncReport struct {
	Cloned int
	Pulled int
	Failed int
	Errors []error
}

// SyncCommand brings every configured repository up to date: missing ones
// are cloned, existing ones are pulled.
type SyncCommand struct {
	factory repositories.GitRepositoryFactory
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(factory repositories.GitRepositoryFactory) *SyncCommand {
	return &SyncCommand{factory: factory}
}

// Execute syncs settings.Repositories in order. A failing entry does not stop
// the run; the returned error joins every entry failure.
func (it *SyncCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts SyncOptions,
) (*SyncReport, error) {
	git, err := it.factory(settings.BasePath, settings.SSHKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize git: %w", err)
	}

	report := &SyncReport{}
	for _, repo := range settings.Repositories {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		if syncErr := it.syncRepository(ctx, git, settings, repo, opts, report); syncErr != nil {
			logger.Errorf("Failed to sync %s: %v", entities.RedactURL(repo.URL), syncErr)
			report.Failed++
			report.Errors = append(report.Errors, syncErr)
		}
	}

	logger.Infof(
		"Sync complete: %d cloned, %d pulled, %d failed",
		report.Cloned, report.Pulled, report.Failed,
	)

	if report.Failed > 0 {
		return report, fmt.Errorf(
			"%d of %d repositories failed to sync: %w",
			report.Failed, len(settings.Repositories), errors.Join(report.Errors...),
		)
	}
	return report, nil
}

func (it *SyncCommand) syncRepository(
	ctx context.Context,
	git repositories.GitRepository,
	settings *entities.Settings,
	repo entities.RepositoryConfig,
	opts SyncOptions,
	report *SyncReport,
) error {
	repoURL, err := entities.NewRepositoryURL(repo.URL, settings.TokenFor(repo))
	if err != nil {
		return err
	}

	repoPath := filepath.Join(git.BasePath(), repoURL.Name)
	_, statErr := os.Stat(repoPath)
	exists := statErr == nil

	if opts.DryRun {
		if exists {
			logger.Infof("[DRY RUN] Would pull %s in %s", repoURL.Redacted(), repoPath)
		} else {
			logger.Infof("[DRY RUN] Would clone %s into %s", repoURL.Redacted(), repoPath)
		}
		return nil
	}

	if exists {
		if pullErr := git.Pull(ctx, repoPath, repo.Branch); pullErr != nil {
			return pullErr
		}
		report.Pulled++
	} else {
		if _, cloneErr := git.Clone(ctx, repo.URL, repo.Branch, settings.TokenFor(repo)); cloneErr != nil {
			return cloneErr
		}
		report.Cloned++
	}

	branch, err := git.CurrentBranch(ctx, repoPath)
	if err != nil {
		return err
	}
	logger.Infof("[%s] Current branch: %s", repoURL.Name, branch)
	return nil
}
