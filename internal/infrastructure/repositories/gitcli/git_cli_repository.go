package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
	"github.com/rios0rios0/gitkeeper/internal/infrastructure/repositories/process"
)

const (
	gitBinary   = "git"
	basePathDir = 0o755
)

// GitCLIRepository implements repositories.GitRepository by shelling out to
// the git binary. It is immutable after construction and safe for concurrent
// use; serializing operations on one working tree is up to the caller.
type GitCLIRepository struct {
	basePath   string
	sshKeyPath string
	process    repositories.ProcessRepository
	environ    func() []string
}

// NewGitCLIRepository creates the executor for basePath, creating the
// directory when absent. sshKeyPath is optional.
func NewGitCLIRepository(basePath, sshKeyPath string) (repositories.GitRepository, error) {
	return NewGitCLIRepositoryWithProcess(basePath, sshKeyPath, process.NewOSProcessRepository())
}

// NewGitCLIRepositoryWithProcess is NewGitCLIRepository with an explicit process runner.
func NewGitCLIRepositoryWithProcess(
	basePath, sshKeyPath string,
	proc repositories.ProcessRepository,
) (*GitCLIRepository, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid base path %q: %w", basePath, err)
	}
	if mkdirErr := os.MkdirAll(absPath, basePathDir); mkdirErr != nil {
		return nil, fmt.Errorf("failed to create base path %q: %w", absPath, mkdirErr)
	}

	return &GitCLIRepository{
		basePath:   absPath,
		sshKeyPath: sshKeyPath,
		process:    proc,
		environ:    os.Environ,
	}, nil
}

// BasePath returns the absolute directory repositories are cloned into.
func (it *GitCLIRepository) BasePath() string { return it.basePath }

// Run executes git with args. A process that cannot be spawned or that exits
// non-zero yields a *entities.CommandExecutionError carrying stderr verbatim.
func (it *GitCLIRepository) Run(
	ctx context.Context,
	args []string,
	dir string,
	extraEnv map[string]string,
) (*entities.CommandResult, error) {
	execCtx := entities.ExecutionContext{
		Dir:        dir,
		SSHKeyPath: it.sshKeyPath,
		ExtraEnv:   extraEnv,
	}

	logger.WithFields(logger.Fields{
		"dir":     dir,
		"ssh_key": it.sshKeyPath != "",
	}).Debugf("Running git %s", strings.Join(redactArgs(args), " "))

	result, err := it.process.Execute(ctx, execCtx.ProcessSpec(gitBinary, args, it.environ()))
	if err != nil {
		return nil, &entities.CommandExecutionError{
			Args:  args,
			Dir:   dir,
			Cause: err,
		}
	}

	if !result.Success() {
		return nil, &entities.CommandExecutionError{
			Args:     args,
			Dir:      dir,
			Started:  true,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return result, nil
}

// Clone clones url into BasePath()/<name>. The target must not exist; nothing
// is spawned when it does, and a failed clone is left for the caller to clean up.
func (it *GitCLIRepository) Clone(ctx context.Context, url, branch, credential string) (string, error) {
	repoURL, err := entities.NewRepositoryURL(url, credential)
	if err != nil {
		return "", err
	}

	repoPath := filepath.Join(it.basePath, repoURL.Name)
	if _, statErr := os.Lstat(repoPath); statErr == nil {
		return "", entities.NewRepositoryAlreadyExistsError(repoPath)
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return "", fmt.Errorf("failed to inspect %q: %w", repoPath, statErr)
	}

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "-b", branch)
	}
	args = append(args, "--single-branch", repoURL.URL, repoPath)

	logger.Infof("Cloning %s (%s) into %s", repoURL.Redacted(), repoURL.Kind, repoPath)
	if _, runErr := it.Run(ctx, args, "", nil); runErr != nil {
		return "", fmt.Errorf("failed to clone %s: %w", repoURL.Redacted(), runErr)
	}

	logger.Infof("Successfully cloned repository to %s", repoPath)
	return repoPath, nil
}

// Pull checks out branch when given, then runs git pull in repoPath.
func (it *GitCLIRepository) Pull(ctx context.Context, repoPath, branch string) error {
	if branch != "" {
		if _, err := it.Run(ctx, []string{"checkout", branch}, repoPath, nil); err != nil {
			return fmt.Errorf("failed to checkout %q in %s: %w", branch, repoPath, err)
		}
	}

	if _, err := it.Run(ctx, []string{"pull"}, repoPath, nil); err != nil {
		return fmt.Errorf("failed to pull %s: %w", repoPath, err)
	}

	logger.Infof("Successfully pulled latest changes for %s", repoPath)
	return nil
}

// CurrentBranch returns the trimmed output of git rev-parse --abbrev-ref HEAD.
func (it *GitCLIRepository) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	result, err := it.Run(ctx, []string{"rev-parse", "--abbrev-ref", "HEAD"}, repoPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to read current branch of %s: %w", repoPath, err)
	}
	return strings.TrimSpace(result.Stdout), nil
}

// SetRemoteURL normalizes url and points origin at it.
func (it *GitCLIRepository) SetRemoteURL(ctx context.Context, repoPath, url, credential string) error {
	repoURL, err := entities.NewRepositoryURL(url, credential)
	if err != nil {
		return err
	}

	args := []string{"remote", "set-url", "origin", repoURL.URL}
	if _, runErr := it.Run(ctx, args, repoPath, nil); runErr != nil {
		return fmt.Errorf("failed to set origin of %s: %w", repoPath, runErr)
	}

	logger.Infof("Successfully updated remote URL for %s", repoPath)
	return nil
}

func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		redacted[i] = entities.RedactURL(arg)
	}
	return redacted
}
