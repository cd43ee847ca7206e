//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// CloneCall records the arguments of one Clone invocation.
type CloneCall struct {
	URL        string
	Branch     string
	Credential string
}

// PullCall records the arguments of one Pull invocation.
type PullCall struct {
	RepoPath string
	Branch   string
}

// SetRemoteCall records the arguments of one SetRemoteURL invocation.
type SetRemoteCall struct {
	RepoPath   string
	URL        string
	Credential string
}

// StubGitRepository implements repositories.GitRepository with canned answers.
type StubGitRepository struct {
	Base string

	// --- Run ---
	RunResult *entities.CommandResult
	RunErr    error
	RunArgs   [][]string

	// --- Clone ---
	ClonePath  string
	CloneErr   error
	CloneCalls []CloneCall

	// --- Pull ---
	PullErr   error
	PullCalls []PullCall

	// --- CurrentBranch ---
	Branch          string
	BranchErr       error
	BranchRepoPaths []string

	// --- SetRemoteURL ---
	SetRemoteErr   error
	SetRemoteCalls []SetRemoteCall
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

// Factory returns a GitRepositoryFactory that always yields the stub and
// records the arguments it was built with.
func (s *StubGitRepository) Factory(calls *[][2]string) repositories.GitRepositoryFactory {
	return func(basePath, sshKeyPath string) (repositories.GitRepository, error) {
		if calls != nil {
			*calls = append(*calls, [2]string{basePath, sshKeyPath})
		}
		return s, nil
	}
}

func (s *StubGitRepository) BasePath() string { return s.Base }

func (s *StubGitRepository) Run(
	_ context.Context, args []string, _ string, _ map[string]string,
) (*entities.CommandResult, error) {
	s.RunArgs = append(s.RunArgs, args)
	if s.RunErr != nil {
		return nil, s.RunErr
	}
	if s.RunResult == nil {
		return &entities.CommandResult{}, nil
	}
	return s.RunResult, nil
}

func (s *StubGitRepository) Clone(_ context.Context, url, branch, credential string) (string, error) {
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url, Branch: branch, Credential: credential})
	return s.ClonePath, s.CloneErr
}

func (s *StubGitRepository) Pull(_ context.Context, repoPath, branch string) error {
	s.PullCalls = append(s.PullCalls, PullCall{RepoPath: repoPath, Branch: branch})
	return s.PullErr
}

func (s *StubGitRepository) CurrentBranch(_ context.Context, repoPath string) (string, error) {
	s.BranchRepoPaths = append(s.BranchRepoPaths, repoPath)
	return s.Branch, s.BranchErr
}

func (s *StubGitRepository) SetRemoteURL(_ context.Context, repoPath, url, credential string) error {
	s.SetRemoteCalls = append(s.SetRemoteCalls, SetRemoteCall{
		RepoPath:   repoPath,
		URL:        url,
		Credential: credential,
	})
	return s.SetRemoteErr
}
