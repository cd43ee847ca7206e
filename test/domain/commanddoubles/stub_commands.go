//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// StubCloneCommand is a stub implementation of commands.Clone.
type StubCloneCommand struct {
	ExecuteCallCount int
	RepoPath         string
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.CloneOptions
}

var _ commands.Clone = (*StubCloneCommand)(nil)

func (s *StubCloneCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CloneOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.RepoPath, s.ExecuteErr
}

// StubPullCommand is a stub implementation of commands.Pull.
type StubPullCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PullOptions
}

var _ commands.Pull = (*StubPullCommand)(nil)

func (s *StubPullCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PullOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubBranchCommand is a stub implementation of commands.Branch.
type StubBranchCommand struct {
	ExecuteCallCount int
	Branch           string
	ExecuteErr       error
	LastOpts         commands.BranchOptions
}

var _ commands.Branch = (*StubBranchCommand)(nil)

func (s *StubBranchCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.BranchOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Branch, s.ExecuteErr
}

// StubSetRemoteCommand is a stub implementation of commands.SetRemote.
type StubSetRemoteCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.SetRemoteOptions
}

var _ commands.SetRemote = (*StubSetRemoteCommand)(nil)

func (s *StubSetRemoteCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SetRemoteOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	ExecuteCallCount int
	Report           *commands.SyncReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SyncOptions,
) (*commands.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Repositories     []entities.Repository
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Repository, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Repositories, s.ExecuteErr
}
