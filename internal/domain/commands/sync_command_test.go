//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/gitkeeper/test/infrastructure/repositorydoubles"
)

func TestSyncCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should clone missing repositories and pull existing ones", func(t *testing.T) {
		t.Parallel()

		// given
		basePath := t.TempDir()
		mkdir(t, basePath, "existing")
		stub := &doubles.StubGitRepository{Base: basePath, Branch: "main"}
		cmd := commands.NewSyncCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().
			WithBasePath(basePath).
			WithToken("global").
			WithRepository("https://github.com/user/existing.git", "main", "").
			WithRepository("https://github.com/user/fresh.git", "", "per-repo").
			BuildSettings()

		// when
		report, err := cmd.Execute(context.Background(), settings, commands.SyncOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, report.Pulled)
		assert.Equal(t, 1, report.Cloned)
		assert.Equal(t, []doubles.PullCall{
			{RepoPath: filepath.Join(basePath, "existing"), Branch: "main"},
		}, stub.PullCalls)
		assert.Equal(t, []doubles.CloneCall{
			{URL: "https://github.com/user/fresh.git", Credential: "per-repo"},
		}, stub.CloneCalls)
		assert.Len(t, stub.BranchRepoPaths, 2)
	})

	t.Run("should continue after a failing entry and join the errors", func(t *testing.T) {
		t.Parallel()

		// given
		basePath := t.TempDir()
		stub := &doubles.StubGitRepository{Base: basePath, Branch: "main"}
		cmd := commands.NewSyncCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().
			WithBasePath(basePath).
			WithRepository("not-a-url", "", "").
			WithRepository("git@github.com:user/good.git", "", "").
			BuildSettings()

		// when
		report, err := cmd.Execute(context.Background(), settings, commands.SyncOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidURLFormat)
		assert.Contains(t, err.Error(), "1 of 2 repositories failed to sync")
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, 1, report.Cloned)
		require.Len(t, stub.CloneCalls, 1)
		assert.Equal(t, "git@github.com:user/good.git", stub.CloneCalls[0].URL)
	})

	t.Run("should not touch anything in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		basePath := t.TempDir()
		mkdir(t, basePath, "existing")
		stub := &doubles.StubGitRepository{Base: basePath}
		cmd := commands.NewSyncCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().
			WithBasePath(basePath).
			WithRepository("https://github.com/user/existing.git", "", "").
			WithRepository("https://github.com/user/fresh.git", "", "").
			BuildSettings()

		// when
		report, err := cmd.Execute(context.Background(), settings, commands.SyncOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.Zero(t, report.Cloned+report.Pulled+report.Failed)
		assert.Empty(t, stub.CloneCalls)
		assert.Empty(t, stub.PullCalls)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{Base: t.TempDir()}
		cmd := commands.NewSyncCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().
			WithRepository("https://github.com/user/repo.git", "", "").
			BuildSettings()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := cmd.Execute(ctx, settings, commands.SyncOptions{})

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, stub.CloneCalls)
	})
}

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the discovered repositories", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubWorkspaceRepository{
			Repositories: []entities.Repository{{Name: "repo", DefaultBranch: "main"}},
		}
		cmd := commands.NewListCommand(stub)
		settings := entitybuilders.NewSettingsBuilder().WithBasePath("/repos").BuildSettings()

		// when
		repos, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Len(t, repos, 1)
		assert.Equal(t, []string{"/repos"}, stub.BasePaths)
	})
}

func mkdir(t *testing.T, parent, name string) {
	t.Helper()
	require.NoError(t, os.Mkdir(filepath.Join(parent, name), 0o755))
}
