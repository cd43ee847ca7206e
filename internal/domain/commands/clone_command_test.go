//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
	"github.com/rios0rios0/gitkeeper/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/gitkeeper/test/infrastructure/repositorydoubles"
)

func TestCloneCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should clone with the settings token and report the branch", func(t *testing.T) {
		t.Parallel()

		// given
		var factoryCalls [][2]string
		stub := &doubles.StubGitRepository{ClonePath: "/repos/repo", Branch: "main"}
		cmd := commands.NewCloneCommand(stub.Factory(&factoryCalls))
		settings := entitybuilders.NewSettingsBuilder().
			WithBasePath("/repos").
			WithToken("tok").
			WithSSHKeyPath("/keys/id").
			BuildSettings()

		// when
		path, err := cmd.Execute(context.Background(), settings, commands.CloneOptions{
			URL:    "https://github.com/user/repo.git",
			Branch: "main",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/repos/repo", path)
		assert.Equal(t, [][2]string{{"/repos", "/keys/id"}}, factoryCalls)
		assert.Equal(t, []doubles.CloneCall{
			{URL: "https://github.com/user/repo.git", Branch: "main", Credential: "tok"},
		}, stub.CloneCalls)
		assert.Equal(t, []string{"/repos/repo"}, stub.BranchRepoPaths)
	})

	t.Run("should return the clone error untouched", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{CloneErr: entities.NewRepositoryAlreadyExistsError("/repos/repo")}
		cmd := commands.NewCloneCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings, commands.CloneOptions{URL: "git@h:o/repo.git"})

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryAlreadyExists)
		assert.Empty(t, stub.BranchRepoPaths)
	})

	t.Run("should fail when the executor cannot be built", func(t *testing.T) {
		t.Parallel()

		// given
		factory := func(_, _ string) (repositories.GitRepository, error) {
			return nil, errors.New("permission denied")
		}
		cmd := commands.NewCloneCommand(factory)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings, commands.CloneOptions{URL: "x"})

		// then
		require.ErrorContains(t, err, "failed to initialize git")
	})
}

func TestPullCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a name under the base path", func(t *testing.T) {
		t.Parallel()

		// given
		basePath := t.TempDir()
		mkdir(t, basePath, "repo")
		stub := &doubles.StubGitRepository{Base: basePath}
		cmd := commands.NewPullCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().WithBasePath(basePath).BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.PullOptions{RepoPath: "repo", Branch: "dev"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []doubles.PullCall{{RepoPath: filepath.Join(basePath, "repo"), Branch: "dev"}}, stub.PullCalls)
	})

	t.Run("should keep an absolute path", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{Base: "/repos"}
		cmd := commands.NewPullCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.PullOptions{RepoPath: "/elsewhere/repo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/repo", stub.PullCalls[0].RepoPath)
	})

	t.Run("should propagate pull errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{PullErr: &entities.CommandExecutionError{Started: true, ExitCode: 1}}
		cmd := commands.NewPullCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.PullOptions{RepoPath: "/r"})

		// then
		require.ErrorIs(t, err, entities.ErrCommandExecution)
	})
}

func TestBranchCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the current branch", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{Branch: "main"}
		cmd := commands.NewBranchCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		branch, err := cmd.Execute(context.Background(), settings, commands.BranchOptions{RepoPath: "/r"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
		assert.Equal(t, []string{"/r"}, stub.BranchRepoPaths)
	})
}

func TestSetRemoteCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the settings token along", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubGitRepository{}
		cmd := commands.NewSetRemoteCommand(stub.Factory(nil))
		settings := entitybuilders.NewSettingsBuilder().WithToken("tok").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.SetRemoteOptions{
			RepoPath: "/r",
			URL:      "https://github.com/user/repo.git",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []doubles.SetRemoteCall{
			{RepoPath: "/r", URL: "https://github.com/user/repo.git", Credential: "tok"},
		}, stub.SetRemoteCalls)
	})
}
