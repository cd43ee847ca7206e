//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

func TestExecutionContextEnviron(t *testing.T) {
	t.Parallel()

	ambient := []string{"PATH=/usr/bin", "HOME=/root", "GIT_SSH_COMMAND=ssh -v"}

	t.Run("should return the ambient environment when nothing is overlaid", func(t *testing.T) {
		t.Parallel()

		// given
		execCtx := entities.ExecutionContext{}

		// when
		env := execCtx.Environ(ambient)

		// then
		assert.Equal(t, ambient, env)
	})

	t.Run("should replace GIT_SSH_COMMAND when a key is configured", func(t *testing.T) {
		t.Parallel()

		// given
		execCtx := entities.ExecutionContext{SSHKeyPath: "/keys/id_rsa"}

		// when
		env := execCtx.Environ(ambient)

		// then
		assert.Equal(t, []string{
			"PATH=/usr/bin",
			"HOME=/root",
			"GIT_SSH_COMMAND=ssh -i /keys/id_rsa -o StrictHostKeyChecking=no",
		}, env)
	})

	t.Run("should overlay extra variables in key order", func(t *testing.T) {
		t.Parallel()

		// given
		execCtx := entities.ExecutionContext{ExtraEnv: map[string]string{
			"HOME":                "/tmp/home",
			"GIT_TERMINAL_PROMPT": "0",
		}}

		// when
		env := execCtx.Environ(ambient)

		// then
		assert.Equal(t, []string{
			"PATH=/usr/bin",
			"GIT_SSH_COMMAND=ssh -v",
			"GIT_TERMINAL_PROMPT=0",
			"HOME=/tmp/home",
		}, env)
	})

	t.Run("should not modify the ambient slice", func(t *testing.T) {
		t.Parallel()

		// given
		original := append([]string(nil), ambient...)
		execCtx := entities.ExecutionContext{SSHKeyPath: "/k"}

		// when
		_ = execCtx.Environ(ambient)

		// then
		assert.Equal(t, original, ambient)
	})
}

func TestExecutionContextProcessSpec(t *testing.T) {
	t.Parallel()

	t.Run("should run in the context directory with the overlaid environment", func(t *testing.T) {
		t.Parallel()

		// given
		execCtx := entities.ExecutionContext{Dir: "/srv/repos/widgets", SSHKeyPath: "/keys/id"}

		// when
		spec := execCtx.ProcessSpec("git", []string{"pull"}, []string{"PATH=/usr/bin"})

		// then
		assert.Equal(t, entities.ProcessSpec{
			Name: "git",
			Args: []string{"pull"},
			Dir:  "/srv/repos/widgets",
			Env: []string{
				"PATH=/usr/bin",
				"GIT_SSH_COMMAND=ssh -i /keys/id -o StrictHostKeyChecking=no",
			},
		}, spec)
	})
}

func TestSSHCommand(t *testing.T) {
	t.Parallel()

	t.Run("should quote key paths with spaces", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.SSHCommand("/home/me/my keys/id_ed25519")

		// then
		assert.Equal(t, "ssh -i '/home/me/my keys/id_ed25519' -o StrictHostKeyChecking=no", result)
	})

	t.Run("should escape single quotes", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.SSHCommand("/k/it's")

		// then
		assert.Equal(t, `ssh -i '/k/it'\''s' -o StrictHostKeyChecking=no`, result)
	})
}
