package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// OSProcessRepository spawns processes with os/exec, buffering stdout and
// stderr in memory until the process exits.
type OSProcessRepository struct{}

// NewOSProcessRepository creates a new OSProcessRepository.
func NewOSProcessRepository() repositories.ProcessRepository {
	return &OSProcessRepository{}
}

// Execute runs spec and waits for it. Exit statuses are returned in the
// result; only spawn failures and context cancellation are errors.
func (it *OSProcessRepository) Execute(
	ctx context.Context,
	spec entities.ProcessSpec,
) (*entities.CommandResult, error) {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := &entities.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if runErr == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) && ctx.Err() == nil {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return nil, fmt.Errorf("failed to start %s: %w", spec.Name, runErr)
}
