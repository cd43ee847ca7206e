package repositories

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// ProcessRepository spawns external processes and captures their output.
type ProcessRepository interface {
	// Execute runs spec to completion. A non-nil error means the process could
	// not be started; a non-zero exit is reported through the result.
	Execute(ctx context.Context, spec entities.ProcessSpec) (*entities.CommandResult, error)
}
