package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Predefined error kinds. Every failure returned by the core wraps exactly
// one of them, so callers can branch with errors.Is.
var (
	ErrInvalidURLFormat        = errors.New("invalid Git URL format")
	ErrRepositoryAlreadyExists = errors.New("repository directory already exists")
	ErrCommandExecution        = errors.New("git command failed")
)

// CommandExecutionError is returned when an external git process either could
// not be started or exited with a non-zero status.
type CommandExecutionError struct {
	Args     []string // Arguments passed to the binary (may contain credentials, never printed)
	Dir      string   // Working directory, empty for the current one
	Started  bool     // False when the process could not be spawned
	ExitCode int      // Exit status, meaningful only when Started
	Stderr   string   // Captured standard error, verbatim
	Cause    error    // Underlying spawn error
}

func (e *CommandExecutionError) Error() string {
	if !e.Started {
		return fmt.Sprintf("failed to execute command: %v", e.Cause)
	}
	if strings.TrimSpace(e.Stderr) == "" {
		return fmt.Sprintf("command failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("command failed with error: %s", strings.TrimRight(e.Stderr, "\n"))
}

func (e *CommandExecutionError) Unwrap() error {
	return e.Cause
}

// Is makes every CommandExecutionError match ErrCommandExecution.
func (e *CommandExecutionError) Is(target error) bool {
	return target == ErrCommandExecution
}

// NewInvalidURLFormatError wraps ErrInvalidURLFormat with the offending URL.
func NewInvalidURLFormatError(rawURL, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURLFormat, rawURL)
	}
	return fmt.Errorf("%w: %s (%s)", ErrInvalidURLFormat, rawURL, reason)
}

// NewRepositoryAlreadyExistsError wraps ErrRepositoryAlreadyExists with the target path.
func NewRepositoryAlreadyExistsError(path string) error {
	return fmt.Errorf("%w: %s", ErrRepositoryAlreadyExists, path)
}
