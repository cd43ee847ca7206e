//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	"github.com/rios0rios0/gitkeeper/internal/domain/repositories"
)

// SpyProcessRepository records every process spec it is asked to run and
// answers from a queue of canned results.
type SpyProcessRepository struct {
	// Results are returned in order; once exhausted, a successful empty result is returned.
	Results []*entities.CommandResult
	// ExecuteErr, when set, is returned for every call (spawn failure).
	ExecuteErr error

	Specs []entities.ProcessSpec
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

func (s *SpyProcessRepository) Execute(
	_ context.Context, spec entities.ProcessSpec,
) (*entities.CommandResult, error) {
	s.Specs = append(s.Specs, spec)
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if len(s.Results) == 0 {
		return &entities.CommandResult{}, nil
	}
	result := s.Results[0]
	s.Results = s.Results[1:]
	return result, nil
}

// CallCount returns the number of processes spawned.
func (s *SpyProcessRepository) CallCount() int { return len(s.Specs) }

// LastSpec returns the most recent spec, or the zero value when none ran.
func (s *SpyProcessRepository) LastSpec() entities.ProcessSpec {
	if len(s.Specs) == 0 {
		return entities.ProcessSpec{}
	}
	return s.Specs[len(s.Specs)-1]
}
