package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/gitkeeper/internal/domain/commands"
	"github.com/rios0rios0/gitkeeper/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitkeeper/internal/infrastructure/repositories"
)

type layer struct {
	name     string
	register func(*dig.Container) error
}

// RegisterProviders wires every layer into container, dependencies first.
// Settings are not provided: they depend on per-invocation flags.
func RegisterProviders(container *dig.Container) error {
	layers := []layer{
		{name: "repositories", register: repositories.RegisterProviders},
		{name: "commands", register: commands.RegisterProviders},
		{name: "controllers", register: controllers.RegisterProviders},
	}
	for _, l := range layers {
		if err := l.register(container); err != nil {
			return fmt.Errorf("failed to register %s: %w", l.name, err)
		}
	}

	return container.Provide(NewAppInternal)
}

// NewContainer returns a container with every provider registered.
func NewContainer() (*dig.Container, error) {
	container := dig.New()
	if err := RegisterProviders(container); err != nil {
		return nil, err
	}
	return container, nil
}
