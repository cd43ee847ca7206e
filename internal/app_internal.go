package internal

import "github.com/rios0rios0/gitkeeper/internal/domain/entities"

// AppInternal holds every controller mounted on the root command.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
