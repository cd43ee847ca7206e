package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewCloneController,
		NewPullController,
		NewBranchController,
		NewSetRemoteController,
		NewSyncController,
		NewListController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	cloneController *CloneController,
	pullController *PullController,
	branchController *BranchController,
	setRemoteController *SetRemoteController,
	syncController *SyncController,
	listController *ListController,
) *[]entities.Controller {
	return &[]entities.Controller{
		cloneController,
		pullController,
		branchController,
		setRemoteController,
		syncController,
		listController,
	}
}
