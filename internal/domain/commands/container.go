package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewCloneCommand,
		NewPullCommand,
		NewBranchCommand,
		NewSetRemoteCommand,
		NewSyncCommand,
		NewListCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *CloneCommand) Clone { return impl },
		func(impl *PullCommand) Pull { return impl },
		func(impl *BranchCommand) Branch { return impl },
		func(impl *SetRemoteCommand) SetRemote { return impl },
		func(impl *SyncCommand) Sync { return impl },
		func(impl *ListCommand) List { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
