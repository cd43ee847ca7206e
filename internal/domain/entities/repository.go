package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/domain/entities"
)

// Repository is re-exported from gitforge. Checkouts discovered under the
// base path are reported with ID set to the local path, DefaultBranch to the
// checked-out branch and RemoteURL to the redacted origin URL.
type Repository = gitforgeEntities.Repository
