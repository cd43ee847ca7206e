//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitkeeper/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	appName      string
	basePath     string
	token        string
	sshKeyPath   string
	repositories []entities.RepositoryConfig
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		appName:     "gitkeeper",
		basePath:    "./repos",
	}
}

// WithBasePath sets the base path.
func (b *SettingsBuilder) WithBasePath(path string) *SettingsBuilder {
	b.basePath = path
	return b
}

// WithToken sets the global token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithSSHKeyPath sets the SSH key path.
func (b *SettingsBuilder) WithSSHKeyPath(path string) *SettingsBuilder {
	b.sshKeyPath = path
	return b
}

// WithRepository appends a repository entry.
func (b *SettingsBuilder) WithRepository(url, branch, token string) *SettingsBuilder {
	b.repositories = append(b.repositories, entities.RepositoryConfig{
		URL:    url,
		Branch: branch,
		Token:  token,
	})
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	repos := make([]entities.RepositoryConfig, len(b.repositories))
	copy(repos, b.repositories)
	return &entities.Settings{
		AppName:      b.appName,
		BasePath:     b.basePath,
		Token:        b.token,
		SSHKeyPath:   b.sshKeyPath,
		Repositories: repos,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.appName = "gitkeeper"
	b.basePath = "./repos"
	b.token = ""
	b.sshKeyPath = ""
	b.repositories = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	repos := make([]entities.RepositoryConfig, len(b.repositories))
	copy(repos, b.repositories)
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		appName:      b.appName,
		basePath:     b.basePath,
		token:        b.token,
		sshKeyPath:   b.sshKeyPath,
		repositories: repos,
	}
}
