package commands

import (
	"os"
	"path/filepath"
)

// resolveRepoPath lets callers name a checkout by its directory under the
// base path. Absolute paths and paths that exist as given are kept.
func resolveRepoPath(basePath, repoPath string) string {
	if repoPath == "" || filepath.IsAbs(repoPath) {
		return repoPath
	}
	if _, err := os.Stat(repoPath); err == nil {
		return repoPath
	}
	candidate := filepath.Join(basePath, repoPath)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return repoPath
}
