package gitcli

// SetEnviron replaces the ambient environment source for testing.
func SetEnviron(repo *GitCLIRepository, environ func() []string) {
	repo.environ = environ
}
