package entities

// CommandResult is the captured outcome of one external process invocation.
// It is created per call and never retained by the executor.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r *CommandResult) Success() bool {
	return r.ExitCode == 0
}

// ProcessSpec describes a process to spawn.
type ProcessSpec struct {
	Name string   // Binary, resolved through PATH
	Args []string // Arguments, without the binary
	Dir  string   // Working directory, empty for the current one
	Env  []string // Full environment in KEY=VALUE form
}
