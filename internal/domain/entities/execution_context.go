package entities

import (
	"sort"
	"strings"
)

// SSHCommandEnv is the variable git reads to override the ssh invocation.
const SSHCommandEnv = "GIT_SSH_COMMAND"

// ExecutionContext is the authentication context for one git invocation.
type ExecutionContext struct {
	Dir        string
	SSHKeyPath string
	ExtraEnv   map[string]string
}

// Environ overlays ExtraEnv onto ambient and, when an SSH key is configured,
// adds GIT_SSH_COMMAND naming that key with strict host-key checking off.
// Without extra variables or key the ambient environment is returned as is.
func (c ExecutionContext) Environ(ambient []string) []string {
	if len(c.ExtraEnv) == 0 && c.SSHKeyPath == "" {
		return ambient
	}

	overlay := make(map[string]string, len(c.ExtraEnv)+1)
	for key, value := range c.ExtraEnv {
		overlay[key] = value
	}
	if c.SSHKeyPath != "" {
		overlay[SSHCommandEnv] = SSHCommand(c.SSHKeyPath)
	}

	env := make([]string, 0, len(ambient)+len(overlay))
	for _, entry := range ambient {
		key, _, _ := strings.Cut(entry, "=")
		if _, replaced := overlay[key]; replaced {
			continue
		}
		env = append(env, entry)
	}

	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = append(env, key+"="+overlay[key])
	}
	return env
}

// ProcessSpec describes name invoked with args in the context's directory and
// environment.
func (c ExecutionContext) ProcessSpec(name string, args []string, ambient []string) ProcessSpec {
	return ProcessSpec{
		Name: name,
		Args: args,
		Dir:  c.Dir,
		Env:  c.Environ(ambient),
	}
}

// SSHCommand builds the GIT_SSH_COMMAND value for a private key.
func SSHCommand(keyPath string) string {
	return "ssh -i " + shellQuote(keyPath) + " -o StrictHostKeyChecking=no"
}

// shellQuote single-quotes s when it holds characters the shell would split on;
// git runs GIT_SSH_COMMAND through sh.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>*?()[]{}!#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
