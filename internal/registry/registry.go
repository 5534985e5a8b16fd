package registry

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrEmptyRegistry = errors.New("no tools registered")
	ErrDuplicateName = errors.New("duplicate tool name")
	ErrEmptyName     = errors.New("tool name is empty")
	ErrEmptyArgv     = errors.New("tool command is empty")
)

// ToolSpec describes how to launch a single tool.
type ToolSpec struct {
	// Name identifies the tool, and prefixes every line of its output
	Name string `conf:"name" json:"name"`

	// Argv is the command to run, followed by its arguments
	Argv []string `conf:"argv" json:"argv"`

	// Cwd is the working directory of the tool. Defaults
	// to the working directory of the launcher.
	Cwd string `conf:"cwd" json:"cwd,omitempty"`

	// Env holds environment variables set on top of the
	// environment inherited from the launcher
	Env map[string]string `conf:"env" json:"env,omitempty"`
}

// Command returns the executable of the tool.
func (t ToolSpec) Command() string {
	if len(t.Argv) == 0 {
		return ""
	}
	return t.Argv[0]
}

// Args returns the arguments passed to the executable.
func (t ToolSpec) Args() []string {
	if len(t.Argv) < 2 {
		return nil
	}
	return t.Argv[1:]
}

// Registry is the ordered list of tools to launch. The order
// determines start order, stop order and color assignment.
type Registry []ToolSpec

// Validate reports configuration errors. An empty registry, a
// tool without a name or command, and duplicate names are invalid.
func (r Registry) Validate() error {
	if len(r) == 0 {
		return ErrEmptyRegistry
	}

	seen := make(map[string]int, len(r))

	for i, tool := range r {
		if tool.Name == "" {
			return fmt.Errorf("tool #%d: %w", i, ErrEmptyName)
		}

		if tool.Command() == "" {
			return fmt.Errorf("tool %q: %w", tool.Name, ErrEmptyArgv)
		}

		if j, ok := seen[tool.Name]; ok {
			return fmt.Errorf("tool %q at #%d and #%d: %w", tool.Name, j, i, ErrDuplicateName)
		}

		seen[tool.Name] = i
	}

	return nil
}

// Names returns the tool names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, tool := range r {
		names[i] = tool.Name
	}
	return names
}

// WithEnv returns a copy of the registry in which every tool
// inherits the given variables. A tool's own variables win.
func (r Registry) WithEnv(env map[string]string) Registry {
	if len(env) == 0 {
		return r
	}

	tools := make(Registry, len(r))

	for i, tool := range r {
		merged := make(map[string]string, len(env)+len(tool.Env))
		maps.Copy(merged, env)
		maps.Copy(merged, tool.Env)

		tool.Env = merged
		tools[i] = tool
	}

	return tools
}
