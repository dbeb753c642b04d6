package commands

import (
	"fmt"
	"strings"
)

// Registry maps command names and aliases to commands. It is built once and
// read-only afterwards.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

// NewRegistry builds a registry from cmds in order. It fails on an empty
// name, a name or alias already taken, or a command without exactly one
// handler.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Command)}
	for _, cmd := range cmds {
		if err := r.register(cmd); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(cmd Command) error {
	name := strings.ToLower(strings.TrimSpace(cmd.Name))
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if (cmd.Sync == nil) == (cmd.Async == nil) {
		return fmt.Errorf("command %s must have exactly one of a sync or async handler", name)
	}

	c := cmd
	c.Name = name
	keys := append([]string{name}, cmd.Aliases...)
	seen := make(map[string]bool, len(keys))
	for i, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return fmt.Errorf("command %s has an empty alias", name)
		}
		if _, exists := r.byName[key]; exists || seen[key] {
			return fmt.Errorf("command %s already registered", key)
		}
		seen[key] = true
		keys[i] = key
	}
	for _, key := range keys {
		r.byName[key] = &c
	}
	r.commands = append(r.commands, &c)
	return nil
}

// Lookup finds a command by name or alias, ignoring case.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// Commands returns the commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Names returns every name and alias, for completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for _, cmd := range r.commands {
		names = append(names, cmd.Name)
		for _, alias := range cmd.Aliases {
			names = append(names, strings.ToLower(alias))
		}
	}
	return names
}

// Len returns the number of registered commands, aliases excluded.
func (r *Registry) Len() int {
	return len(r.commands)
}
