package builtin

import (
	"fmt"

	"greanium/internal/commands"
)

// HelpCommand lists every registered command with its description.
type HelpCommand struct{}

// Command returns the help descriptor.
func (c *HelpCommand) Command() commands.Command {
	return commands.Command{
		Name:        "help",
		Aliases:     []string{"?"},
		Description: "Show this help message",
		Sync:        c.Execute,
	}
}

// Execute renders one line per command in registration order.
func (c *HelpCommand) Execute(env commands.Env) ([]string, error) {
	if env.Registry == nil {
		return nil, fmt.Errorf("no commands registered")
	}

	lines := []string{"Available commands:"}
	for _, cmd := range env.Registry.Commands() {
		lines = append(lines, fmt.Sprintf("  %-20s - %s", cmd.HelpLabel(), cmd.Description))
	}
	return lines, nil
}
