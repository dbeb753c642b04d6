package builtin

import "greanium/internal/commands"

// ClearCommand empties the transcript.
type ClearCommand struct{}

// Command returns the clear descriptor.
func (c *ClearCommand) Command() commands.Command {
	return commands.Command{
		Name:        "clear",
		Aliases:     []string{"cls"},
		Description: "Clear terminal",
		Sync:        c.Execute,
	}
}

// Execute clears the screen. It produces no lines.
func (c *ClearCommand) Execute(env commands.Env) ([]string, error) {
	if env.Screen != nil {
		env.Screen.Clear()
	}
	return nil, nil
}
