package builtin

import "greanium/internal/commands"

// ExitCommand leaves the interactive session.
type ExitCommand struct{}

// Command returns the exit descriptor.
func (c *ExitCommand) Command() commands.Command {
	return commands.Command{
		Name:        "exit",
		Aliases:     []string{"quit"},
		Description: "Exit the terminal",
		Sync:        c.Execute,
	}
}

// Execute asks the loop to stop. Outstanding async commands are abandoned.
func (c *ExitCommand) Execute(env commands.Env) ([]string, error) {
	if env.Quit != nil {
		env.Quit()
	}
	return []string{"Goodbye."}, nil
}
