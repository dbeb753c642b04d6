package builtin

import (
	"greanium/internal/commands"
	"greanium/internal/version"
)

// VersionCommand prints the system banner and author line.
type VersionCommand struct{}

// Command returns the version descriptor.
func (c *VersionCommand) Command() commands.Command {
	return commands.Command{
		Name:        "version",
		Aliases:     []string{"ver"},
		Description: "Show system version",
		Sync:        c.Execute,
	}
}

// Execute returns the version lines.
func (c *VersionCommand) Execute(_ commands.Env) ([]string, error) {
	return version.Lines(), nil
}
