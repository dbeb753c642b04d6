package builtin

import (
	"context"
	"fmt"
	"strings"

	"greanium/internal/async"
	"greanium/internal/commands"
)

// ReloadCommand refetches portfolio, links and files.
type ReloadCommand struct {
	reloader Reloader
}

// Command returns the reload descriptor.
func (c *ReloadCommand) Command() commands.Command {
	return commands.Command{
		Name:        "reload",
		Description: "Reload portfolio data",
		Async:       c.Start,
		Placeholder: "Reloading data...",
	}
}

// Start returns the reload job.
func (c *ReloadCommand) Start(_ commands.Env) async.Job {
	return async.Job{
		Command: "reload",
		Run: func(ctx context.Context) ([]string, error) {
			if c.reloader == nil {
				return nil, fmt.Errorf("no data source configured")
			}
			result, err := c.reloader.Load(ctx)
			if err != nil {
				return nil, err
			}
			lines := []string{fmt.Sprintf("Data reloaded: %d project(s), %d link(s), %d file(s).",
				result.Projects, result.Links, result.Files)}
			if len(result.Failed) > 0 {
				lines = append(lines, "Unavailable: "+strings.Join(result.Failed, ", "))
			}
			return lines, nil
		},
		Failure: func(err error) string {
			return "Reload failed: " + err.Error()
		},
	}
}
