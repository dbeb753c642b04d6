package builtin

import (
	"fmt"
	"strings"

	"greanium/internal/commands"
)

// Tabs is the closed set of views tab accepts.
var Tabs = []string{"dashboard", "portfolio", "projects", "about"}

// Anchors within the dashboard view.
const (
	ContactAnchor = "contact-form"
	GitHubAnchor  = "github-stats"
)

func activate(env commands.Env, view, anchor string) error {
	if env.Navigator == nil {
		return fmt.Errorf("navigation unavailable")
	}
	return env.Navigator.ActivateView(view, anchor)
}

// TabCommand switches the active view.
type TabCommand struct{}

// Command returns the tab descriptor.
func (c *TabCommand) Command() commands.Command {
	return commands.Command{
		Name:        "tab",
		Usage:       "tab <name>",
		Synopsis:    "tab <name>",
		Description: "Switch to tab (" + strings.Join(Tabs, "/") + ")",
		Arity:       commands.ArityRequired,
		Sync:        c.Execute,
	}
}

// Execute activates the view named by the first argument.
func (c *TabCommand) Execute(env commands.Env) ([]string, error) {
	fields := strings.Fields(env.Args)
	if len(fields) == 0 {
		return []string{"Usage: tab <name>"}, nil
	}
	name := strings.ToLower(fields[0])
	for _, tab := range Tabs {
		if tab != name {
			continue
		}
		if err := activate(env, name, ""); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Switched to %s tab.", name)}, nil
	}
	return []string{"Invalid tab. Available: " + strings.Join(Tabs, ", ")}, nil
}

// PortfolioCommand shows the portfolio view.
type PortfolioCommand struct{}

// Command returns the portfolio descriptor.
func (c *PortfolioCommand) Command() commands.Command {
	return commands.Command{
		Name:        "portfolio",
		Description: "Show portfolio overview",
		Sync:        c.Execute,
	}
}

// Execute activates the portfolio view.
func (c *PortfolioCommand) Execute(env commands.Env) ([]string, error) {
	if err := activate(env, "portfolio", ""); err != nil {
		return nil, err
	}
	return []string{"Opening portfolio overview..."}, nil
}

// ContactCommand shows the contact form.
type ContactCommand struct{}

// Command returns the contact descriptor.
func (c *ContactCommand) Command() commands.Command {
	return commands.Command{
		Name:        "contact",
		Description: "Open contact form",
		Sync:        c.Execute,
	}
}

// Execute activates the dashboard scrolled to the contact form.
func (c *ContactCommand) Execute(env commands.Env) ([]string, error) {
	if err := activate(env, "dashboard", ContactAnchor); err != nil {
		return nil, err
	}
	return []string{"Opening contact form..."}, nil
}

// GitHubCommand shows the GitHub stats panel.
type GitHubCommand struct{}

// Command returns the github descriptor.
func (c *GitHubCommand) Command() commands.Command {
	return commands.Command{
		Name:        "github",
		Description: "Show GitHub stats",
		Sync:        c.Execute,
	}
}

// Execute activates the dashboard scrolled to the stats panel.
func (c *GitHubCommand) Execute(env commands.Env) ([]string, error) {
	if err := activate(env, "dashboard", GitHubAnchor); err != nil {
		return nil, err
	}
	return []string{"Opening GitHub stats..."}, nil
}
