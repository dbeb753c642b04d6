package builtin

import (
	"fmt"

	"greanium/internal/commands"
)

// OpenCommand opens a named link.
type OpenCommand struct{}

// Command returns the open descriptor.
func (c *OpenCommand) Command() commands.Command {
	return commands.Command{
		Name:        "open",
		Usage:       "open <name>",
		Synopsis:    "open <name>",
		Description: "Open a link by name",
		Arity:       commands.ArityRequired,
		Sync:        c.Execute,
	}
}

// Execute resolves the argument through the link index. The name is
// reported as typed.
func (c *OpenCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasLinks() {
		return []string{"Links not available."}, nil
	}
	link, ok := env.Session.Links.Resolve(env.Args)
	if !ok {
		return []string{"No link matched: " + env.Args}, nil
	}
	if env.Navigator == nil {
		return nil, fmt.Errorf("navigation unavailable")
	}
	if err := env.Navigator.OpenResource(link.URL); err != nil {
		return nil, err
	}
	return []string{"Opened link: " + env.Args}, nil
}

// ResumeCommand downloads the resume file.
type ResumeCommand struct {
	url string
}

// Command returns the resume descriptor.
func (c *ResumeCommand) Command() commands.Command {
	return commands.Command{
		Name:        "resume",
		Aliases:     []string{"cv"},
		Description: "Download resume",
		Sync:        c.Execute,
	}
}

// Execute opens the resume download URL.
func (c *ResumeCommand) Execute(env commands.Env) ([]string, error) {
	if c.url == "" {
		return nil, fmt.Errorf("resume location not configured")
	}
	if env.Navigator == nil {
		return nil, fmt.Errorf("navigation unavailable")
	}
	if err := env.Navigator.OpenResource(c.url); err != nil {
		return nil, err
	}
	return []string{"Downloading resume.pdf..."}, nil
}

// LinksCommand lists the loaded links.
type LinksCommand struct{}

// Command returns the links descriptor.
func (c *LinksCommand) Command() commands.Command {
	return commands.Command{
		Name:        "links",
		Description: "List available links",
		Sync:        c.Execute,
	}
}

// Execute prints each link with its URL.
func (c *LinksCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasLinks() {
		return []string{"No links available."}, nil
	}
	links := env.Session.Links.Links()
	lines := []string{fmt.Sprintf("Found %d link(s):", len(links))}
	for _, link := range links {
		lines = append(lines, fmt.Sprintf("  %s - %s", link.Name, link.URL))
	}
	return lines, nil
}

// FilesCommand lists the downloadable files.
type FilesCommand struct{}

// Command returns the files descriptor.
func (c *FilesCommand) Command() commands.Command {
	return commands.Command{
		Name:        "files",
		Description: "List downloadable files",
		Sync:        c.Execute,
	}
}

// Execute prints each file with its download URL.
func (c *FilesCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasFiles() {
		return []string{"No files available."}, nil
	}
	lines := []string{fmt.Sprintf("Found %d file(s):", len(env.Session.Files))}
	for _, file := range env.Session.Files {
		lines = append(lines, fmt.Sprintf("  %s - %s", file.Name, file.URL))
	}
	return lines, nil
}
