package builtin

import (
	"fmt"
	"strings"

	"greanium/internal/commands"
)

// Fallbacks for missing bio fields.
const (
	defaultName     = "Cormac Greaney"
	defaultTagline  = "Developer & Creator"
	defaultLocation = "Not specified"
	defaultAbout    = "No description available."
	defaultCategory = "Other"
)

// ProjectsCommand lists the loaded projects.
type ProjectsCommand struct{}

// Command returns the projects descriptor.
func (c *ProjectsCommand) Command() commands.Command {
	return commands.Command{
		Name:        "projects",
		Description: "List all projects",
		Sync:        c.Execute,
	}
}

// Execute numbers each project with its description and URL.
func (c *ProjectsCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasProjects() {
		return []string{"No projects available."}, nil
	}

	projects := env.Session.Projects
	lines := []string{fmt.Sprintf("Found %d project(s):", len(projects))}
	for i, p := range projects {
		description := p.Description
		if description == "" {
			description = "No description"
		}
		lines = append(lines, fmt.Sprintf("  %d. %s - %s", i+1, p.Name, description))
		if p.URL != "" {
			lines = append(lines, "     URL: "+p.URL)
		}
	}
	return lines, nil
}

// SkillsCommand lists skills grouped by category.
type SkillsCommand struct{}

// Command returns the skills descriptor.
func (c *SkillsCommand) Command() commands.Command {
	return commands.Command{
		Name:        "skills",
		Description: "Show skills overview",
		Sync:        c.Execute,
	}
}

// Execute prints each category in first-seen order followed by its
// skills.
func (c *SkillsCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasSkills() {
		return []string{"Skills data not available."}, nil
	}

	var order []string
	byCategory := make(map[string][]string)
	for _, skill := range env.Session.Bio.Skills {
		category := skill.Category
		if category == "" {
			category = defaultCategory
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], skill.Name)
	}

	lines := make([]string, 0, 2*len(order))
	for _, category := range order {
		lines = append(lines, category+":", "  "+strings.Join(byCategory[category], ", "))
	}
	return lines, nil
}

// AboutCommand prints the bio summary.
type AboutCommand struct{}

// Command returns the about descriptor.
func (c *AboutCommand) Command() commands.Command {
	return commands.Command{
		Name:        "about",
		Description: "Show about information",
		Sync:        c.Execute,
	}
}

// Execute prints name, tagline, location and about, each with its
// fallback.
func (c *AboutCommand) Execute(env commands.Env) ([]string, error) {
	if !env.Session.HasBio() {
		return []string{"About information not available."}, nil
	}
	bio := env.Session.Bio
	return []string{
		"Name: " + orDefault(bio.Name, defaultName),
		"Tagline: " + orDefault(bio.Tagline, defaultTagline),
		"Location: " + orDefault(bio.Location, defaultLocation),
		"About: " + orDefault(bio.About, defaultAbout),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
