// Package builtin provides the Greanium command surface: navigation,
// portfolio listings, the AI assistant and session housekeeping.
package builtin

import (
	"context"

	"greanium/internal/commands"
	"greanium/internal/services"
)

// Renderer turns an AI reply into terminal text.
type Renderer interface {
	RenderOrRaw(markdown string) string
}

// Reloader rebuilds the session snapshot.
type Reloader interface {
	Load(ctx context.Context) (services.LoadResult, error)
}

// Deps are the collaborators commands need beyond their Env.
type Deps struct {
	// Chat answers ai questions. A nil client makes ai report a connection
	// error.
	Chat services.ChatClient
	// Markdown renders ai replies when set.
	Markdown Renderer
	// Reloader backs the reload command.
	Reloader Reloader
	// ResumeURL is the download location used by resume.
	ResumeURL string
}

// All returns every builtin command in help order.
func All(deps Deps) []commands.Command {
	return []commands.Command{
		(&HelpCommand{}).Command(),
		(&ClearCommand{}).Command(),
		(&OpenCommand{}).Command(),
		(&ProjectsCommand{}).Command(),
		(&SkillsCommand{}).Command(),
		(&AboutCommand{}).Command(),
		(&PortfolioCommand{}).Command(),
		(&VersionCommand{}).Command(),
		(&AICommand{chat: deps.Chat, markdown: deps.Markdown}).Command(),
		(&TabCommand{}).Command(),
		(&ResumeCommand{url: deps.ResumeURL}).Command(),
		(&ContactCommand{}).Command(),
		(&GitHubCommand{}).Command(),
		(&LinksCommand{}).Command(),
		(&FilesCommand{}).Command(),
		(&ReloadCommand{reloader: deps.Reloader}).Command(),
		(&ExitCommand{}).Command(),
	}
}

// NewRegistry builds the registry of builtin commands.
func NewRegistry(deps Deps) (*commands.Registry, error) {
	return commands.NewRegistry(All(deps)...)
}
