package shell

import (
	"github.com/chzyer/readline"

	"greanium/internal/commands"
	"greanium/internal/commands/builtin"
	"greanium/internal/session"
)

// NewCompleter completes command names, tab views and link names. Link
// names are read from the current snapshot on every request.
func NewCompleter(registry *commands.Registry, store *session.Store) *readline.PrefixCompleter {
	tabs := make([]readline.PrefixCompleterInterface, 0, len(builtin.Tabs))
	for _, tab := range builtin.Tabs {
		tabs = append(tabs, readline.PcItem(tab))
	}

	var items []readline.PrefixCompleterInterface
	for _, name := range registry.Names() {
		switch name {
		case "tab":
			items = append(items, readline.PcItem(name, tabs...))
		case "open":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(func(string) []string {
				return LinkSlugs(store)
			})))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// LinkSlugs returns the slug of every loaded link.
func LinkSlugs(store *session.Store) []string {
	if store == nil {
		return nil
	}
	links := store.Load().Links.Links()
	slugs := make([]string, 0, len(links))
	for _, link := range links {
		slugs = append(slugs, session.Slug(link.Name))
	}
	return slugs
}
