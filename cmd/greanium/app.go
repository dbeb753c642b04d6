package main

import (
	"context"
	"errors"
	"fmt"

	"greanium/internal/async"
	"greanium/internal/commands/builtin"
	"greanium/internal/config"
	"greanium/internal/history"
	"greanium/internal/logger"
	"greanium/internal/output"
	"greanium/internal/services"
	"greanium/internal/session"
	"greanium/internal/shell"
	"greanium/internal/theme"
)

// app holds the wired interactive session.
type app struct {
	interp   *shell.Interpreter
	terminal *shell.Terminal
	watcher  *services.Watcher
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	client := services.NewHTTPClient(cfg.HTTPTimeout)
	store := session.NewStore()

	var source services.DataSource
	switch cfg.Source {
	case config.SourceFile:
		source = services.NewFileDataSource(cfg.DataDir, "")
	default:
		source = services.NewHTTPDataSource(cfg.BaseURL, client)
	}
	loader := services.NewLoader(source, store)
	if _, err := loader.Load(ctx); err != nil {
		logger.Warn("Session data unavailable", "error", err)
	}

	chat, err := services.NewChatClient(cfg, client)
	if err != nil {
		return nil, err
	}

	deps := builtin.Deps{
		Chat:      chat,
		Reloader:  loader,
		ResumeURL: cfg.ResumeURL(),
	}
	if cfg.RenderMarkdown {
		deps.Markdown = services.NewMarkdownRenderer("", 80)
	}
	registry, err := builtin.NewRegistry(deps)
	if err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	th := theme.Load(cfg.Theme)
	hist := history.New()
	terminal, err := shell.NewTerminal(shell.TerminalOptions{
		History:   hist,
		Completer: shell.NewCompleter(registry, store),
		View:      services.DefaultView,
		Prompt: func(view string) string {
			return th.Prompt(shell.DefaultPrompt(view))
		},
	})
	if err != nil {
		return nil, err
	}
	if cfg.LogFile == "" {
		logger.SetOutput(terminal.ErrWriter())
	}

	navigator := services.NewTerminalNavigator(cfg.Opener)
	navigator.OnChange(func(view, _ string) {
		terminal.SetView(view)
	})

	printer := output.NewPrinter(output.WithStyles(th), output.WithWriter(terminal.Writer()))
	interp := shell.NewInterpreter(shell.Options{
		Registry:  registry,
		History:   hist,
		Sink:      output.NewTranscript(printer),
		Store:     store,
		Bridge:    async.NewBridge(ctx),
		Navigator: navigator,
	})

	a := &app{interp: interp, terminal: terminal}

	if cfg.Source == config.SourceFile && cfg.Watch {
		w, err := services.NewWatcher(cfg.DataDir, services.DefaultDebounce, func(ctx context.Context) error {
			_, err := loader.Load(ctx)
			return err
		})
		if err != nil {
			logger.Warn("Data directory not watched", "source", cfg.DataDir, "error", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// Run starts the watcher, prints the welcome line and runs the event loop
// until exit, end of input or ctx cancellation.
func (a *app) Run(ctx context.Context) error {
	if a.watcher != nil {
		go a.watcher.Run(ctx)
	}
	a.interp.Welcome()

	err := a.interp.Run(ctx, a.terminal.ReadLines())
	if n := a.interp.Bridge().Outstanding(); n > 0 {
		logger.Debug("Abandoning outstanding commands", "count", n)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the terminal and the watcher.
func (a *app) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if err := a.terminal.Close(); err != nil {
		logger.Debug("Terminal close failed", "error", err)
	}
}
