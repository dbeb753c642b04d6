package services

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"greanium/internal/logger"
)

// DefaultView is the view active at startup.
const DefaultView = "dashboard"

// Launcher starts an external program without waiting for it.
type Launcher func(name string, args ...string) error

// TerminalNavigator tracks the active dashboard view for the prompt and
// hands URLs to the platform opener.
type TerminalNavigator struct {
	mu       sync.Mutex
	view     string
	anchor   string
	opener   []string
	launch   Launcher
	onChange func(view, anchor string)
}

// NewTerminalNavigator creates a navigator. opener is a command line such
// as "firefox --new-tab"; empty selects the platform default.
func NewTerminalNavigator(opener string) *TerminalNavigator {
	cmd := strings.Fields(opener)
	if len(cmd) == 0 {
		cmd = defaultOpener(runtime.GOOS)
	}
	return &TerminalNavigator{
		view:   DefaultView,
		opener: cmd,
		launch: startDetached,
	}
}

// WithLauncher replaces the process launcher.
func (n *TerminalNavigator) WithLauncher(launch Launcher) *TerminalNavigator {
	n.launch = launch
	return n
}

// OnChange registers a hook called after every view change.
func (n *TerminalNavigator) OnChange(fn func(view, anchor string)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// ActivateView makes view current, optionally scrolled to anchor.
func (n *TerminalNavigator) ActivateView(view, anchor string) error {
	view = strings.ToLower(strings.TrimSpace(view))
	if view == "" {
		return fmt.Errorf("view name cannot be empty")
	}

	n.mu.Lock()
	n.view = view
	n.anchor = anchor
	hook := n.onChange
	n.mu.Unlock()

	logger.Debug("View activated", "view", view, "anchor", anchor)
	if hook != nil {
		hook(view, anchor)
	}
	return nil
}

// View returns the active view and anchor.
func (n *TerminalNavigator) View() (string, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view, n.anchor
}

// OpenResource opens url with the configured opener.
func (n *TerminalNavigator) OpenResource(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}
	if len(n.opener) == 0 {
		return fmt.Errorf("no opener available on %s", runtime.GOOS)
	}

	args := append(append([]string{}, n.opener[1:]...), url)
	if err := n.launch(n.opener[0], args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	logger.Debug("Resource opened", "url", url, "opener", n.opener[0])
	return nil
}

func defaultOpener(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
