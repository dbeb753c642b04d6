// Package testutils provides fakes shared by package tests.
package testutils

import (
	"context"
	"errors"
	"sync"
)

// ViewChange is one recorded ActivateView call.
type ViewChange struct {
	View   string
	Anchor string
}

// RecordingNavigator records navigation requests instead of performing them.
type RecordingNavigator struct {
	mu     sync.Mutex
	views  []ViewChange
	opened []string
	// OpenErr is returned from OpenResource when set.
	OpenErr error
}

// ActivateView records the view change.
func (n *RecordingNavigator) ActivateView(view, anchor string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.views = append(n.views, ViewChange{View: view, Anchor: anchor})
	return nil
}

// OpenResource records url and returns OpenErr.
func (n *RecordingNavigator) OpenResource(url string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.OpenErr != nil {
		return n.OpenErr
	}
	n.opened = append(n.opened, url)
	return nil
}

// Views returns the recorded view changes.
func (n *RecordingNavigator) Views() []ViewChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ViewChange(nil), n.views...)
}

// Opened returns the URLs opened so far.
func (n *RecordingNavigator) Opened() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.opened...)
}

// RecordingScreen counts Clear calls.
type RecordingScreen struct {
	mu     sync.Mutex
	clears int
}

// Clear records a clear.
func (s *RecordingScreen) Clear() {
	s.mu.Lock()
	s.clears++
	s.mu.Unlock()
}

// Clears returns the number of Clear calls.
func (s *RecordingScreen) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// ChatReply is a canned chat answer.
type ChatReply struct {
	Reply string
	Err   error
}

// ScriptedChat answers prompts from a map, falling back to Default.
type ScriptedChat struct {
	mu      sync.Mutex
	Replies map[string]ChatReply
	Default ChatReply
	prompts []string
}

// Ask returns the scripted reply for prompt.
func (c *ScriptedChat) Ask(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, prompt)
	if reply, ok := c.Replies[prompt]; ok {
		return reply.Reply, reply.Err
	}
	return c.Default.Reply, c.Default.Err
}

// Provider returns "scripted".
func (c *ScriptedChat) Provider() string {
	return "scripted"
}

// Prompts returns every prompt received.
func (c *ScriptedChat) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}

// GatedChat blocks every Ask until the test releases that prompt, so tests
// control the order in which replies arrive.
type GatedChat struct {
	mu    sync.Mutex
	gates map[string]chan ChatReply
	asked chan string
}

// NewGatedChat creates a gated chat client.
func NewGatedChat() *GatedChat {
	return &GatedChat{
		gates: make(map[string]chan ChatReply),
		asked: make(chan string, 16),
	}
}

func (c *GatedChat) gate(prompt string) chan ChatReply {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.gates[prompt]
	if !ok {
		ch = make(chan ChatReply, 1)
		c.gates[prompt] = ch
	}
	return ch
}

// Ask waits for Release(prompt) or ctx cancellation.
func (c *GatedChat) Ask(ctx context.Context, prompt string) (string, error) {
	gate := c.gate(prompt)
	select {
	case c.asked <- prompt:
	default:
	}
	select {
	case reply := <-gate:
		return reply.Reply, reply.Err
	case <-ctx.Done():
		return "", errors.Join(errors.New("chat cancelled"), ctx.Err())
	}
}

// Provider returns "gated".
func (c *GatedChat) Provider() string {
	return "gated"
}

// Asked delivers each prompt as Ask starts waiting on it.
func (c *GatedChat) Asked() <-chan string {
	return c.asked
}

// Release lets the Ask for prompt return reply.
func (c *GatedChat) Release(prompt string, reply ChatReply) {
	c.gate(prompt) <- reply
}
