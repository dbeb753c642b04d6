// Package commands defines the command descriptor, the environment handlers
// run with, and the registry the interpreter dispatches through.
package commands

import (
	"strings"

	"greanium/internal/async"
	"greanium/internal/session"
)

// Arity says whether a command takes the rest-of-line argument.
type Arity int

const (
	// ArityNone ignores any trailing text.
	ArityNone Arity = iota
	// ArityOptional passes trailing text when present.
	ArityOptional
	// ArityRequired rejects a missing argument with the usage line.
	ArityRequired
)

// String returns the arity name for logs.
func (a Arity) String() string {
	switch a {
	case ArityOptional:
		return "optional"
	case ArityRequired:
		return "required"
	default:
		return "none"
	}
}

// SyncHandler runs to completion and returns the lines to append. A non-nil
// error is rendered as one additional line after any returned lines.
type SyncHandler func(env Env) ([]string, error)

// AsyncHandler returns a pending job. The interpreter shows the command's
// placeholder and hands the job to the async bridge.
type AsyncHandler func(env Env) async.Job

// Command describes one entry of the command surface. Exactly one of Sync
// and Async is set.
type Command struct {
	Name    string
	Aliases []string
	// Usage is the syntax shown when a required argument is missing.
	Usage string
	// Synopsis is the help label. Defaults to the name and aliases.
	Synopsis    string
	Description string
	Arity       Arity
	Sync        SyncHandler
	Async       AsyncHandler
	// Placeholder is the line shown while an async command is outstanding.
	Placeholder string
}

// IsAsync reports whether the command runs through the async bridge.
func (c *Command) IsAsync() bool {
	return c.Async != nil
}

// UsageLine returns the text shown when a required argument is missing.
func (c *Command) UsageLine() string {
	usage := c.Usage
	if usage == "" {
		usage = c.Name
	}
	return "Usage: " + usage
}

// HelpLabel returns the left column of the help listing.
func (c *Command) HelpLabel() string {
	if c.Synopsis != "" {
		return c.Synopsis
	}
	return strings.Join(append([]string{c.Name}, c.Aliases...), ", ")
}

// Navigator switches views and opens external resources.
type Navigator interface {
	// ActivateView makes view current. anchor names a panel within the view
	// and may be empty.
	ActivateView(view, anchor string) error
	// OpenResource opens url outside the terminal.
	OpenResource(url string) error
}

// Screen is the part of the output sink handlers may drive directly.
type Screen interface {
	Clear()
}

// Env is what a handler runs with. Session is the snapshot current at
// dispatch time and must not be modified.
type Env struct {
	// Name is the command name as typed.
	Name string
	// Args is the rest-of-line argument, tokens joined by single spaces.
	Args      string
	Session   *session.Snapshot
	Registry  *Registry
	Navigator Navigator
	Screen    Screen
	// Quit ends the interactive loop.
	Quit func()
}
