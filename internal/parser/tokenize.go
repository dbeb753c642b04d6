// Package parser turns a submitted terminal line into a command name and its
// arguments.
package parser

import "strings"

// Line is a tokenized input line.
type Line struct {
	// Raw is the input with surrounding whitespace removed.
	Raw string
	// Name is the first token as typed.
	Name string
	// Key is Name lowercased, used for registry lookup.
	Key string
	// Args holds the remaining tokens.
	Args []string
	// Rest is Args joined with single spaces.
	Rest string
}

// HasArgs reports whether any argument followed the command name.
func (l Line) HasArgs() bool {
	return len(l.Args) > 0
}

// Tokenize splits raw on runs of whitespace. The second result is false when
// the line is empty or whitespace only. There is no quoting or escaping.
func Tokenize(raw string) (Line, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Line{}, false
	}

	args := fields[1:]
	return Line{
		Raw:  strings.TrimSpace(raw),
		Name: fields[0],
		Key:  strings.ToLower(fields[0]),
		Args: args,
		Rest: strings.Join(args, " "),
	}, true
}
