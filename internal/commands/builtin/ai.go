package builtin

import (
	"context"
	"errors"

	"greanium/internal/async"
	"greanium/internal/commands"
	"greanium/internal/services"
)

// AICommand asks the AI assistant a question.
type AICommand struct {
	chat     services.ChatClient
	markdown Renderer
}

// Command returns the ai descriptor.
func (c *AICommand) Command() commands.Command {
	return commands.Command{
		Name:        "ai",
		Usage:       "ai <your question>",
		Synopsis:    "ai <question>",
		Description: "Chat with Greanium AI",
		Arity:       commands.ArityRequired,
		Async:       c.Start,
		Placeholder: "Thinking...",
	}
}

// Start returns the job that asks the question in env.Args.
func (c *AICommand) Start(env commands.Env) async.Job {
	prompt := env.Args
	return async.Job{
		Command: "ai",
		Run: func(ctx context.Context) ([]string, error) {
			if c.chat == nil {
				return nil, errors.New("AI assistant not configured")
			}
			reply, err := c.chat.Ask(ctx, prompt)
			if err != nil {
				return nil, err
			}
			if c.markdown != nil {
				reply = c.markdown.RenderOrRaw(reply)
			}
			return []string{reply}, nil
		},
		Failure: AIFailure,
	}
}

// AIFailure renders a failed ask. An error the assistant reported itself
// is an AI error; anything else means it could not be reached.
func AIFailure(err error) string {
	var remote *services.RemoteError
	if errors.As(err, &remote) {
		return "AI error: " + remote.Detail
	}
	return "AI connection error: " + err.Error()
}
