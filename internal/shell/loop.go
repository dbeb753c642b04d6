package shell

import (
	"context"
)

// Run is the event loop. It submits lines from input and delivers async
// completions until input is closed, Quit is called or ctx ends. All
// transcript writes happen on the goroutine running Run.
func (i *Interpreter) Run(ctx context.Context, input <-chan string) error {
	completions := i.bridge.Completions()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-i.done:
			i.log.Debug("Interpreter stopped", "outstanding", i.bridge.Outstanding())
			return nil

		case raw, ok := <-input:
			if !ok {
				i.log.Debug("Input closed", "outstanding", i.bridge.Outstanding())
				return nil
			}
			i.Submit(raw)
			select {
			case <-i.done:
				return nil
			default:
			}

		case c := <-completions:
			i.Deliver(c)
		}
	}
}

// Drain delivers completions that are already waiting without blocking.
func (i *Interpreter) Drain() int {
	delivered := 0
	for {
		select {
		case c := <-i.bridge.Completions():
			i.Deliver(c)
			delivered++
		default:
			return delivered
		}
	}
}
