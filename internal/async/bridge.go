// Package async runs long-running commands off the event loop and hands their
// results back as completions. The bridge imposes no timeout, retry or
// per-job cancellation; a job that never returns never completes.
package async

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"greanium/internal/logger"
)

// Job is a pending computation produced by an async command.
type Job struct {
	// ID identifies the job in logs. Assigned by the bridge when empty.
	ID string
	// Command is the command name that produced the job.
	Command string
	// Run performs the remote call and returns the payload lines.
	Run func(ctx context.Context) ([]string, error)
	// Failure renders an error as the single transcript line for the job.
	// When nil, err.Error() is used.
	Failure func(err error) string
}

// Completion is the outcome of one job.
type Completion struct {
	JobID   string
	Command string
	Payload []string
	Err     error
	failure func(error) string
}

// Lines returns the transcript lines for the completion. On success every
// logical line of the payload is returned, blank lines included. On failure
// exactly one line is returned.
func (c Completion) Lines() []string {
	if c.Err != nil {
		if c.failure != nil {
			return []string{c.failure(c.Err)}
		}
		return []string{c.Err.Error()}
	}
	return SplitLines(c.Payload...)
}

// SplitLines breaks each chunk on newlines, normalising \r\n, and returns
// the resulting lines in order.
func SplitLines(chunks ...string) []string {
	var lines []string
	for _, chunk := range chunks {
		chunk = strings.ReplaceAll(chunk, "\r\n", "\n")
		lines = append(lines, strings.Split(chunk, "\n")...)
	}
	return lines
}

// Bridge starts jobs and delivers their completions on a single channel.
type Bridge struct {
	ctx         context.Context
	completions chan Completion
	outstanding atomic.Int64
	wg          sync.WaitGroup
	log         *log.Logger
}

// NewBridge creates a bridge whose jobs run under ctx. Cancelling ctx is the
// shutdown path: it is passed to every job and unblocks pending deliveries.
func NewBridge(ctx context.Context) *Bridge {
	return &Bridge{
		ctx:         ctx,
		completions: make(chan Completion, 64),
		log:         logger.NewStyledLogger("Bridge"),
	}
}

// Completions returns the channel the event loop reads completions from.
func (b *Bridge) Completions() <-chan Completion {
	return b.completions
}

// Go starts job in its own goroutine and returns the job ID. Exactly one
// completion is posted per job unless the bridge context ends first.
func (b *Bridge) Go(job Job) string {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	b.outstanding.Add(1)
	b.wg.Add(1)
	b.log.Debug("job started", "job", job.ID, "command", job.Command)

	go func() {
		defer b.wg.Done()
		completion := b.run(job)
		select {
		case b.completions <- completion:
		case <-b.ctx.Done():
			b.log.Debug("job abandoned", "job", job.ID, "command", job.Command)
		}
	}()
	return job.ID
}

func (b *Bridge) run(job Job) (c Completion) {
	c = Completion{JobID: job.ID, Command: job.Command, failure: job.Failure}
	defer func() {
		if r := recover(); r != nil {
			c.Payload = nil
			c.Err = fmt.Errorf("job panicked: %v", r)
			b.log.Error("job panicked", "job", job.ID, "command", job.Command, "error", r)
		}
	}()
	if job.Run == nil {
		c.Err = fmt.Errorf("job %s has no run function", job.ID)
		return c
	}
	c.Payload, c.Err = job.Run(b.ctx)
	if c.Err != nil {
		b.log.Debug("job failed", "job", job.ID, "command", job.Command, "error", c.Err)
	}
	return c
}

// Delivered marks one completion as consumed by the event loop.
func (b *Bridge) Delivered() {
	b.outstanding.Add(-1)
}

// Outstanding returns the number of started jobs whose completion has not
// been delivered yet.
func (b *Bridge) Outstanding() int {
	return int(b.outstanding.Load())
}

// Wait blocks until every job goroutine has returned.
func (b *Bridge) Wait() {
	b.wg.Wait()
}
