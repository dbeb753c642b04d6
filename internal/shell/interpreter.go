// Package shell runs the Greanium command interpreter: it tokenizes
// submitted lines, dispatches them through the command registry, feeds
// async jobs to the bridge and writes everything to the transcript.
package shell

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"greanium/internal/async"
	"greanium/internal/commands"
	"greanium/internal/history"
	"greanium/internal/logger"
	"greanium/internal/output"
	"greanium/internal/parser"
	"greanium/internal/session"
)

// WelcomeLine is appended when the interactive session starts.
const WelcomeLine = "Greanium OS v1.2 ready. Type 'help' for available commands."

// Options wires an Interpreter to its collaborators.
type Options struct {
	Registry  *commands.Registry
	History   *history.Buffer
	Sink      output.Sink
	Store     *session.Store
	Bridge    *async.Bridge
	Navigator commands.Navigator
}

// Interpreter dispatches submitted lines. Submit and Deliver must be called
// from a single goroutine; Run provides that loop.
type Interpreter struct {
	registry  *commands.Registry
	history   *history.Buffer
	sink      output.Sink
	store     *session.Store
	bridge    *async.Bridge
	navigator commands.Navigator
	log       *log.Logger

	done     chan struct{}
	quitOnce sync.Once
}

// NewInterpreter creates an interpreter. Missing history, store and bridge
// are created with defaults.
func NewInterpreter(opts Options) *Interpreter {
	if opts.History == nil {
		opts.History = history.New()
	}
	if opts.Store == nil {
		opts.Store = session.NewStore()
	}
	if opts.Bridge == nil {
		opts.Bridge = async.NewBridge(context.Background())
	}
	if opts.Sink == nil {
		opts.Sink = output.NewTranscript(nil)
	}
	return &Interpreter{
		registry:  opts.Registry,
		history:   opts.History,
		sink:      opts.Sink,
		store:     opts.Store,
		bridge:    opts.Bridge,
		navigator: opts.Navigator,
		log:       logger.NewStyledLogger("Shell"),
		done:      make(chan struct{}),
	}
}

// History returns the history buffer the interpreter records into.
func (i *Interpreter) History() *history.Buffer {
	return i.history
}

// Bridge returns the async bridge jobs are started on.
func (i *Interpreter) Bridge() *async.Bridge {
	return i.bridge
}

// Welcome appends the startup line.
func (i *Interpreter) Welcome() {
	output.Emit(i.sink, output.SemanticInfo, WelcomeLine)
}

// Quit ends Run. It is safe to call more than once.
func (i *Interpreter) Quit() {
	i.quitOnce.Do(func() { close(i.done) })
}

// Done is closed once Quit has been called.
func (i *Interpreter) Done() <-chan struct{} {
	return i.done
}

// Submit handles one raw input line. It reports false when the line was
// blank and nothing happened.
func (i *Interpreter) Submit(raw string) bool {
	line, ok := parser.Tokenize(raw)
	if !ok {
		return false
	}

	output.Emit(i.sink, output.SemanticCommand, output.EchoPrefix+line.Raw)
	i.history.Record(line.Raw)

	cmd, found := i.lookup(line.Key)
	if !found {
		i.log.Debug("Unknown command", "command", line.Key)
		output.Emit(i.sink, output.SemanticWarning,
			fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", line.Key))
		return true
	}

	if cmd.Arity == commands.ArityRequired && !line.HasArgs() {
		output.Emit(i.sink, output.SemanticWarning, cmd.UsageLine())
		return true
	}

	env := i.env(line, cmd)
	logger.CommandDispatch(cmd.Name, env.Args, cmd.IsAsync())

	if cmd.IsAsync() {
		i.start(cmd, env)
		return true
	}
	i.runSync(cmd, env)
	return true
}

func (i *Interpreter) lookup(key string) (*commands.Command, bool) {
	if i.registry == nil {
		return nil, false
	}
	return i.registry.Lookup(key)
}

func (i *Interpreter) env(line parser.Line, cmd *commands.Command) commands.Env {
	env := commands.Env{
		Name:      line.Name,
		Session:   i.store.Load(),
		Registry:  i.registry,
		Navigator: i.navigator,
		Screen:    i.sink,
		Quit:      i.Quit,
	}
	if cmd.Arity != commands.ArityNone {
		env.Args = line.Rest
	}
	return env
}

func (i *Interpreter) runSync(cmd *commands.Command, env commands.Env) {
	lines, err := i.callSync(cmd, env)
	for _, l := range lines {
		i.sink.Append(l)
	}
	if err != nil {
		i.log.Warn("Command failed", "command", cmd.Name, "error", err)
		output.Emit(i.sink, output.SemanticError, "Error: "+err.Error())
	}
}

func (i *Interpreter) callSync(cmd *commands.Command, env commands.Env) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("%s failed: %v", cmd.Name, r)
		}
	}()
	return cmd.Sync(env)
}

func (i *Interpreter) start(cmd *commands.Command, env commands.Env) {
	job, err := i.buildJob(cmd, env)
	if err != nil {
		i.log.Warn("Command failed", "command", cmd.Name, "error", err)
		output.Emit(i.sink, output.SemanticError, "Error: "+err.Error())
		return
	}
	if cmd.Placeholder != "" {
		output.Emit(i.sink, output.SemanticPending, cmd.Placeholder)
	}
	if job.Command == "" {
		job.Command = cmd.Name
	}
	id := i.bridge.Go(job)
	i.log.Debug("Async command started", "command", cmd.Name, "job", id)
}

func (i *Interpreter) buildJob(cmd *commands.Command, env commands.Env) (job async.Job, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s failed: %v", cmd.Name, r)
		}
	}()
	return cmd.Async(env), nil
}

// Deliver appends the lines of a finished job. All lines of one completion
// are appended together.
func (i *Interpreter) Deliver(c async.Completion) {
	defer i.bridge.Delivered()

	semantic := output.SemanticPlain
	if c.Err != nil {
		semantic = output.SemanticError
		i.log.Debug("Async command failed", "command", c.Command, "job", c.JobID, "error", c.Err)
	}
	for _, line := range c.Lines() {
		output.Emit(i.sink, semantic, line)
	}
}
