// Package app is the AppOrchestrator of spec.md §4.8: it owns the
// terminal-raw-mode guard, the event/job queues, and the state stack, and
// runs the foreground paint/handle loop against the three workers in
// workers.go.
package app

import (
	"os"

	"github.com/gitwatch/gitwatch/internal/engine"
	"github.com/gitwatch/gitwatch/internal/gitcli"
	"github.com/gitwatch/gitwatch/internal/queue"
	"github.com/gitwatch/gitwatch/internal/term"
	"github.com/gitwatch/gitwatch/internal/ui"
)

// Orchestrator wires the engine together and drives it.
type Orchestrator struct {
	runner  *gitcli.Runner
	term    *term.Gateway
	decoder *term.Decoder

	events *queue.Lockstep[engine.Event]
	jobs   *queue.Queue[engine.Job]
	stack  *engine.Stack
}

// New returns an Orchestrator rooted at dir (the working tree).
func New(dir string) *Orchestrator {
	return &Orchestrator{
		runner:  gitcli.New(dir),
		term:    term.NewGateway(),
		decoder: term.NewDecoder(os.Stdin),
		events:  queue.NewLockstep[engine.Event](),
		jobs:    queue.New[engine.Job](),
		stack:   engine.NewStack(ui.NewBaseState()),
	}
}

// Run enters raw mode and the alternate screen, spawns the three workers,
// and runs the foreground loop until a state returns engine.Exit().
func (o *Orchestrator) Run() error {
	if err := o.term.EnterRaw(); err != nil {
		return err
	}
	defer o.term.Restore()

	o.term.EnterAltScreen()
	defer o.term.ExitAltScreen()

	go o.inputWorker()
	go o.refreshWorker()
	go o.jobWorker()

	return o.foregroundLoop()
}

// foregroundLoop implements spec.md §4.8's four-step iteration.
func (o *Orchestrator) foregroundLoop() error {
	hctx := &engine.HandleCtx{Jobs: o.jobs, Runner: o.runner, Term: o.term}

	for {
		width, height, err := o.term.Size()
		if err != nil {
			width, height = 80, 24
		}
		ctx := &engine.PaintCtx{Width: width, Height: height}
		o.stack.Paint(ctx)
		o.term.Paint(ctx.Output())

		ev := o.events.Peek()
		if ev.Kind == engine.EventFatal {
			o.events.Advance()
			return ev.Err
		}
		exit := o.stack.Dispatch(hctx, ev)
		o.events.Advance()
		if exit {
			return nil
		}
	}
}
