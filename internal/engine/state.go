// Package engine is the state-stack-and-result core of spec.md §3/§4:
// the polymorphic State interface, Result routing, and the Stack that owns
// a sequence of states with a non-removable BaseState at the bottom.
package engine

import (
	"github.com/gitwatch/gitwatch/internal/gitcli"
	"github.com/gitwatch/gitwatch/internal/queue"
)

// PaintCtx carries the terminal dimensions and the accumulated output from
// states painted so far (bottom to top). A state reads Output() to see what
// is already on screen beneath it and calls SetOutput to composite its own
// content over (or in place of) that.
type PaintCtx struct {
	Width, Height int
	output        string
}

// Output returns the content painted by states below the current one.
func (c *PaintCtx) Output() string { return c.output }

// SetOutput replaces the accumulated content with s.
func (c *PaintCtx) SetOutput(s string) { c.output = s }

// TerminalControl is the slice of TerminalGateway a handler needs to yield
// and reclaim raw-mode ownership around a synchronous child process
// (spec.md §4.6 "commit"). Declared here, not in internal/term, so engine
// does not import term — term.Gateway satisfies this interface structurally.
type TerminalControl interface {
	Restore() error
	EnterRaw() error
}

// HandleCtx is passed to every State.Handle call.
type HandleCtx struct {
	Jobs   *queue.Queue[Job]
	Runner *gitcli.Runner
	Term   TerminalControl
}

// State is the polymorphic UI state of spec.md §3: paint/handle/deinit.
type State interface {
	Paint(ctx *PaintCtx)
	Handle(hctx *HandleCtx, ev Event) Result
	Deinit()
}

// ResultKind tags a Result.
type ResultKind int

const (
	ResultExit ResultKind = iota
	ResultPass
	ResultPop
	ResultPush
	ResultStop
)

// Result is returned by State.Handle and routed by the Stack per spec.md §4.8.
type Result struct {
	Kind ResultKind
	Next State // populated for ResultPush
}

// Pass, Stop, Pop, and Exit are the zero-payload Result constructors.
func Pass() Result { return Result{Kind: ResultPass} }
func Stop() Result { return Result{Kind: ResultStop} }
func Pop() Result  { return Result{Kind: ResultPop} }
func Exit() Result { return Result{Kind: ResultExit} }

// Push wraps next into a ResultPush.
func Push(next State) Result { return Result{Kind: ResultPush, Next: next} }
