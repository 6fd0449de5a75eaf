package engine

import (
	"github.com/gitwatch/gitwatch/internal/repo"
	"github.com/gitwatch/gitwatch/internal/types"
)

// EventKind tags an Event's payload, per spec.md §3.
type EventKind int

const (
	EventInput EventKind = iota
	EventRepoState
	// EventFatal carries a worker-fatal error (spec.md §7: a malformed
	// porcelain-v2 line, a dead stdin) up to the foreground loop, so it can
	// unwind through Orchestrator.Run's deferred raw-mode/alt-screen
	// cleanup instead of a background goroutine calling os.Exit directly
	// and skipping it.
	EventFatal
)

// Event is the tagged union the three workers put onto the foreground's
// Lockstep queue.
type Event struct {
	Kind      EventKind
	Input     types.Input
	RepoState *repo.State
	Err       error
}

// JobKind tags a Job's payload.
type JobKind int

const (
	JobStage JobKind = iota
	JobUnstage
	JobPush
	JobRefresh
)

// Job is the tagged union the job worker consumes from its UnboundedQueue.
type Job struct {
	Kind   JobKind
	Paths  []string
	Remote string
	Branch string
}
