package app

import (
	"fmt"
	"time"

	"github.com/gitwatch/gitwatch/internal/applog"
	"github.com/gitwatch/gitwatch/internal/engine"
	"github.com/gitwatch/gitwatch/internal/repo"
)

// refreshInterval is spec.md §4.9's 5-second periodic repository reload.
const refreshInterval = 5 * time.Second

// inputWorker blocking-reads decoded keys and puts them as Event::input.
// A decode error is fatal per spec.md §7 — a dead stdin would otherwise
// livelock the foreground loop waiting on a producer that will never put
// again — but the failure is reported as an EventFatal rather than by
// calling os.Exit from this goroutine, so the foreground's raw-mode and
// alt-screen cleanup still runs before the process exits.
func (o *Orchestrator) inputWorker() {
	for {
		in, err := o.decoder.ReadInput()
		if err != nil {
			o.events.Put(engine.Event{Kind: engine.EventFatal, Err: fmt.Errorf("input worker: %w", err)})
			return
		}
		o.events.Put(engine.Event{Kind: engine.EventInput, Input: in})
	}
}

// refreshWorker loads the repository immediately (so the first paint has
// something to show) and then every refreshInterval thereafter.
func (o *Orchestrator) refreshWorker() {
	for {
		if o.loadAndPublish("refresh worker") {
			return
		}
		time.Sleep(refreshInterval)
	}
}

// jobWorker serially drains the job queue, dispatches each job to the git
// CLI, then reloads and publishes a fresh RepoState so the UI converges
// (spec.md §4.9).
func (o *Orchestrator) jobWorker() {
	for {
		job := o.jobs.Take()
		o.runJob(job)
		if o.loadAndPublish("job worker") {
			return
		}
	}
}

// loadAndPublish reloads the repository and publishes the result, or, on a
// load/parse failure, publishes an EventFatal and reports fatal so the
// caller stops looping. spec.md §7 treats a malformed porcelain-v2 line as
// fatal; routing it through the event queue (rather than calling os.Exit
// from this goroutine) lets Orchestrator.Run's deferred cleanup run first.
func (o *Orchestrator) loadAndPublish(who string) (fatal bool) {
	st, err := repo.Load(o.runner)
	if err != nil {
		o.events.Put(engine.Event{Kind: engine.EventFatal, Err: fmt.Errorf("%s: load repo state: %w", who, err)})
		return true
	}
	o.events.Put(engine.Event{Kind: engine.EventRepoState, RepoState: st})
	return false
}

// runJob implements spec.md §4.9's job dispatch table.
func (o *Orchestrator) runJob(job engine.Job) {
	switch job.Kind {
	case engine.JobStage:
		args := append([]string{"add", "--"}, job.Paths...)
		if _, err := o.runner.Run(args...); err != nil {
			applog.Errorf("stage: %v", err)
		}
	case engine.JobUnstage:
		args := append([]string{"reset", "HEAD", "--"}, job.Paths...)
		if _, err := o.runner.Run(args...); err != nil {
			applog.Errorf("unstage: %v", err)
		}
	case engine.JobPush:
		if _, err := o.runner.Run("push", job.Remote, job.Branch); err != nil {
			applog.Errorf("push: %v", err)
		}
	case engine.JobRefresh:
		// No direct action: the loadAndPublish call after every job
		// already covers the "refresh" job's purpose.
	}
}
