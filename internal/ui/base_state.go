package ui

import (
	"strings"

	"github.com/gitwatch/gitwatch/internal/applog"
	"github.com/gitwatch/gitwatch/internal/engine"
	"github.com/gitwatch/gitwatch/internal/inputmap"
	"github.com/gitwatch/gitwatch/internal/repo"
	"github.com/gitwatch/gitwatch/internal/types"
)

// cmdCtx bundles the two things a bound handler needs: the BaseState it
// mutates, and the per-dispatch HandleCtx (jobs queue, runner, terminal).
type cmdCtx struct {
	base *BaseState
	hctx *engine.HandleCtx
}

type handler = inputmap.Handler[*cmdCtx, engine.Result]

// BaseState is the root engine.State of spec.md §4.6: it owns the input
// map, the current RepoState, and the Cursor, and is the one state the
// Stack never pops.
type BaseState struct {
	rootMap *inputmap.Map[*cmdCtx, engine.Result]
	curMap  *inputmap.Node[*cmdCtx, engine.Result]

	repoState *repo.State
	cursor    Cursor
}

// NewBaseState registers the bindings of spec.md §4.6 and returns a fresh
// BaseState.
func NewBaseState() *BaseState {
	b := &BaseState{rootMap: inputmap.New[*cmdCtx, engine.Result]()}
	b.curMap = b.rootMap.Root()

	b.bind([]types.Input{{Key: types.KeyUp}}, arrowUp)
	b.bind([]types.Input{{Key: types.KeyDown}}, arrowDown)
	b.bind([]types.Input{{Key: types.KeyTab}}, toggleExpand)
	b.bind([]types.Input{types.Letter('S')}, stage)
	b.bind([]types.Input{types.Letter('U')}, unstage)
	b.bind([]types.Input{types.Letter('P')}, push)
	b.bind([]types.Input{types.Letter('B')}, branch)
	b.bind([]types.Input{types.Letter('C'), types.Letter('C')}, commit)

	return b
}

func (b *BaseState) bind(seq []types.Input, h handler) {
	b.rootMap.Add(seq, h)
}

// Handle implements engine.State per spec.md §4.6.
func (b *BaseState) Handle(hctx *engine.HandleCtx, ev engine.Event) engine.Result {
	switch ev.Kind {
	case engine.EventInput:
		return b.handleInput(hctx, ev.Input)
	case engine.EventRepoState:
		// TODO: spec.md §9 leaves UiState reconciliation against a fresh
		// RepoState an open question and the source silently accepts a
		// stale Cursor; this keeps that behavior rather than guessing at
		// a reconciliation policy.
		b.repoState = ev.RepoState
		return engine.Stop()
	}
	return engine.Stop()
}

func (b *BaseState) handleInput(hctx *engine.HandleCtx, in types.Input) engine.Result {
	if in.Key == types.KeyEscape {
		if b.curMap != b.rootMap.Root() {
			b.curMap = b.rootMap.Root()
			return engine.Stop()
		}
		return engine.Exit()
	}
	if isQuit(in) {
		return engine.Exit()
	}

	node := b.curMap.Get(in)
	if node == nil {
		b.curMap = b.rootMap.Root()
		return engine.Stop()
	}
	if h := node.Handler(); h != nil {
		res := h(&cmdCtx{base: b, hctx: hctx})
		b.curMap = b.rootMap.Root()
		return res
	}
	b.curMap = node
	return engine.Stop()
}

func isQuit(in types.Input) bool {
	if in.Key == types.KeyRune && in.Rune == 'Q' {
		return true
	}
	return in.Key == types.KeyRune && in.Rune == 'c' && in.Mods&types.ModCtrl != 0
}

func (b *BaseState) sectionLens() SectionLens {
	if b.repoState == nil {
		return SectionLens{}
	}
	return SectionLens{
		Untracked: len(b.repoState.Untracked),
		Unstaged:  len(b.repoState.Unstaged),
		Staged:    len(b.repoState.Staged),
	}
}

// Deinit implements engine.State. BaseState is never popped; it owns no
// resource that needs releasing beyond what the Orchestrator itself tears
// down.
func (b *BaseState) Deinit() {}

// ── Handlers ──────────────────────────────────────────────────────────────

func arrowUp(c *cmdCtx) engine.Result {
	c.base.cursor.MoveUp(c.base.sectionLens())
	return engine.Stop()
}

func arrowDown(c *cmdCtx) engine.Result {
	c.base.cursor.MoveDown(c.base.sectionLens())
	return engine.Stop()
}

func toggleExpand(c *cmdCtx) engine.Result {
	c.base.cursor.ToggleExpand()
	return engine.Stop()
}

// stage implements spec.md §4.6's "stage" handler: permitted in untracked
// or unstaged only, optimistic move into Staged, then an async Job.
func stage(c *cmdCtx) engine.Result {
	b := c.base
	if b.repoState == nil {
		return engine.Stop()
	}
	var src *[]types.FileEntry
	var addedName string
	switch b.cursor.Section {
	case SectionUntracked:
		src, addedName = &b.repoState.Untracked, "added"
	case SectionUnstaged:
		src, addedName = &b.repoState.Unstaged, "modified"
	default:
		return engine.Stop()
	}

	var targets []types.FileEntry
	if b.cursor.Pos == 0 {
		targets = append(targets, (*src)...)
		*src = nil
	} else {
		idx := int(b.cursor.Pos) - 1
		if idx >= len(*src) {
			return engine.Stop()
		}
		targets = append(targets, (*src)[idx])
		*src, _ = repo.RemovePath(*src, targets[0].Path)
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		b.repoState.Staged = repo.InsertSorted(b.repoState.Staged, types.FileEntry{Path: t.Path, StatusName: addedName})
		paths = append(paths, t.Path)
	}
	if len(paths) == 0 {
		return engine.Stop()
	}

	b.cursor.Clamp(b.sectionLens())
	c.hctx.Jobs.Put(engine.Job{Kind: engine.JobStage, Paths: paths})
	return engine.Stop()
}

// unstage implements spec.md §4.6's "unstage" handler: permitted in staged
// only. Optimistic removal from Staged is not mandated by spec.md, so only
// the Cursor is clamped; the next refresh reconciles the list.
func unstage(c *cmdCtx) engine.Result {
	b := c.base
	if b.cursor.Section != SectionStaged || b.repoState == nil {
		return engine.Stop()
	}
	staged := b.repoState.Staged

	var paths []string
	if b.cursor.Pos == 0 {
		for _, e := range staged {
			paths = append(paths, e.Path)
		}
	} else {
		idx := int(b.cursor.Pos) - 1
		if idx >= len(staged) {
			return engine.Stop()
		}
		paths = []string{staged[idx].Path}
	}
	if len(paths) == 0 {
		return engine.Stop()
	}

	b.cursor.Clamp(b.sectionLens())
	c.hctx.Jobs.Put(engine.Job{Kind: engine.JobUnstage, Paths: paths})
	return engine.Stop()
}

// push implements spec.md §4.6's "push" handler, resolving remote/branch
// per SPEC_FULL.md §8.1 instead of the hard-coded origin/main the source
// used.
func push(c *cmdCtx) engine.Result {
	b := c.base
	remote, branch := "origin", "main"
	if b.repoState != nil {
		switch {
		case b.repoState.BranchUpstream != "":
			if r, br, ok := strings.Cut(b.repoState.BranchUpstream, "/"); ok {
				remote, branch = r, br
			}
		case b.repoState.BranchHead != "":
			branch = b.repoState.BranchHead
		}
	}
	c.hctx.Jobs.Put(engine.Job{Kind: engine.JobPush, Remote: remote, Branch: branch})
	return engine.Stop()
}

// branch implements spec.md §4.6's "branch" handler: load branch refs
// synchronously and push an InputModalState over the options.
func branch(c *cmdCtx) engine.Result {
	st, err := repo.Load(c.hctx.Runner)
	if err != nil {
		applog.Errorf("branch: %v", err)
		return engine.Stop()
	}
	options := make([]string, 0, len(st.BranchRefs))
	for _, ref := range st.BranchRefs {
		options = append(options, ref.RefName)
	}
	return engine.Push(NewInputModalState(options))
}

// commit implements spec.md §4.6's "commit" handler: yield raw mode,
// invoke the editor-driven commit synchronously, reclaim raw mode, and
// enqueue a refresh.
func commit(c *cmdCtx) engine.Result {
	if err := c.hctx.Term.Restore(); err != nil {
		applog.Errorf("commit: restore terminal: %v", err)
	}
	if err := c.hctx.Runner.RunInteractive("commit"); err != nil {
		applog.Errorf("commit: %v", err)
	}
	if err := c.hctx.Term.EnterRaw(); err != nil {
		applog.Errorf("commit: re-enter raw mode: %v", err)
	}
	c.hctx.Jobs.Put(engine.Job{Kind: engine.JobRefresh})
	return engine.Stop()
}
