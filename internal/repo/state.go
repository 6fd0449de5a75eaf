// Package repo is the RepoModel: it loads the working tree into an
// in-memory State by invoking git status (porcelain v2) and git branch
// through a gitcli.Runner and parsing their output per spec.md §4.4.
package repo

import "github.com/gitwatch/gitwatch/internal/types"

// HeadSummary is the one-line `git log -1 --format=%h %s` result shown in
// BaseState's header (SPEC_FULL.md §5.1).
type HeadSummary struct {
	ShortHash string
	Subject   string
}

// State is the RepoState of spec.md §3: everything BaseState needs to
// paint the branch head, the three file sections, and the branch list.
type State struct {
	BranchRefs []types.BranchRef

	RawStatus      string
	BranchHead     string
	BranchUpstream string

	Head HeadSummary

	Staged    []types.FileEntry
	Unstaged  []types.FileEntry
	Untracked []types.FileEntry
}
