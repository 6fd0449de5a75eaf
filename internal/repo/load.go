package repo

import (
	"sort"
	"strings"

	"github.com/gitwatch/gitwatch/internal/gitcli"
	"github.com/gitwatch/gitwatch/internal/types"
)

// branchFormat is the --format argument to `git branch`, per spec.md §6.
const branchFormat = "%(if)%(HEAD)%(then)+%(else)-%(end)\t%(objectname)\t%(refname)\t%(contents:subject)\t%(upstream)"

// Load runs `git status --branch --porcelain=v2` and `git branch --format=...`
// through r, parses both, and projects the result into a State per
// spec.md §4.4. Parse errors propagate unwrapped so a worker can treat them
// as fatal per spec.md §7 ("the grammar is strict and the upstream is
// trusted").
func Load(r *gitcli.Runner) (*State, error) {
	raw, err := r.RunRaw("status", "--branch", "--porcelain=v2")
	if err != nil {
		return nil, err
	}
	ps, err := parseStatusV2(raw)
	if err != nil {
		return nil, err
	}

	branchOut, err := r.Run("branch", "--format="+branchFormat)
	if err != nil {
		return nil, err
	}
	refs := parseBranchFormat(branchOut)

	st := &State{
		BranchRefs:     refs,
		RawStatus:      raw,
		BranchHead:     ps.branchHead,
		BranchUpstream: ps.branchUpstream,
	}

	if headLine, err := r.Run("log", "-1", "--format=%h %s"); err == nil {
		if hash, subject, ok := strings.Cut(headLine, " "); ok {
			st.Head = HeadSummary{ShortHash: hash, Subject: subject}
		} else {
			st.Head = HeadSummary{ShortHash: headLine}
		}
	}

	projectSections(ps, st)

	sortByPath(st.Staged)
	sortByPath(st.Unstaged)
	sortByPath(st.Untracked)

	return st, nil
}

// projectSections implements spec.md §4.4 step 4: splitting each parsed
// line into the staged (index-side) and unstaged (worktree-side) sections.
func projectSections(ps *parsedStatus, st *State) {
	for _, cf := range ps.changed {
		if cf.X != types.Unmodified {
			st.Staged = append(st.Staged, types.FileEntry{Path: cf.Path, StatusName: cf.X.Name()})
		}
		if cf.Y != types.Unmodified {
			st.Unstaged = append(st.Unstaged, types.FileEntry{Path: cf.Path, StatusName: cf.Y.Name()})
		}
	}
	for _, rc := range ps.renamed {
		if rc.X != types.Unmodified {
			st.Staged = append(st.Staged, types.FileEntry{Path: rc.NewPath, StatusName: rc.X.Name()})
		}
		if rc.Y != types.Unmodified {
			st.Unstaged = append(st.Unstaged, types.FileEntry{Path: rc.NewPath, StatusName: rc.Y.Name()})
		}
	}
	for _, uf := range ps.unmerged {
		st.Unstaged = append(st.Unstaged, types.FileEntry{Path: uf.Path, StatusName: "unmerged"})
	}
	for _, path := range ps.untracked {
		st.Untracked = append(st.Untracked, types.FileEntry{Path: path, StatusName: "untracked"})
	}
}

func sortByPath(entries []types.FileEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
}

// insertSorted inserts e into entries keeping lexicographic order by path,
// used by the optimistic stage handler (spec.md §4.6) to move an entry
// between sections without a full reparse.
func insertSorted(entries []types.FileEntry, e types.FileEntry) []types.FileEntry {
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Path >= e.Path })
	entries = append(entries, types.FileEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e
	return entries
}

// InsertSorted is the exported form of insertSorted for use by internal/ui.
func InsertSorted(entries []types.FileEntry, e types.FileEntry) []types.FileEntry {
	return insertSorted(entries, e)
}

// RemovePath removes the first entry with the given path, returning the
// updated slice and whether a match was found.
func RemovePath(entries []types.FileEntry, path string) ([]types.FileEntry, bool) {
	for i, e := range entries {
		if e.Path == path {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
