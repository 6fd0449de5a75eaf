package repo

import (
	"strconv"
	"strings"

	"github.com/gitwatch/gitwatch/internal/apperr"
	"github.com/gitwatch/gitwatch/internal/types"
)

// changedFile is a parsed "1 <XY> ..." ordinary changed-file line.
type changedFile struct {
	X, Y types.ChangeType
	Path string
}

// renamedOrCopied is a parsed "2 <XY> ..." line.
type renamedOrCopied struct {
	X, Y      types.ChangeType
	IsCopy    bool
	Score     int
	NewPath   string
	OldPath   string
}

// unmergedFile is a parsed "u <XY> ..." line.
type unmergedFile struct {
	Path string
}

// parsedStatus is the intermediate result of walking every line of
// `git status --branch --porcelain=v2` output.
type parsedStatus struct {
	branchHead     string
	branchUpstream string
	changed        []changedFile
	renamed        []renamedOrCopied
	unmerged       []unmergedFile
	untracked      []string
}

// parseStatusV2 walks raw porcelain-v2 text line by line per spec.md §4.4
// step 2. Malformed lines surface as apperr.Error with Kind == apperr.Parse.
func parseStatusV2(raw string) (*parsedStatus, error) {
	ps := &parsedStatus{}
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '#':
			if err := parseBranchLine(line, ps); err != nil {
				return nil, err
			}
		case '1':
			cf, err := parseChangedLine(line)
			if err != nil {
				return nil, err
			}
			ps.changed = append(ps.changed, cf)
		case '2':
			rc, err := parseRenamedLine(line)
			if err != nil {
				return nil, err
			}
			ps.renamed = append(ps.renamed, rc)
		case 'u':
			uf, err := parseUnmergedLine(line)
			if err != nil {
				return nil, err
			}
			ps.unmerged = append(ps.unmerged, uf)
		case '?':
			fields := strings.SplitN(line, " ", 2)
			if len(fields) < 2 {
				return nil, apperr.MissingField("path")
			}
			ps.untracked = append(ps.untracked, fields[1])
		case '!':
			// Ignored entries are discarded per spec.md §4.4 step 2.
		}
	}
	return ps, nil
}

func parseBranchLine(line string, ps *parsedStatus) error {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return nil
	}
	switch fields[1] {
	case "branch.head":
		if len(fields) < 3 {
			return apperr.MissingField("branch.head")
		}
		ps.branchHead = fields[2]
	case "branch.upstream":
		if len(fields) < 3 {
			return apperr.MissingField("branch.upstream")
		}
		ps.branchUpstream = fields[2]
	}
	return nil
}

func parseXY(xy string) (types.ChangeType, types.ChangeType, error) {
	if len(xy) != 2 {
		return 0, 0, apperr.InvalidXY(xy)
	}
	x, err := types.ParseChangeType(xy[0])
	if err != nil {
		return 0, 0, apperr.InvalidChangeType(xy[0])
	}
	y, err := types.ParseChangeType(xy[1])
	if err != nil {
		return 0, 0, apperr.InvalidChangeType(xy[1])
	}
	return x, y, nil
}

// parseChangedLine parses "1 <XY> <sub> <mH> <mI> <mW> <oH> <oI> <path>".
// path is the rest of the line so that paths containing spaces round-trip.
func parseChangedLine(line string) (changedFile, error) {
	fields := strings.SplitN(line, " ", 9)
	if len(fields) < 9 {
		return changedFile{}, apperr.MissingField("path")
	}
	x, y, err := parseXY(fields[1])
	if err != nil {
		return changedFile{}, err
	}
	return changedFile{X: x, Y: y, Path: fields[8]}, nil
}

// parseRenamedLine parses
// "2 <XY> <sub> <mH> <mI> <mW> <oH> <oI> <score> <newpath>TAB<oldpath>".
func parseRenamedLine(line string) (renamedOrCopied, error) {
	fields := strings.SplitN(line, " ", 10)
	if len(fields) < 10 {
		return renamedOrCopied{}, apperr.MissingField("score/path")
	}
	x, y, err := parseXY(fields[1])
	if err != nil {
		return renamedOrCopied{}, err
	}
	score := fields[8]
	if len(score) < 2 || (score[0] != 'R' && score[0] != 'C') {
		return renamedOrCopied{}, apperr.InvalidScoreType(score)
	}
	pct, err := strconv.Atoi(score[1:])
	if err != nil {
		return renamedOrCopied{}, apperr.InvalidScoreType(score)
	}
	paths := strings.SplitN(fields[9], "\t", 2)
	if len(paths) < 2 {
		return renamedOrCopied{}, apperr.MissingField("oldpath")
	}
	return renamedOrCopied{
		X: x, Y: y,
		IsCopy:  score[0] == 'C',
		Score:   pct,
		NewPath: paths[0],
		OldPath: paths[1],
	}, nil
}

// parseUnmergedLine parses
// "u <XY> <sub> <m1> <m2> <m3> <mW> <o1> <o2> <o3> <path>".
func parseUnmergedLine(line string) (unmergedFile, error) {
	fields := strings.SplitN(line, " ", 11)
	if len(fields) < 11 {
		return unmergedFile{}, apperr.MissingField("path")
	}
	if _, _, err := parseXY(fields[1]); err != nil {
		return unmergedFile{}, err
	}
	return unmergedFile{Path: fields[10]}, nil
}

// parseBranchFormat parses the output of
// `git branch --format='%(if)%(HEAD)%(then)+%(else)-%(end)\t%(objectname)\t%(refname)\t%(contents:subject)\t%(upstream)'`,
// one BranchRef per non-empty line with at least four fields.
func parseBranchFormat(raw string) []types.BranchRef {
	var refs []types.BranchRef
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 5)
		if len(fields) < 4 {
			continue
		}
		ref := types.BranchRef{
			IsHead:     strings.HasPrefix(fields[0], "+"),
			ObjectName: fields[1],
			RefName:    fields[2],
			Subject:    fields[3],
		}
		if len(fields) >= 5 {
			ref.Upstream = fields[4]
		}
		refs = append(refs, ref)
	}
	return refs
}
