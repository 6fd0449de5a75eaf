package repo

import (
	"testing"

	"github.com/gitwatch/gitwatch/internal/types"
)

const sampleStatusV2 = "# branch.head main\n" +
	"# branch.upstream origin/main\n" +
	"1 M. N... 100644 100644 100644 aaaaaaa bbbbbbb src/main.go\n" +
	"1 .M N... 100644 100644 100644 aaaaaaa bbbbbbb src/util.go\n" +
	"2 R. N... 100644 100644 100644 aaaaaaa bbbbbbb R100 new/path.go\told/path.go\n" +
	"u UU N... 100644 100644 100644 100644 aaaaaaa bbbbbbb cccccccc conflict.go\n" +
	"? untracked.txt\n" +
	"! ignored.log\n"

func TestParseStatusV2(t *testing.T) {
	ps, err := parseStatusV2(sampleStatusV2)
	if err != nil {
		t.Fatalf("parseStatusV2() error = %v", err)
	}

	if ps.branchHead != "main" {
		t.Errorf("branchHead = %q, want %q", ps.branchHead, "main")
	}
	if ps.branchUpstream != "origin/main" {
		t.Errorf("branchUpstream = %q, want %q", ps.branchUpstream, "origin/main")
	}

	if len(ps.changed) != 2 {
		t.Fatalf("len(changed) = %d, want 2", len(ps.changed))
	}
	if ps.changed[0].Path != "src/main.go" || ps.changed[0].X != types.Modified || ps.changed[0].Y != types.Unmodified {
		t.Errorf("changed[0] = %+v, want staged modification of src/main.go", ps.changed[0])
	}
	if ps.changed[1].Path != "src/util.go" || ps.changed[1].X != types.Unmodified || ps.changed[1].Y != types.Modified {
		t.Errorf("changed[1] = %+v, want unstaged modification of src/util.go", ps.changed[1])
	}

	if len(ps.renamed) != 1 {
		t.Fatalf("len(renamed) = %d, want 1", len(ps.renamed))
	}
	rc := ps.renamed[0]
	if rc.NewPath != "new/path.go" || rc.OldPath != "old/path.go" {
		t.Errorf("renamed[0] paths = %q/%q, want new/path.go / old/path.go", rc.NewPath, rc.OldPath)
	}
	if rc.IsCopy || rc.Score != 100 {
		t.Errorf("renamed[0] IsCopy/Score = %v/%d, want false/100", rc.IsCopy, rc.Score)
	}

	if len(ps.unmerged) != 1 || ps.unmerged[0].Path != "conflict.go" {
		t.Errorf("unmerged = %+v, want one entry for conflict.go", ps.unmerged)
	}

	if len(ps.untracked) != 1 || ps.untracked[0] != "untracked.txt" {
		t.Errorf("untracked = %v, want [untracked.txt]", ps.untracked)
	}
}

func TestParseChangedLinePreservesSpacesInPath(t *testing.T) {
	line := "1 M. N... 100644 100644 100644 aaaaaaa bbbbbbb path with spaces.go"
	cf, err := parseChangedLine(line)
	if err != nil {
		t.Fatalf("parseChangedLine() error = %v", err)
	}
	if cf.Path != "path with spaces.go" {
		t.Fatalf("Path = %q, want %q", cf.Path, "path with spaces.go")
	}
}

func TestParseRenamedLineRejectsBadScorePrefix(t *testing.T) {
	line := "2 R. N... 100644 100644 100644 aaaaaaa bbbbbbb Z100 new.go\told.go"
	if _, err := parseRenamedLine(line); err == nil {
		t.Fatal("parseRenamedLine() error = nil, want an error for score prefix Z")
	}
}

func TestParseXYRejectsWrongLength(t *testing.T) {
	if _, _, err := parseXY("M"); err == nil {
		t.Fatal("parseXY(\"M\") error = nil, want an error")
	}
	if _, _, err := parseXY("MMM"); err == nil {
		t.Fatal("parseXY(\"MMM\") error = nil, want an error")
	}
}

func TestParseBranchFormat(t *testing.T) {
	raw := "+\taaaaaaa\trefs/heads/main\tfix bug\torigin/main\n" +
		"-\tbbbbbbb\trefs/heads/feature\tadd thing\t\n"
	refs := parseBranchFormat(raw)
	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if !refs[0].IsHead || refs[0].RefName != "refs/heads/main" || refs[0].Upstream != "origin/main" {
		t.Errorf("refs[0] = %+v, want head main with upstream origin/main", refs[0])
	}
	if refs[1].IsHead || refs[1].RefName != "refs/heads/feature" {
		t.Errorf("refs[1] = %+v, want non-head feature branch", refs[1])
	}
}
