package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitwatch/gitwatch/internal/engine"
	"github.com/gitwatch/gitwatch/internal/types"
	"github.com/mattn/go-runewidth"
)

// Paint implements engine.State per spec.md §4.6: the head summary line
// followed by the three expandable sections, with the selected row
// highlighted by (section, pos) equality against the Cursor.
func (b *BaseState) Paint(ctx *engine.PaintCtx) {
	if b.repoState == nil {
		ctx.SetOutput(dimStyle.Render("loading…"))
		return
	}

	lines := []string{b.renderHeader()}
	lines = append(lines, b.renderSection("untracked", SectionUntracked, b.repoState.Untracked, b.cursor.UntrackedExpanded, ctx.Width))
	lines = append(lines, b.renderSection("unstaged", SectionUnstaged, b.repoState.Unstaged, b.cursor.UnstagedExpanded, ctx.Width))
	lines = append(lines, b.renderSection("staged", SectionStaged, b.repoState.Staged, b.cursor.StagedExpanded, ctx.Width))
	lines = append(lines, renderFooter())

	ctx.SetOutput(strings.Join(lines, "\n"))
}

func renderFooter() string {
	keys := []string{"↑/↓ move", "tab expand", "S stage", "U unstage", "C,C commit", "P push", "B branch", "Q quit"}
	return footerStyle.Render(strings.Join(keys, footerKeyStyle.Render(" · ")))
}

func (b *BaseState) renderHeader() string {
	st := b.repoState
	branch := "(detached)"
	for _, ref := range st.BranchRefs {
		if ref.IsHead {
			branch = ref.RefName
		}
	}
	head := ""
	if st.Head.ShortHash != "" {
		head = headerShaStyle.Render(st.Head.ShortHash) + " " + st.Head.Subject
	}
	counts := headerCountStyle.Render(fmt.Sprintf("%d staged · %d unstaged · %d untracked",
		len(st.Staged), len(st.Unstaged), len(st.Untracked)))

	branchLine := headerBranchStyle.Render(branch) + "  " + head
	if st.BranchUpstream != "" {
		branchLine += "  " + accentStyle.Render("→"+st.BranchUpstream)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		branchLine,
		counts,
	)
	return headerBoxStyle.Render(content)
}

func (b *BaseState) renderSection(name string, section Section, entries []types.FileEntry, expanded bool, width int) string {
	selected := b.cursor.Section == section
	marker := "▾"
	if !expanded {
		marker = "▸"
	}
	headerStyle := sectionHeaderStyle
	if selected && b.cursor.Pos == 0 {
		headerStyle = sectionHeaderSelectedStyle
	}
	header := headerStyle.Render(fmt.Sprintf("%s %s (%d)", marker, name, len(entries)))

	if !expanded {
		return header
	}

	pathWidth := width - 13
	if pathWidth < 10 {
		pathWidth = 10
	}

	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, header)
	for i, e := range entries {
		pos := uint32(i + 1)
		style := entryStyle.Foreground(statusColor(e.StatusName))
		if selected && b.cursor.Pos == pos {
			style = entrySelectedStyle.Foreground(statusColor(e.StatusName))
		}
		rows = append(rows, "  "+style.Render(fmt.Sprintf("%-10s %s", e.StatusName, truncate(e.Path, pathWidth))))
	}
	return strings.Join(rows, "\n")
}

// truncate shortens s to at most width display cells, used when rendering
// a path in a narrow terminal (SPEC_FULL.md §3's go-runewidth wiring).
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
