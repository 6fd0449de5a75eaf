package ui

import "github.com/charmbracelet/lipgloss"

// General UI colors — ANSI 16-color so they inherit the terminal's palette.
// Carried over from the teacher's internal/ui/styles.go.
var (
	clrAccent = lipgloss.Color("5") // magenta/purple
	clrDim    = lipgloss.Color("8") // bright-black
	clrGreen  = lipgloss.Color("2")
	clrYellow = lipgloss.Color("3")
	clrRed    = lipgloss.Color("1")
	clrBlue   = lipgloss.Color("4")
	clrCyan   = lipgloss.Color("6")
)

var (
	// ── Header ───────────────────────────────────────────────────────────────
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrDim).
			Padding(0, 1)

	headerBranchStyle = lipgloss.NewStyle().Foreground(clrAccent).Bold(true)
	headerShaStyle    = lipgloss.NewStyle().Foreground(clrDim)
	headerCountStyle  = lipgloss.NewStyle().Foreground(clrDim)

	// ── Sections ──────────────────────────────────────────────────────────────
	sectionHeaderStyle         = lipgloss.NewStyle().Bold(true)
	sectionHeaderSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(clrAccent)

	entryStyle         = lipgloss.NewStyle()
	entrySelectedStyle = lipgloss.NewStyle().Foreground(clrAccent).Bold(true)

	dimStyle    = lipgloss.NewStyle().Foreground(clrDim)
	accentStyle = lipgloss.NewStyle().Foreground(clrAccent).Bold(true)

	// ── Modal ─────────────────────────────────────────────────────────────────
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(clrAccent).Padding(0, 1)
	modalLabelStyle = lipgloss.NewStyle().Foreground(clrDim)

	// ── Footer ────────────────────────────────────────────────────────────────
	footerStyle    = lipgloss.NewStyle().Foreground(clrDim)
	footerKeyStyle = lipgloss.NewStyle().Foreground(clrAccent).Bold(true)
)

// statusColor returns the color for a FileEntry.StatusName label, grounded
// on the teacher's file-status palette (clrFileAdded/Modified/Deleted/
// Renamed), extended with the "unmerged" and "untracked" labels this spec
// adds.
func statusColor(statusName string) lipgloss.Color {
	switch statusName {
	case "added":
		return clrGreen
	case "modified", "type_change":
		return clrYellow
	case "deleted":
		return clrRed
	case "renamed", "copied":
		return clrAccent
	case "unmerged":
		return clrRed
	case "untracked":
		return clrCyan
	default:
		return clrBlue
	}
}
