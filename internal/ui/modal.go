package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitwatch/gitwatch/internal/engine"
	"github.com/gitwatch/gitwatch/internal/types"
	"github.com/mattn/go-runewidth"
)

// InputModalState is the prompt overlay of spec.md §4.7: it captures a
// short text input centered on screen, over the state below it, until
// Enter or Escape.
type InputModalState struct {
	contents []rune
	options  []string
}

// NewInputModalState returns a modal seeded with options (candidate branch
// names, for the "branch" handler's fuzzy-filter future use per spec.md §4.7).
func NewInputModalState(options []string) *InputModalState {
	return &InputModalState{options: options}
}

// Contents returns the text typed so far.
func (m *InputModalState) Contents() string { return string(m.contents) }

// Handle implements engine.State per spec.md §4.7.
func (m *InputModalState) Handle(hctx *engine.HandleCtx, ev engine.Event) engine.Result {
	if ev.Kind == engine.EventRepoState {
		return engine.Pass()
	}
	in := ev.Input
	switch {
	case in.Key == types.KeyEscape:
		return engine.Pop()
	case in.Key == types.KeyEnter:
		return engine.Pop()
	case in.Key == types.KeyBackspace:
		if len(m.contents) > 0 {
			m.contents = m.contents[:len(m.contents)-1]
		}
		return engine.Stop()
	case in.Key == types.KeyRune:
		m.contents = append(m.contents, in.Rune)
		return engine.Stop()
	default:
		return engine.Pass()
	}
}

// Deinit implements engine.State. InputModalState owns no external
// resource.
func (m *InputModalState) Deinit() {}

// Paint implements engine.State per spec.md §4.7: a rounded-border box
// sized from max(50, display width of contents)+4 cells, holding a label
// row and a contents row with a cursor glyph, centered on a blank
// full-screen frame. That frame replaces ctx.Output(); the states below are
// not visible around the box.
func (m *InputModalState) Paint(ctx *engine.PaintCtx) {
	width := runewidth.StringWidth(m.Contents())
	if width < 50 {
		width = 50
	}
	boxWidth := width + 4

	label := modalLabelStyle.Render(fmt.Sprintf("%d branches", len(m.options)))
	box := modalStyle.Width(boxWidth).Render(label + "\n" + m.Contents() + "█")

	// lipgloss has no partial-transparency blit, so the overlay is placed
	// full-screen the way the teacher's centerModal helper replaces the
	// last frame rather than compositing pixel by pixel.
	overlay := lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))

	ctx.SetOutput(overlay)
}
