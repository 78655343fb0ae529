package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/notepad/richtext"
)

func TestRender_ListMarkersAndIndent(t *testing.T) {
	m := newTestModel(t, Config{})
	m = m.ToggleBlockType(richtext.OrderedListItem)
	m = typeText(m, "one")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "two")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	lines := viewLines(m)
	if want := "│  1. one"; !strings.HasPrefix(lines[8], want) {
		t.Fatalf("first item: got %q, want prefix %q", lines[8], want)
	}
	if want := "│    1. two"; !strings.HasPrefix(lines[9], want) {
		t.Fatalf("nested item: got %q, want prefix %q", lines[9], want)
	}
}

func TestRender_WrapsLongBlocks(t *testing.T) {
	// Twelve text cells, one of them kept for the cursor.
	m := newTestModel(t, Config{Width: 16})
	m = typeText(m, "alpha beta gamma")

	lines := strings.Split(stripANSI(m.renderContent()), "\n")
	got := []string{strings.TrimRight(lines[0], " "), strings.TrimRight(lines[1], " ")}
	want := []string{"alpha beta", "gamma"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("wrapped rows: got %q, want %q", got, want)
	}
}

func TestRender_CursorAndSelectionStyles(t *testing.T) {
	m := newTestModel(t, Config{Renderer: trueColorRenderer()})
	m = typeText(m, "ab")
	if out := m.renderContent(); !strings.Contains(out, "\x1b[7") {
		t.Fatalf("focused editor must draw a reverse-video cursor: %q", out)
	}

	m = m.Blur()
	if out := m.renderContent(); strings.Contains(out, "\x1b[7") {
		t.Fatalf("blurred editor must hide the cursor: %q", out)
	}

	m = m.Focus()
	m = press(m, altKey('a'))
	plain := stripANSI(m.renderContent())
	if !strings.HasPrefix(plain, "ab") {
		t.Fatalf("selection must not change text: %q", plain)
	}
	want := termenv.TrueColor.Color("#b4d5fe").Sequence(true)
	if out := m.renderContent(); !strings.Contains(out, want) {
		t.Fatalf("selection background %q missing: %q", want, out)
	}
}

func TestRender_CustomStyleMap(t *testing.T) {
	r := trueColorRenderer()
	m := newTestModel(t, Config{
		Renderer:       r,
		CustomStyleMap: map[richtext.InlineStyle]lipgloss.Style{richtext.Code: r.NewStyle().Foreground(lipgloss.Color("#123456"))},
	})
	m = m.ToggleInlineStyle(richtext.Code)
	m = typeText(m, "x")
	if out := m.renderContent(); !strings.Contains(out, "18;52;86") {
		t.Fatalf("custom CODE style not applied: %q", out)
	}
}
