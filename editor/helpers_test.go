package editor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/storage"
)

func stripANSI(s string) string { return ansi.Strip(s) }

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// newTestModel builds a model with plain rendering, a silent logger and a
// private memory store unless cfg says otherwise.
func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.Renderer == nil {
		cfg.Renderer = asciiRenderer()
	}
	if cfg.Logger == nil {
		cfg.Logger = applog.Discard()
	}
	if cfg.Store == nil {
		cfg.Store = storage.NewMemory()
	}
	return New(cfg)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, k tea.KeyMsg) Model {
	m, _ = m.Update(k)
	return m
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func viewLines(m Model) []string {
	lines := strings.Split(stripANSI(m.View()), "\n")
	return lines
}

func docText(m Model) string {
	blocks := m.Engine().Blocks()
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Text()
	}
	return strings.Join(parts, "\n")
}

var errBoom = errors.New("boom")

// failingStore fails every operation.
type failingStore struct{ loads, saves int }

func (s *failingStore) Load(context.Context, string) ([]byte, error) {
	s.loads++
	return nil, errBoom
}

func (s *failingStore) Save(context.Context, string, []byte) error {
	s.saves++
	return errBoom
}
