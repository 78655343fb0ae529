package editor

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/notepad/richtext"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is a process-local Clipboard.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// DefaultClipboard returns the system clipboard when one is reachable and a
// MemoryClipboard otherwise.
func DefaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &MemoryClipboard{}
	}
	return SystemClipboard{}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.eng.Selection()
	if !ok {
		return
	}
	s := textInRange(m.eng.Blocks(), r)
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if _, ok := m.eng.Selection(); !ok {
		return
	}
	m.copySelection()
	m.eng.Execute(richtext.CommandBackspace)
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "error", err)
		return
	}
	if s == "" {
		return
	}
	m.eng.InsertText(s)
}

// textInRange returns the plain text of r, blocks joined by newlines.
func textInRange(blocks []richtext.Block, r richtext.Range) string {
	r = richtext.NormalizeRange(r)
	if r.IsEmpty() || r.Start.Row < 0 || r.End.Row >= len(blocks) {
		return ""
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		chars := blocks[row].Clusters()
		start, end := 0, len(chars)
		if row == r.Start.Row {
			start = clampInt(r.Start.Col, 0, len(chars))
		}
		if row == r.End.Row {
			end = clampInt(r.End.Col, start, len(chars))
		}
		for _, c := range chars[start:end] {
			sb.WriteString(c)
		}
	}
	return sb.String()
}
