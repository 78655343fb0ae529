package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/notepad/internal/grapheme"
	"github.com/iw2rmb/notepad/richtext"
)

// View renders the root container: block-style row, inline-style row and
// the editing surface, with a pending notice composited over the corner.
func (m Model) View() string {
	th := m.theme
	w := m.rootWidth()

	blocks := m.controls[0].view(th, func(s string) bool { return m.isActive(blockRow, s) })
	inline := m.controls[1].view(th, func(s string) bool { return m.isActive(inlineRow, s) })
	surface := th.Surface.Width(w).Render(m.viewport.View())

	out := th.Root.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, blocks, inline, surface))
	if m.notice == "" {
		return out
	}
	note := th.Notice.Render(ansi.Truncate(m.notice, maxInt(w-th.Notice.GetHorizontalFrameSize()-2, 1), "…"))
	return overlay.Composite(note, out, overlay.Right, overlay.Bottom,
		-(th.Root.GetBorderRightSize() + 1), -th.Root.GetBorderBottomSize())
}

// renderContent draws every surface row, padded to the surface height.
func (m *Model) renderContent() string {
	th := m.theme
	l := m.layout()
	blocks := m.eng.Blocks()

	rc := rowContext{cursor: m.eng.Cursor(), cursorRow: -1}
	if m.focused {
		rc.cursorRow, _ = l.rowForPos(rc.cursor)
	}
	rc.sel, rc.hasSel = m.eng.Selection()

	lines := make([]string, 0, maxInt(len(l.rows), m.viewport.Height))
	for i, vr := range l.rows {
		if vr.block >= len(blocks) {
			break
		}
		lines = append(lines, m.renderRow(blocks[vr.block], vr, i == rc.cursorRow, rc, l.width))
	}
	for len(lines) < m.viewport.Height {
		lines = append(lines, th.Text.Render(pad(l.width)))
	}
	return strings.Join(lines, "\n")
}

type rowContext struct {
	cursor    richtext.Pos
	cursorRow int
	sel       richtext.Range
	hasSel    bool
}

// runKey identifies clusters that render with the same style.
type runKey struct {
	styles   string
	selected bool
	cursor   bool
}

func (m *Model) renderRow(b richtext.Block, vr visualRow, showCursor bool, rc rowContext, width int) string {
	th := m.theme
	base := th.blockBase(b)
	fill := th.Text
	if b.Type == richtext.CodeBlock {
		fill = th.CodeBlock
	}

	var sb strings.Builder
	lead := vr.shift + vr.indent
	if vr.marker != "" {
		mw := grapheme.Width(vr.marker) + 1
		sb.WriteString(th.Text.Render(pad(lead - mw)))
		sb.WriteString(th.Marker.Render(vr.marker + " "))
	} else {
		sb.WriteString(th.Text.Render(pad(lead)))
	}
	used := lead

	chars := b.Clusters()
	var run strings.Builder
	var cur runKey
	var curStyle lipgloss.Style
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(curStyle.Render(run.String()))
			run.Reset()
		}
	}

	for col := vr.start; col < vr.end && col < len(chars); col++ {
		set := b.StyleAt(col)
		key := runKey{
			styles:   set.String(),
			selected: rc.hasSel && inRange(rc.sel, richtext.Pos{Row: vr.block, Col: col}),
			cursor:   showCursor && rc.cursor.Row == vr.block && rc.cursor.Col == col,
		}
		if key != cur || run.Len() == 0 {
			flush()
			cur = key
			curStyle = m.cellStyle(base, set, key)
		}
		c := chars[col]
		if c == "\t" {
			c = " "
		}
		run.WriteString(c)
		used += grapheme.Width(c)
	}
	flush()

	if showCursor && rc.cursor.Row == vr.block && rc.cursor.Col >= vr.end {
		sb.WriteString(th.Cursor.Inherit(base).Render(" "))
		used++
	}
	if used < width {
		sb.WriteString(fill.Render(pad(width - used)))
	}
	return sb.String()
}

func (m *Model) cellStyle(base lipgloss.Style, set richtext.StyleSet, key runKey) lipgloss.Style {
	st := m.theme.inlineStyle(base, set)
	if key.selected {
		st = m.theme.Selection.Inherit(st)
	}
	if key.cursor {
		st = m.theme.Cursor.Inherit(st)
	}
	return st
}

// inRange reports whether the cluster at p lies inside r.
func inRange(r richtext.Range, p richtext.Pos) bool {
	return richtext.ComparePos(p, r.Start) >= 0 && richtext.ComparePos(p, r.End) < 0
}
