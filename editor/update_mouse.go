package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/richtext"
)

// region is the part of the editor under a mouse cell.
type region int

const (
	regionOutside region = iota
	regionBorder
	regionBlockRow
	regionInlineRow
	regionSurface
)

// hitTarget is a mouse cell resolved against the editor geometry.
// x and y are local to the hit region's content origin.
type hitTarget struct {
	region region
	x, y   int
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	hit := m.hitTest(msg.X-m.originX, msg.Y-m.originY)

	if isWheelMouse(msg) {
		var cmd tea.Cmd
		if hit.region == regionSurface || hit.region == regionBorder {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if hit.region == regionOutside {
			return m.Blur(), nil
		}
		m = m.Focus()

		switch hit.region { //nolint:exhaustive
		case regionBlockRow, regionInlineRow:
			m.pressControl(hit)
		case regionSurface:
			p := m.surfacePos(hit.x, hit.y)
			if msg.Shift {
				anchor := m.eng.Cursor()
				if raw, ok := m.eng.SelectionRaw(); ok {
					anchor = raw.Start
				}
				m.mouseAnchor = anchor
				m.eng.SetSelection(richtext.Range{Start: anchor, End: p})
			} else {
				m.mouseAnchor = p
				m.eng.SetCursor(p)
			}
			m.mouseDragging = true
		}

	case tea.MouseActionMotion:
		if !m.mouseDragging || !m.focused {
			return m, nil
		}
		p := m.surfacePos(hit.x, hit.y)
		m.eng.SetSelection(richtext.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

// pressControl activates the button under the press. Activation happens on
// press and leaves cursor and selection alone.
func (m Model) pressControl(hit hitTarget) {
	row := m.controls[0]
	if hit.region == regionInlineRow {
		row = m.controls[1]
	}
	desc, ok := row.hit(hit.x, hit.y)
	if !ok || m.cfg.ReadOnly {
		return
	}
	btn := Button{Label: desc.Label, Style: desc.Style, Active: m.isActive(row.kind, desc.Style)}
	btn.Press(func(style string) {
		if row.kind == blockRow {
			m.eng.ToggleBlockType(richtext.BlockType(style))
		} else {
			m.eng.ToggleInlineStyle(richtext.InlineStyle(style))
		}
	})
}

// hitTest resolves a component-local cell.
func (m Model) hitTest(x, y int) hitTarget {
	th := m.theme
	outerW := m.rootWidth() + th.chromeWidth()
	outerH := m.outerHeight()
	if x < 0 || y < 0 || x >= outerW || y >= outerH {
		return hitTarget{region: regionOutside}
	}

	bx := th.Root.GetBorderLeftSize()
	top := th.Root.GetBorderTopSize()
	for i, kind := range []region{regionBlockRow, regionInlineRow} {
		row := m.controls[i]
		h := row.height(th)
		if y >= top && y < top+h {
			ox, oy := row.origin(th)
			return hitTarget{region: kind, x: x - bx - ox, y: y - top - oy}
		}
		top += h
	}

	surfaceH := m.viewport.Height + th.Surface.GetVerticalFrameSize()
	if y >= top && y < top+surfaceH && x >= bx && x < bx+m.rootWidth() {
		p := th.EditorPadding
		return hitTarget{region: regionSurface, x: x - bx - p.Left, y: y - top - p.Top}
	}
	return hitTarget{region: regionBorder}
}

func (m Model) outerHeight() int {
	th := m.theme
	return th.Root.GetVerticalFrameSize() +
		m.controls[0].height(th) + m.controls[1].height(th) +
		m.viewport.Height + th.Surface.GetVerticalFrameSize()
}

// surfacePos maps surface-local text coordinates to a document position,
// clamping into the visible rows.
func (m Model) surfacePos(x, y int) richtext.Pos {
	l := m.layout()
	if len(l.rows) == 0 {
		return richtext.Pos{}
	}
	y = clampInt(y, 0, maxInt(m.viewport.Height-1, 0))
	return l.posAt(m.viewport.YOffset+y, maxInt(x, 0))
}

func (m Model) isActive(kind rowKind, style string) bool {
	if kind == blockRow {
		return string(currentBlockType(m.eng)) == style
	}
	return m.eng.CurrentInlineStyle().Has(richtext.InlineStyle(style))
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
