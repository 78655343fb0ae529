package editor

import "github.com/iw2rmb/notepad/richtext"

// ScreenToDoc maps component-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the editor's top-left corner
// (after SetOrigin). ok is false outside the editing surface; positions
// within it are clamped into the visible rows.
func (m Model) ScreenToDoc(x, y int) (richtext.Pos, bool) {
	hit := m.hitTest(x, y)
	if hit.region != regionSurface {
		return richtext.Pos{}, false
	}
	return m.surfacePos(hit.x, hit.y), true
}

// DocToScreen maps a document position to component-local coordinates.
//
// ok is false when the position is scrolled out of the visible surface.
func (m Model) DocToScreen(pos richtext.Pos) (x, y int, ok bool) {
	row, cell := m.layout().rowForPos(pos)
	th := m.theme

	x = th.Root.GetBorderLeftSize() + th.EditorPadding.Left + cell
	y = th.Root.GetBorderTopSize() + m.controls[0].height(th) + m.controls[1].height(th) +
		th.EditorPadding.Top + row - m.viewport.YOffset

	visible := row >= m.viewport.YOffset && row < m.viewport.YOffset+m.viewport.Height
	return x, y, visible
}
