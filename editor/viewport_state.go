package editor

// ViewportState is a stable host-facing snapshot of the surface scroll state.
type ViewportState struct {
	// TopRow is the surface row rendered at the top of the editing surface.
	TopRow int
	// VisibleRows is the number of text rows the surface shows.
	VisibleRows int
	// TotalRows is the number of wrapped rows in the document.
	TotalRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      maxInt(m.viewport.YOffset, 0),
		VisibleRows: m.viewport.Height,
		TotalRows:   len(m.layout().rows),
	}
}

// AtBottom reports whether the last row is visible.
func (m Model) AtBottom() bool {
	vs := m.ViewportState()
	return vs.TopRow+vs.VisibleRows >= vs.TotalRows
}
