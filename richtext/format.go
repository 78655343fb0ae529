package richtext

// CurrentInlineStyle returns the inline styles that newly typed text gets and
// that formatting controls report as active.
//
// A pending override (set by toggling a style on a collapsed selection) wins.
// Otherwise a collapsed selection takes the style of the cluster before the
// cursor, and a range takes the style of its first cluster.
func (s *State) CurrentInlineStyle() StyleSet {
	if s.hasOverride {
		return s.override
	}
	r, collapsed := s.selectionOrCursor()
	b := s.blocks[r.Start.Row]
	col := r.Start.Col
	if collapsed {
		if col > 0 {
			return b.styles[col-1]
		}
		if b.Len() > 0 {
			return b.styles[0]
		}
		return s.lookUpwardForInlineStyle(r.Start.Row)
	}
	if col < b.Len() {
		return b.styles[col]
	}
	if col > 0 {
		return b.styles[col-1]
	}
	return s.lookUpwardForInlineStyle(r.Start.Row)
}

func (s *State) lookUpwardForInlineStyle(row int) StyleSet {
	for i := row - 1; i >= 0; i-- {
		if n := s.blocks[i].Len(); n > 0 {
			return s.blocks[i].styles[n-1]
		}
	}
	return nil
}

// ToggleInlineStyle toggles style on the selection. On a collapsed selection
// it toggles the pending override instead, so the next typed text picks it
// up. The selection is preserved.
func (s *State) ToggleInlineStyle(style InlineStyle) bool {
	current := s.CurrentInlineStyle()
	r, collapsed := s.selectionOrCursor()
	if collapsed {
		s.override = current.Toggle(style)
		s.hasOverride = true
		s.version++
		return true
	}

	remove := current.Has(style)
	prev := s.snapshot()
	change := s.beginChange(ChangeInlineStyle)
	changed := false
	for row := r.Start.Row; row <= r.End.Row; row++ {
		b := &s.blocks[row]
		from, to := 0, b.Len()
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		for col := from; col < to; col++ {
			next := b.styles[col].With(style)
			if remove {
				next = b.styles[col].Without(style)
			}
			if !next.Equal(b.styles[col]) {
				b.styles[col] = next
				changed = true
			}
		}
	}
	if !changed {
		return false
	}
	s.clearOverride()
	s.recordUndo(prev)
	s.commit(change)
	return true
}

// ToggleBlockType sets every block touched by the selection to t, or back to
// unstyled when the block at the selection start already has t.
func (s *State) ToggleBlockType(t BlockType) bool {
	r, _ := s.selectionOrCursor()
	endRow := r.End.Row
	// A selection ending at offset 0 of a later block does not include it.
	if endRow > r.Start.Row && r.End.Col == 0 {
		endRow--
	}
	target := t
	if s.blocks[r.Start.Row].Type == t {
		target = Unstyled
	}
	return s.setBlockType(r.Start.Row, endRow, target)
}

func (s *State) setBlockType(fromRow, toRow int, t BlockType) bool {
	dirty := false
	for row := fromRow; row <= toRow; row++ {
		if s.blocks[row].Type != t || s.blocks[row].Depth != 0 {
			dirty = true
			break
		}
	}
	if !dirty {
		return false
	}
	prev := s.snapshot()
	change := s.beginChange(ChangeBlockType)
	for row := fromRow; row <= toRow; row++ {
		s.blocks[row].Type = t
		s.blocks[row].Depth = 0
	}
	s.recordUndo(prev)
	s.commit(change)
	return true
}

// OnTab adjusts the depth of list items by one level (outdent when shift is
// set), capped at maxDepth. It only applies when the selection stays within
// one list item and reports whether the depth changed.
func (s *State) OnTab(shift bool, maxDepth int) bool {
	anchor, focus := s.cursor, s.cursor
	if s.sel.active {
		anchor, focus = s.sel.anchor, s.sel.end
	}
	if anchor.Row != focus.Row {
		return false
	}
	b := s.blocks[anchor.Row]
	if !b.Type.IsList() {
		return false
	}
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	if !shift && b.Depth >= maxDepth {
		return false
	}
	adj := 1
	if shift {
		adj = -1
	}
	depth := clampInt(b.Depth+adj, 0, maxDepth)
	if depth == b.Depth {
		return false
	}
	prev := s.snapshot()
	change := s.beginChange(ChangeDepth)
	s.blocks[anchor.Row].Depth = depth
	s.recordUndo(prev)
	s.commit(change)
	return true
}

// tryToRemoveBlockStyle resets a styled block to unstyled when backspace is
// pressed at its very start, instead of joining it with the block above.
func (s *State) tryToRemoveBlockStyle() bool {
	if _, ok := s.Selection(); ok || s.cursor.Col != 0 {
		return false
	}
	row := s.cursor.Row
	b := s.blocks[row]
	if b.Type == Unstyled {
		return false
	}
	if b.Type == CodeBlock && row > 0 {
		if above := s.blocks[row-1]; above.Type == CodeBlock && above.Len() > 0 {
			return false
		}
	}
	return s.setBlockType(row, row, Unstyled)
}

// tryToExitEmptyBlock turns Enter on an empty list item or quote into an
// outdent (or a plain block) rather than another empty item.
func (s *State) tryToExitEmptyBlock() bool {
	if _, ok := s.Selection(); ok {
		return false
	}
	row := s.cursor.Row
	b := s.blocks[row]
	if b.Len() != 0 {
		return false
	}
	switch {
	case b.Type.IsList() && b.Depth > 0:
		prev := s.snapshot()
		change := s.beginChange(ChangeDepth)
		s.blocks[row].Depth--
		s.recordUndo(prev)
		s.commit(change)
		return true
	case b.Type.IsList(), b.Type == Blockquote:
		return s.setBlockType(row, row, Unstyled)
	default:
		return false
	}
}
