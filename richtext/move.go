package richtext

import "github.com/iw2rmb/notepad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false clears it
}

// Move moves the cursor and reports whether cursor or selection changed.
func (s *State) Move(m Move) bool {
	prevCursor := s.cursor
	prevSel := s.sel

	nextCursor := s.clampPos(s.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if r, ok := s.Selection(); ok && (m.Dir == DirLeft || m.Dir == DirRight) && m.Unit == MoveGrapheme {
		// Collapsing a selection with an arrow lands on its edge.
		nextCursor = r.Start
		if m.Dir == DirRight {
			nextCursor = r.End
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return false
	}
	s.cursor = nextCursor
	s.sel = nextSel
	s.clearOverride()
	s.version++
	return true
}

func (s *State) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return s.moveGrapheme(p, m.Dir)
	case MoveWord:
		return s.moveWord(p, m.Dir)
	case MoveBlock:
		return s.moveBlock(p, m.Dir)
	case MoveDoc:
		return s.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (s *State) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	last := len(s.blocks) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		return Pos{Row: row - 1, Col: s.blocks[row-1].Len()}
	case DirRight:
		if row == last && col == s.blocks[last].Len() {
			return p
		}
		if col < s.blocks[row].Len() {
			return Pos{Row: row, Col: col + 1}
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return s.moveBlock(p, dir)
	}
}

func (s *State) moveWord(p Pos, dir MoveDir) Pos {
	line := s.blocks[p.Row].chars
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return s.moveGrapheme(p, DirLeft)
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) {
			return s.moveGrapheme(p, DirRight)
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return s.moveBlock(p, dir)
	}
}

func (s *State) moveBlock(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	last := len(s.blocks) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: s.blocks[row].Len()}
	case DirUp:
		if row == 0 {
			return Pos{Row: 0, Col: 0}
		}
		return Pos{Row: row - 1, Col: minInt(col, s.blocks[row-1].Len())}
	case DirDown:
		if row == last {
			return Pos{Row: last, Col: s.blocks[last].Len()}
		}
		return Pos{Row: row + 1, Col: minInt(col, s.blocks[row+1].Len())}
	default:
		return p
	}
}

func (s *State) moveDoc(p Pos, dir MoveDir) Pos {
	last := len(s.blocks) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: last, Col: s.blocks[last].Len()}
	default:
		return p
	}
}

// Word boundaries skip whitespace, then non-whitespace, within one block.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
