package richtext

import "strings"

type Options struct {
	HistoryLimit int           // default: 1000
	NewKey       func() string // default: RandomKey
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// State is the editable document: blocks, cursor, selection, the pending
// inline style override, and undo history.
//
// Version increments on every effective change (including cursor moves).
// ContentVersion increments only when blocks change.
type State struct {
	blocks []Block

	version        uint64
	contentVersion uint64

	cursor Pos
	sel    selectionState

	override    StyleSet
	hasOverride bool

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

// New returns an empty document holding a single unstyled block.
func New(opt Options) *State {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	s := &State{opt: opt}
	s.blocks = []Block{{Key: s.newKey(), Type: Unstyled}}
	return s
}

func (s *State) Version() uint64 { return s.version }

func (s *State) ContentVersion() uint64 { return s.contentVersion }

func (s *State) BlockCount() int { return len(s.blocks) }

// Blocks returns a copy of the document's blocks.
func (s *State) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	for i := range s.blocks {
		out[i] = s.blocks[i].clone()
	}
	return out
}

func (s *State) BlockAt(row int) (Block, bool) {
	if row < 0 || row >= len(s.blocks) {
		return Block{}, false
	}
	return s.blocks[row].clone(), true
}

func (s *State) BlockForKey(key string) (Block, bool) {
	i, ok := s.keyIndex(key)
	if !ok {
		return Block{}, false
	}
	return s.blocks[i].clone(), true
}

// Text returns the plain text of the document, blocks joined by '\n'.
func (s *State) Text() string {
	var sb strings.Builder
	for i, b := range s.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// IsEmpty reports whether the document is a single empty unstyled block.
func (s *State) IsEmpty() bool {
	return len(s.blocks) == 1 && s.blocks[0].Len() == 0 && s.blocks[0].Type == Unstyled
}

func (s *State) Cursor() Pos { return s.cursor }

func (s *State) SetCursor(p Pos) {
	next := s.clampPos(p)
	if next == s.cursor && !s.sel.active {
		return
	}
	s.cursor = next
	s.sel = selectionState{}
	s.clearOverride()
	s.version++
}

func (s *State) Selection() (Range, bool) {
	if !s.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: s.sel.anchor, End: s.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns anchor/end without normalization, preserving the
// selection direction.
func (s *State) SelectionRaw() (Range, bool) {
	if !s.sel.active || s.sel.anchor == s.sel.end {
		return Range{}, false
	}
	return Range{Start: s.sel.anchor, End: s.sel.end}, true
}

// SetSelection selects r; the cursor moves to r.End. An empty range clears
// the selection.
func (s *State) SetSelection(r Range) {
	anchor := s.clampPos(r.Start)
	end := s.clampPos(r.End)
	next := selectionState{active: anchor != end, anchor: anchor, end: end}
	if !next.active {
		next = selectionState{}
	}
	if selectionStateEqual(s.sel, next) && s.cursor == end {
		return
	}
	s.sel = next
	s.cursor = end
	s.clearOverride()
	s.version++
}

func (s *State) ClearSelection() {
	if !s.sel.active {
		return
	}
	s.sel = selectionState{}
	s.version++
}

func (s *State) SelectAll() {
	last := len(s.blocks) - 1
	s.SetSelection(Range{Start: Pos{}, End: Pos{Row: last, Col: s.blocks[last].Len()}})
}

// selectionOrCursor returns the active selection or the collapsed range at
// the cursor.
func (s *State) selectionOrCursor() (Range, bool) {
	if r, ok := s.Selection(); ok {
		return r, false
	}
	return Range{Start: s.cursor, End: s.cursor}, true
}

// StartKey returns the key of the block where the selection starts.
func (s *State) StartKey() string {
	r, _ := s.selectionOrCursor()
	return s.blocks[r.Start.Row].Key
}

// CurrentBlockType returns the type of the block where the selection starts.
func (s *State) CurrentBlockType() BlockType {
	r, _ := s.selectionOrCursor()
	return s.blocks[r.Start.Row].Type
}

func (s *State) clearOverride() {
	s.override = nil
	s.hasOverride = false
}

func (s *State) blockLen(row int) int {
	if row < 0 || row >= len(s.blocks) {
		return 0
	}
	return s.blocks[row].Len()
}

func (s *State) clampPos(p Pos) Pos {
	return ClampPos(p, len(s.blocks), s.blockLen)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}
