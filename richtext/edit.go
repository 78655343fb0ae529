package richtext

import (
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// Inserted clusters take the current inline style; '\n' splits blocks.
func (s *State) InsertText(text string) bool {
	text = normalizeNewlines(text)
	r, _ := s.selectionOrCursor()
	if text == "" {
		if r.IsEmpty() {
			return false
		}
		return s.edit(ChangeDelete, r, "", nil)
	}
	kind := ChangeInsert
	if strings.Contains(text, "\n") {
		kind = ChangeSplit
	}
	return s.edit(kind, r, text, s.CurrentInlineStyle())
}

// SplitBlock breaks the current block at the cursor (replacing any
// selection). The new block continues the type and depth of the old one.
func (s *State) SplitBlock() bool {
	r, _ := s.selectionOrCursor()
	return s.edit(ChangeSplit, r, "\n", s.CurrentInlineStyle())
}

// DeleteBackward applies backspace semantics.
func (s *State) DeleteBackward() bool {
	if r, ok := s.Selection(); ok {
		return s.edit(ChangeDelete, r, "", nil)
	}
	c := s.cursor
	if c.Row == 0 && c.Col == 0 {
		return false
	}
	start := Pos{Row: c.Row, Col: c.Col - 1}
	if c.Col == 0 {
		// Join with the previous block.
		start = Pos{Row: c.Row - 1, Col: s.blocks[c.Row-1].Len()}
	}
	return s.edit(ChangeDelete, Range{Start: start, End: c}, "", nil)
}

// DeleteForward applies delete-key semantics.
func (s *State) DeleteForward() bool {
	if r, ok := s.Selection(); ok {
		return s.edit(ChangeDelete, r, "", nil)
	}
	c := s.cursor
	last := len(s.blocks) - 1
	if c.Row == last && c.Col == s.blocks[last].Len() {
		return false
	}
	end := Pos{Row: c.Row, Col: c.Col + 1}
	if c.Col == s.blocks[c.Row].Len() {
		end = Pos{Row: c.Row + 1, Col: 0}
	}
	return s.edit(ChangeDelete, Range{Start: c, End: end}, "", nil)
}

// DeleteWordBackward deletes back to the previous word boundary.
func (s *State) DeleteWordBackward() bool {
	if _, ok := s.Selection(); ok || s.cursor.Col == 0 {
		return s.DeleteBackward()
	}
	c := s.cursor
	start := Pos{Row: c.Row, Col: prevWordBoundary(s.blocks[c.Row].chars, c.Col)}
	return s.edit(ChangeDelete, Range{Start: start, End: c}, "", nil)
}

// DeleteWordForward deletes up to the next word boundary.
func (s *State) DeleteWordForward() bool {
	if _, ok := s.Selection(); ok || s.cursor.Col == s.blocks[s.cursor.Row].Len() {
		return s.DeleteForward()
	}
	c := s.cursor
	end := Pos{Row: c.Row, Col: nextWordBoundary(s.blocks[c.Row].chars, c.Col)}
	return s.edit(ChangeDelete, Range{Start: c, End: end}, "", nil)
}

// DeleteToLineStart deletes from the block start to the cursor.
func (s *State) DeleteToLineStart() bool {
	if _, ok := s.Selection(); ok || s.cursor.Col == 0 {
		return s.DeleteBackward()
	}
	c := s.cursor
	return s.edit(ChangeDelete, Range{Start: Pos{Row: c.Row}, End: c}, "", nil)
}

// DeleteSelection deletes the active selection, if any.
func (s *State) DeleteSelection() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	return s.edit(ChangeDelete, r, "", nil)
}

func (s *State) edit(kind ChangeKind, r Range, text string, style StyleSet) bool {
	prev := s.snapshot()
	change := s.beginChange(kind)

	next, changed := s.replaceRange(r, text, style)
	if !changed {
		return false
	}
	s.cursor = next
	s.sel = selectionState{}
	s.clearOverride()
	s.recordUndo(prev)
	s.commit(change)
	return true
}

// replaceRange replaces r with text. The block holding r.Start keeps its key,
// type and depth; blocks created by '\n' inherit type and depth from it.
func (s *State) replaceRange(r Range, text string, style StyleSet) (Pos, bool) {
	r = NormalizeRange(Range{Start: s.clampPos(r.Start), End: s.clampPos(r.End)})
	if r.IsEmpty() && text == "" {
		return s.cursor, false
	}

	start := s.blocks[r.Start.Row]
	end := s.blocks[r.End.Row]

	prefixChars := append([]string(nil), start.chars[:r.Start.Col]...)
	prefixStyles := append([]StyleSet(nil), start.styles[:r.Start.Col]...)
	suffixChars := append([]string(nil), end.chars[r.End.Col:]...)
	suffixStyles := append([]StyleSet(nil), end.styles[r.End.Col:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, len(parts))
	for i, p := range parts {
		ins[i] = grapheme.Split(p)
	}

	first := start.clone()
	first.chars = append(prefixChars, ins[0]...)
	first.styles = append(prefixStyles, repeatStyle(style, len(ins[0]))...)

	repl := []Block{first}
	var next Pos
	if len(ins) == 1 {
		first.chars = append(first.chars, suffixChars...)
		first.styles = append(first.styles, suffixStyles...)
		var col int
		first.chars, first.styles, col = resegment(first.chars, first.styles, len(prefixChars)+len(ins[0]))
		repl[0] = first
		next = Pos{Row: r.Start.Row, Col: col}
	} else {
		first.chars, first.styles, _ = resegment(first.chars, first.styles, 0)
		repl[0] = first
		var pending []string
		for i := 1; i < len(ins); i++ {
			b := Block{
				Key:    s.newKey(pending...),
				Type:   start.Type,
				Depth:  start.Depth,
				chars:  append([]string(nil), ins[i]...),
				styles: repeatStyle(style, len(ins[i])),
			}
			pending = append(pending, b.Key)
			if i == len(ins)-1 {
				b.chars = append(b.chars, suffixChars...)
				b.styles = append(b.styles, suffixStyles...)
				var col int
				b.chars, b.styles, col = resegment(b.chars, b.styles, len(ins[i]))
				next = Pos{Row: r.Start.Row + i, Col: col}
			}
			repl = append(repl, b)
		}
	}

	out := make([]Block, 0, len(s.blocks)-(r.End.Row-r.Start.Row)+len(repl)-1)
	out = append(out, s.blocks[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, s.blocks[r.End.Row+1:]...)
	s.blocks = out
	return next, true
}

// resegment re-splits chars after an edit joined text that may form new
// clusters across the seam, such as a base letter followed by a combining
// mark. A merged cluster keeps the style of its first part. mark is a cluster
// index into chars; the returned index points at the same place, rounded up
// to the next cluster boundary.
func resegment(chars []string, styles []StyleSet, mark int) ([]string, []StyleSet, int) {
	next := grapheme.Split(grapheme.Join(chars))
	if len(next) == len(chars) {
		return chars, styles, mark
	}

	markOff := 0
	for _, c := range chars[:mark] {
		markOff += len(c)
	}

	outStyles := make([]StyleSet, len(next))
	newMark := len(next)
	oi, ooff, noff := 0, 0, 0
	for ni, c := range next {
		for oi < len(chars)-1 && ooff+len(chars[oi]) <= noff {
			ooff += len(chars[oi])
			oi++
		}
		outStyles[ni] = styles[oi]
		if newMark == len(next) && noff >= markOff {
			newMark = ni
		}
		noff += len(c)
	}
	return next, outStyles, newMark
}

func repeatStyle(style StyleSet, n int) []StyleSet {
	if n <= 0 {
		return nil
	}
	out := make([]StyleSet, n)
	for i := range out {
		out[i] = style
	}
	return out
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
