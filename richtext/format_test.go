package richtext

import "testing"

func TestToggleInlineStyle_CollapsedSetsOverride(t *testing.T) {
	s := newTestState()
	s.InsertText("ab")
	cv := s.ContentVersion()

	if !s.ToggleInlineStyle(Bold) {
		t.Fatalf("collapsed toggle should report a change")
	}
	if !s.CurrentInlineStyle().Has(Bold) {
		t.Fatalf("override should report BOLD as current")
	}
	if s.ContentVersion() != cv {
		t.Fatalf("override must not change content")
	}

	s.InsertText("c")
	b, _ := s.BlockAt(0)
	if !b.StyleAt(2).Has(Bold) {
		t.Fatalf("typed text should pick up the override: got %v", b.StyleAt(2))
	}
	if b.StyleAt(1).Has(Bold) {
		t.Fatalf("existing text must stay unstyled")
	}
}

func TestToggleInlineStyle_OverrideClearedByMove(t *testing.T) {
	s := newTestState()
	s.InsertText("ab")
	s.ToggleInlineStyle(Italic)
	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if s.CurrentInlineStyle().Has(Italic) {
		t.Fatalf("override should be cleared by a cursor move")
	}
}

func TestToggleInlineStyle_Range(t *testing.T) {
	s := newTestState()
	s.InsertText("hello")
	s.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 3}})

	if !s.ToggleInlineStyle(Bold) {
		t.Fatalf("expected style change")
	}
	b, _ := s.BlockAt(0)
	for col, want := range []bool{false, true, true, false, false} {
		if got := b.StyleAt(col).Has(Bold); got != want {
			t.Fatalf("col %d bold: got %v, want %v", col, got, want)
		}
	}
	if r, ok := s.Selection(); !ok || r != (Range{Start: Pos{Col: 1}, End: Pos{Col: 3}}) {
		t.Fatalf("selection should be preserved: got %v ok=%v", r, ok)
	}

	// Start cluster is bold now, so the whole range loses it.
	s.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 5}})
	s.ToggleInlineStyle(Bold)
	b, _ = s.BlockAt(0)
	for col := 0; col < b.Len(); col++ {
		if b.StyleAt(col).Has(Bold) {
			t.Fatalf("col %d should not be bold", col)
		}
	}
}

func TestToggleInlineStyle_AcrossBlocks(t *testing.T) {
	s := newTestState()
	s.InsertText("ab\ncd")
	s.SelectAll()
	s.ToggleInlineStyle(Underline)

	for _, b := range s.Blocks() {
		for col := 0; col < b.Len(); col++ {
			if !b.StyleAt(col).Has(Underline) {
				t.Fatalf("block %s col %d should be underlined", b.Key, col)
			}
		}
	}
}

func TestCurrentInlineStyle_LooksUpward(t *testing.T) {
	s := newTestState()
	s.ToggleInlineStyle(Bold)
	s.InsertText("a")
	s.SplitBlock()
	if !s.CurrentInlineStyle().Has(Bold) {
		t.Fatalf("empty block should inherit the style of the text above")
	}
}

func TestToggleBlockType(t *testing.T) {
	s := newTestState()
	s.InsertText("title")

	if !s.ToggleBlockType(HeaderOne) {
		t.Fatalf("expected block type change")
	}
	if got := s.CurrentBlockType(); got != HeaderOne {
		t.Fatalf("type: got %q, want %q", got, HeaderOne)
	}
	s.ToggleBlockType(HeaderOne)
	if got := s.CurrentBlockType(); got != Unstyled {
		t.Fatalf("second toggle: got %q, want %q", got, Unstyled)
	}
}

func TestToggleBlockType_SelectionEndingAtBlockStart(t *testing.T) {
	s := newTestState()
	s.InsertText("a\nb\nc")
	s.SetSelection(Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 2, Col: 0}})
	s.ToggleBlockType(Blockquote)

	want := []BlockType{Blockquote, Blockquote, Unstyled}
	for i, b := range s.Blocks() {
		if b.Type != want[i] {
			t.Fatalf("block %d type: got %q, want %q", i, b.Type, want[i])
		}
	}
}

func TestToggleBlockType_ResetsDepth(t *testing.T) {
	s := newTestState()
	s.ToggleBlockType(UnorderedListItem)
	s.OnTab(false, 4)
	s.ToggleBlockType(OrderedListItem)
	b, _ := s.BlockAt(0)
	if b.Type != OrderedListItem || b.Depth != 0 {
		t.Fatalf("got type %q depth %d, want %q depth 0", b.Type, b.Depth, OrderedListItem)
	}
}

func TestOnTab(t *testing.T) {
	s := newTestState()
	s.InsertText("item")
	s.ToggleBlockType(UnorderedListItem)

	for want := 1; want <= 4; want++ {
		if !s.OnTab(false, 4) {
			t.Fatalf("tab %d should indent", want)
		}
		if b, _ := s.BlockAt(0); b.Depth != want {
			t.Fatalf("depth: got %d, want %d", b.Depth, want)
		}
	}
	if s.OnTab(false, 4) {
		t.Fatalf("depth must not exceed 4")
	}
	if !s.OnTab(true, 4) {
		t.Fatalf("shift+tab should outdent")
	}
	if b, _ := s.BlockAt(0); b.Depth != 3 {
		t.Fatalf("depth after outdent: got %d, want 3", b.Depth)
	}
	if s.Text() != "item" {
		t.Fatalf("tab must not insert text: got %q", s.Text())
	}
}

func TestOnTab_IgnoresNonListAndMultiBlock(t *testing.T) {
	s := newTestState()
	s.InsertText("a\nb")
	if s.OnTab(false, 4) {
		t.Fatalf("tab on an unstyled block must be a no-op")
	}
	s.SelectAll()
	s.ToggleBlockType(UnorderedListItem)
	if s.OnTab(false, 4) {
		t.Fatalf("tab across blocks must be a no-op")
	}
	s.SetCursor(Pos{Row: 1})
	if s.OnTab(true, 4) {
		t.Fatalf("outdent at depth 0 must be a no-op")
	}
}

func TestOnTab_MaxDepthClamped(t *testing.T) {
	s := newTestState()
	s.ToggleBlockType(OrderedListItem)
	for i := 0; i < 10; i++ {
		s.OnTab(false, 9)
	}
	if b, _ := s.BlockAt(0); b.Depth != MaxDepth {
		t.Fatalf("depth: got %d, want %d", b.Depth, MaxDepth)
	}
}
