package richtext

import "testing"

func TestNew_EmptyDocument(t *testing.T) {
	s := newTestState()
	if !s.IsEmpty() {
		t.Fatalf("new state should be empty")
	}
	if got, want := s.BlockCount(), 1; got != want {
		t.Fatalf("block count: got %d, want %d", got, want)
	}
	if got := s.CurrentBlockType(); got != Unstyled {
		t.Fatalf("block type: got %q, want %q", got, Unstyled)
	}
	if got := s.StartKey(); got != "k1" {
		t.Fatalf("start key: got %q, want %q", got, "k1")
	}
	if s.Version() != 0 || s.ContentVersion() != 0 {
		t.Fatalf("versions: got %d/%d, want 0/0", s.Version(), s.ContentVersion())
	}
}

func TestInsertText_SplitsBlocksOnNewline(t *testing.T) {
	s := newTestState()
	s.InsertText("one\ntwo\r\nthree")

	if got, want := blockTexts(s), []string{"one", "two", "three"}; !equalStrings(got, want) {
		t.Fatalf("blocks: got %q, want %q", got, want)
	}
	if got, want := s.Cursor(), (Pos{Row: 2, Col: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	keys := map[string]bool{}
	for _, b := range s.Blocks() {
		if keys[b.Key] {
			t.Fatalf("duplicate key %q", b.Key)
		}
		keys[b.Key] = true
	}
	if s.ContentVersion() != 1 {
		t.Fatalf("content version: got %d, want 1", s.ContentVersion())
	}
}

func TestSplitBlock_KeepsTypeAndDepth(t *testing.T) {
	s := newTestState()
	s.InsertText("ab")
	s.ToggleBlockType(UnorderedListItem)
	s.SetCursor(Pos{Row: 0, Col: 1})

	if !s.SplitBlock() {
		t.Fatalf("expected split to change the document")
	}
	blocks := s.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("block count: got %d, want 2", len(blocks))
	}
	if blocks[0].Key != "k1" {
		t.Fatalf("first block should keep its key: got %q", blocks[0].Key)
	}
	if blocks[1].Type != UnorderedListItem {
		t.Fatalf("new block type: got %q, want %q", blocks[1].Type, UnorderedListItem)
	}
	if got, want := blockTexts(s), []string{"a", "b"}; !equalStrings(got, want) {
		t.Fatalf("blocks: got %q, want %q", got, want)
	}
}

func TestDeleteBackward_JoinsBlocks(t *testing.T) {
	s := newTestState()
	s.InsertText("ab\ncd")
	s.SetCursor(Pos{Row: 1, Col: 0})

	if !s.DeleteBackward() {
		t.Fatalf("expected join")
	}
	if got := s.Text(); got != "abcd" {
		t.Fatalf("text: got %q, want %q", got, "abcd")
	}
	if got, want := s.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	s.SetCursor(Pos{})
	if s.DeleteBackward() {
		t.Fatalf("backspace at document start must be a no-op")
	}
}

func TestDeleteForward_AndSelection(t *testing.T) {
	s := newTestState()
	s.InsertText("hello\nworld")
	s.SetSelection(Range{Start: Pos{Row: 0, Col: 3}, End: Pos{Row: 1, Col: 2}})

	if !s.DeleteForward() {
		t.Fatalf("expected selection delete")
	}
	if got := s.Text(); got != "helrld" {
		t.Fatalf("text: got %q, want %q", got, "helrld")
	}
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection should be cleared after delete")
	}

	s.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if s.DeleteForward() {
		t.Fatalf("delete at document end must be a no-op")
	}
}

func TestDeleteWordBackward(t *testing.T) {
	s := newTestState()
	s.InsertText("hello big world")
	s.DeleteWordBackward()
	if got := s.Text(); got != "hello big " {
		t.Fatalf("text: got %q, want %q", got, "hello big ")
	}
	s.DeleteToLineStart()
	if got := s.Text(); got != "" {
		t.Fatalf("text: got %q, want empty", got)
	}
}

func TestMove_ExtendAndCollapse(t *testing.T) {
	s := newTestState()
	s.InsertText("abc")
	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})

	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{Start: Pos{Col: 1}, End: Pos{Col: 3}}); r != want {
		t.Fatalf("selection: got %v, want %v", r, want)
	}

	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := s.Cursor(), (Pos{Col: 1}); got != want {
		t.Fatalf("collapsed cursor: got %v, want %v", got, want)
	}
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection should collapse")
	}
}

func TestMove_VersionOnlyOnEffectiveChange(t *testing.T) {
	s := newTestState()
	v := s.Version()
	if s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft}) {
		t.Fatalf("moving left at start must be a no-op")
	}
	if s.Version() != v {
		t.Fatalf("version changed on no-op move")
	}
	cv := s.ContentVersion()
	s.InsertText("x")
	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if s.ContentVersion() != cv+1 {
		t.Fatalf("cursor moves must not bump the content version")
	}
}

func TestUndoRedo(t *testing.T) {
	s := newTestState()
	s.InsertText("a")
	s.InsertText("b")
	s.ToggleBlockType(HeaderOne)

	if !s.Undo() {
		t.Fatalf("expected undo")
	}
	if got := s.CurrentBlockType(); got != Unstyled {
		t.Fatalf("type after undo: got %q, want %q", got, Unstyled)
	}
	s.Undo()
	if got := s.Text(); got != "a" {
		t.Fatalf("text after second undo: got %q, want %q", got, "a")
	}
	if !s.Redo() || !s.Redo() {
		t.Fatalf("expected two redos")
	}
	if got := s.CurrentBlockType(); got != HeaderOne {
		t.Fatalf("type after redo: got %q, want %q", got, HeaderOne)
	}
	if s.CanRedo() {
		t.Fatalf("redo stack should be empty")
	}
}

func TestHistoryLimit(t *testing.T) {
	s := New(Options{HistoryLimit: 2})
	s.InsertText("a")
	s.InsertText("b")
	s.InsertText("c")
	s.Undo()
	s.Undo()
	if s.Undo() {
		t.Fatalf("history limit should cap undo depth")
	}
	if got := s.Text(); got != "a" {
		t.Fatalf("text: got %q, want %q", got, "a")
	}
}

func TestBlockForKey(t *testing.T) {
	s := newTestState()
	s.InsertText("a\nb")
	b, ok := s.BlockForKey("k2")
	if !ok || b.Text() != "b" {
		t.Fatalf("BlockForKey(k2): got %q ok=%v", b.Text(), ok)
	}
	if _, ok := s.BlockForKey("missing"); ok {
		t.Fatalf("missing key should not resolve")
	}
}

func TestLastChange(t *testing.T) {
	s := newTestState()
	if _, ok := s.LastChange(); ok {
		t.Fatalf("no change expected on a fresh state")
	}
	s.InsertText("a\nb")
	ch, ok := s.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	if ch.Kind != ChangeSplit || ch.Kind.String() != "split-block" {
		t.Fatalf("kind: got %v", ch.Kind)
	}
	if ch.CursorAfter != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor after: got %v", ch.CursorAfter)
	}
}

func TestInsertText_CombiningMarkJoinsPreviousCluster(t *testing.T) {
	s := newTestState()
	s.InsertText("e")
	s.ToggleInlineStyle(Bold)
	s.InsertText("\u0301x")

	b, _ := s.BlockAt(0)
	if b.Len() != 2 || b.Text() != "e\u0301x" {
		t.Fatalf("clusters: got %d in %q, want 2", b.Len(), b.Text())
	}
	if got, want := s.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if b.StyleAt(0).Has(Bold) || !b.StyleAt(1).Has(Bold) {
		t.Fatalf("styles: got %v %v", b.StyleAt(0), b.StyleAt(1))
	}

	data, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	reloaded := newTestState()
	if err := reloaded.Deserialize(data); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	rb, _ := reloaded.BlockAt(0)
	if rb.Len() != b.Len() {
		t.Fatalf("reloaded clusters: got %d, want %d", rb.Len(), b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		if !rb.StyleAt(i).Equal(b.StyleAt(i)) {
			t.Fatalf("col %d style: got %v, want %v", i, rb.StyleAt(i), b.StyleAt(i))
		}
	}
}
