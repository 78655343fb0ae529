package richtext

import "testing"

func TestHandleKeyCommand_StyleCommands(t *testing.T) {
	cases := []struct {
		cmd   Command
		style InlineStyle
	}{
		{CommandBold, Bold},
		{CommandItalic, Italic},
		{CommandUnderline, Underline},
		{CommandCode, Code},
		{CommandStrikethrough, Strikethrough},
	}
	for _, tc := range cases {
		s := newTestState()
		s.InsertText("x")
		s.SelectAll()
		if !s.HandleKeyCommand(tc.cmd) {
			t.Fatalf("%s: expected command to be handled", tc.cmd)
		}
		if b, _ := s.BlockAt(0); !b.StyleAt(0).Has(tc.style) {
			t.Fatalf("%s: got %v, want %s", tc.cmd, b.StyleAt(0), tc.style)
		}
	}
}

func TestHandleKeyCommand_BackspaceRemovesBlockStyle(t *testing.T) {
	s := newTestState()
	s.InsertText("a\nb")
	s.ToggleBlockType(HeaderTwo)
	s.SetCursor(Pos{Row: 1, Col: 0})

	if !s.HandleKeyCommand(CommandBackspace) {
		t.Fatalf("backspace at the start of a styled block should be handled")
	}
	if got := s.CurrentBlockType(); got != Unstyled {
		t.Fatalf("type: got %q, want %q", got, Unstyled)
	}
	if got := s.BlockCount(); got != 2 {
		t.Fatalf("blocks must not be joined: got %d", got)
	}

	if s.HandleKeyCommand(CommandBackspace) {
		t.Fatalf("backspace on an unstyled block is not handled")
	}
	if !s.Execute(CommandBackspace) || s.BlockCount() != 1 {
		t.Fatalf("default backspace should join blocks")
	}
}

func TestHandleKeyCommand_SplitOnEmptyListItem(t *testing.T) {
	s := newTestState()
	s.InsertText("item")
	s.ToggleBlockType(UnorderedListItem)
	s.OnTab(false, 4)
	s.Execute(CommandSplitBlock)

	b, _ := s.BlockAt(1)
	if b.Type != UnorderedListItem || b.Depth != 1 {
		t.Fatalf("new item: got %q depth %d", b.Type, b.Depth)
	}

	if !s.HandleKeyCommand(CommandSplitBlock) {
		t.Fatalf("enter on an empty nested item should outdent")
	}
	if b, _ = s.BlockAt(1); b.Depth != 0 {
		t.Fatalf("depth: got %d, want 0", b.Depth)
	}
	if !s.HandleKeyCommand(CommandSplitBlock) {
		t.Fatalf("enter on an empty top-level item should exit the list")
	}
	if b, _ = s.BlockAt(1); b.Type != Unstyled {
		t.Fatalf("type: got %q, want %q", b.Type, Unstyled)
	}
	if s.HandleKeyCommand(CommandSplitBlock) {
		t.Fatalf("enter on an empty unstyled block falls through to the default")
	}
}

func TestHandleKeyCommand_Unhandled(t *testing.T) {
	s := newTestState()
	for _, cmd := range []Command{CommandMoveLeft, CommandUndo, CommandDelete, "unknown"} {
		if s.HandleKeyCommand(cmd) {
			t.Fatalf("%s: should not be handled", cmd)
		}
	}
}

func TestExecute_SelectAllAndUndo(t *testing.T) {
	s := newTestState()
	s.InsertText("ab\ncd")
	if !s.Execute(CommandSelectAll) {
		t.Fatalf("select-all should change the selection")
	}
	if s.Execute(CommandSelectAll) {
		t.Fatalf("repeated select-all is a no-op")
	}
	s.Execute(CommandDelete)
	if !s.IsEmpty() {
		t.Fatalf("document should be empty, got %q", s.Text())
	}
	s.Execute(CommandUndo)
	if got := s.Text(); got != "ab\ncd" {
		t.Fatalf("text after undo: got %q", got)
	}
}

func TestCommandMutates(t *testing.T) {
	cases := map[Command]bool{
		CommandBold:       true,
		CommandBackspace:  true,
		CommandUndo:       true,
		CommandMoveLeft:   false,
		CommandSelectEnd:  false,
		CommandSelectAll:  false,
		CommandSplitBlock: true,
	}
	for cmd, want := range cases {
		if got := cmd.Mutates(); got != want {
			t.Fatalf("%s.Mutates(): got %v, want %v", cmd, got, want)
		}
	}
}

func TestHandleKeyCommand_StyleConsumedWithoutChange(t *testing.T) {
	s := newTestState()
	s.InsertText("ab\ncd")
	s.SetSelection(Range{Start: Pos{Row: 0, Col: 2}, End: Pos{Row: 1, Col: 0}})
	v := s.Version()

	if !s.HandleKeyCommand(CommandBold) {
		t.Fatalf("bold over an empty span must still be consumed")
	}
	if s.Version() != v {
		t.Fatalf("version: got %d, want %d", s.Version(), v)
	}
	for _, b := range s.Blocks() {
		for i := 0; i < b.Len(); i++ {
			if b.StyleAt(i).Has(Bold) {
				t.Fatalf("block %q must stay unstyled", b.Text())
			}
		}
	}
}
