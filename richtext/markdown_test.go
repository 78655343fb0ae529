package richtext

import (
	"strings"
	"testing"
)

func TestFromMarkdown_Blocks(t *testing.T) {
	src := "# Title\n\nplain **bold** _it_ ~~gone~~ `code` <u>under</u>\n\n> quoted\n\n- one\n  - nested\n1. first\n\n```\nx := 1\ny := 2\n```\n"
	raw, err := FromMarkdown([]byte(src))
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}

	want := []struct {
		typ   BlockType
		depth int
		text  string
	}{
		{HeaderOne, 0, "Title"},
		{Unstyled, 0, "plain bold it gone code under"},
		{Blockquote, 0, "quoted"},
		{UnorderedListItem, 0, "one"},
		{UnorderedListItem, 1, "nested"},
		{OrderedListItem, 0, "first"},
		{CodeBlock, 0, "x := 1"},
		{CodeBlock, 0, "y := 2"},
	}
	if len(raw.Blocks) != len(want) {
		t.Fatalf("block count: got %d, want %d (%+v)", len(raw.Blocks), len(want), raw.Blocks)
	}
	for i, w := range want {
		b := raw.Blocks[i]
		if b.Type != w.typ || b.Depth != w.depth || b.Text != w.text {
			t.Fatalf("block %d: got %q/%d/%q, want %q/%d/%q", i, b.Type, b.Depth, b.Text, w.typ, w.depth, w.text)
		}
	}

	styles := map[InlineStyle]string{}
	p := raw.Blocks[1]
	for _, r := range p.InlineStyleRanges {
		styles[r.Style] = p.Text[r.Offset : r.Offset+r.Length]
	}
	for style, text := range map[InlineStyle]string{Bold: "bold", Italic: "it", Strikethrough: "gone", Code: "code", Underline: "under"} {
		if styles[style] != text {
			t.Fatalf("%s: got %q, want %q", style, styles[style], text)
		}
	}
}

func TestToMarkdown(t *testing.T) {
	s := newTestState()
	s.InsertText("Title\nhello world\na\nb\nc\nfn()")
	s.SetCursor(Pos{Row: 0})
	s.ToggleBlockType(HeaderTwo)
	s.SetSelection(Range{Start: Pos{Row: 1, Col: 6}, End: Pos{Row: 1, Col: 11}})
	s.ToggleInlineStyle(Bold)
	s.SetSelection(Range{Start: Pos{Row: 2}, End: Pos{Row: 4, Col: 1}})
	s.ToggleBlockType(OrderedListItem)
	s.SetCursor(Pos{Row: 3})
	s.OnTab(false, 4)
	s.SetCursor(Pos{Row: 5})
	s.ToggleBlockType(CodeBlock)

	got, err := ToMarkdown(s.Raw())
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	want := strings.Join([]string{
		"## Title",
		"",
		"hello **world**",
		"",
		"1. a",
		"   1. b",
		"2. c",
		"",
		"```",
		"fn()",
		"```",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("markdown:\n got %q\nwant %q", got, want)
	}
}

func TestMarkdown_RoundTripStyles(t *testing.T) {
	s := newTestState()
	s.InsertText("a*b c")
	s.SetSelection(Range{Start: Pos{Col: 0}, End: Pos{Col: 3}})
	s.ToggleInlineStyle(Italic)
	s.ToggleInlineStyle(Underline)

	md, err := ToMarkdown(s.Raw())
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	raw, err := FromMarkdown([]byte(md))
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	back, err := FromRaw(raw, Options{})
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	b, _ := back.BlockAt(0)
	if b.Text() != "a*b c" {
		t.Fatalf("text: got %q from %q", b.Text(), md)
	}
	for col, want := range []bool{true, true, true, false, false} {
		st := b.StyleAt(col)
		if st.Has(Italic) != want || st.Has(Underline) != want {
			t.Fatalf("col %d: got %v from %q", col, st, md)
		}
	}
}

func TestToMarkdown_EscapesBlockSyntaxAtLineStart(t *testing.T) {
	lines := []string{
		"1. not a list",
		"2) nor this",
		"* star",
		"```fence",
		"    indented",
		"+ plus",
		"# hash",
		"trailing  ",
		"1. quoted",
		"C#",
	}
	s := newTestState()
	s.InsertText(strings.Join(lines, "\n"))
	s.SetCursor(Pos{Row: 8})
	s.ToggleBlockType(Blockquote)
	s.SetCursor(Pos{Row: 9})
	s.ToggleBlockType(HeaderThree)

	md, err := ToMarkdown(s.Raw())
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	raw, err := FromMarkdown([]byte(md))
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	if len(raw.Blocks) != len(lines) {
		t.Fatalf("block count: got %d, want %d from %q", len(raw.Blocks), len(lines), md)
	}
	for i, want := range lines {
		wantType := Unstyled
		switch i {
		case 8:
			wantType = Blockquote
		case 9:
			wantType = HeaderThree
		}
		b := raw.Blocks[i]
		if b.Type != wantType || b.Text != want {
			t.Fatalf("block %d: got %q/%q, want %q/%q from %q", i, b.Type, b.Text, wantType, want, md)
		}
	}
}
