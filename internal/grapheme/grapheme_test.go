package grapheme

import "testing"

func TestSplitAndJoin_MultiRuneClusters(t *testing.T) {
	text := "a" + "é" + "\U0001F468‍\U0001F469‍\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len: got %d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]: got %q, want %q", got[1], "é")
	}
	if joined := Join(got); joined != text {
		t.Fatalf("join: got %q, want %q", joined, text)
	}
	if Split("") != nil {
		t.Fatalf("split of empty text should be nil")
	}
}

func TestUTF16Len(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 3},
		{in: "é", want: 1},
		{in: "\U0001F600", want: 2},
		{in: "a\U0001F600b", want: 4},
	}
	for _, tc := range cases {
		if got := UTF16Len(tc.in); got != tc.want {
			t.Fatalf("UTF16Len(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width("a"); got != 1 {
		t.Fatalf("width(a): got %d, want 1", got)
	}
	if got := Width("世"); got != 2 {
		t.Fatalf("width(世): got %d, want 2", got)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty cluster should not be space")
	}
}
