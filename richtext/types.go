package richtext

import (
	"sort"
	"strings"
)

// BlockType is the structural role of a block.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	Paragraph         BlockType = "paragraph"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	Blockquote        BlockType = "blockquote"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	CodeBlock         BlockType = "code-block"
)

// IsList reports whether t is one of the list item types.
func (t BlockType) IsList() bool {
	return t == UnorderedListItem || t == OrderedListItem
}

// HeaderLevel returns 1..6 for heading types and 0 otherwise.
func (t BlockType) HeaderLevel() int {
	switch t {
	case HeaderOne:
		return 1
	case HeaderTwo:
		return 2
	case HeaderThree:
		return 3
	case HeaderFour:
		return 4
	case HeaderFive:
		return 5
	case HeaderSix:
		return 6
	default:
		return 0
	}
}

// InlineStyle is a character-range formatting attribute.
type InlineStyle string

const (
	Bold          InlineStyle = "BOLD"
	Italic        InlineStyle = "ITALIC"
	Underline     InlineStyle = "UNDERLINE"
	Code          InlineStyle = "CODE"
	Strikethrough InlineStyle = "STRIKETHROUGH"
)

// StyleSet is a sorted, duplicate-free set of inline styles.
//
// Values are treated as immutable: methods return new sets and never modify
// the receiver, so sets may be shared between clusters.
type StyleSet []InlineStyle

// NewStyleSet builds a set from styles in any order.
func NewStyleSet(styles ...InlineStyle) StyleSet {
	if len(styles) == 0 {
		return nil
	}
	out := make(StyleSet, 0, len(styles))
	for _, s := range styles {
		if s == "" || out.Has(s) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s StyleSet) Has(style InlineStyle) bool {
	for _, x := range s {
		if x == style {
			return true
		}
	}
	return false
}

func (s StyleSet) With(style InlineStyle) StyleSet {
	if s.Has(style) {
		return s
	}
	out := make([]InlineStyle, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, style)
	return NewStyleSet(out...)
}

func (s StyleSet) Without(style InlineStyle) StyleSet {
	if !s.Has(style) {
		return s
	}
	out := make(StyleSet, 0, len(s)-1)
	for _, x := range s {
		if x != style {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s StyleSet) Toggle(style InlineStyle) StyleSet {
	if s.Has(style) {
		return s.Without(style)
	}
	return s.With(style)
}

func (s StyleSet) Equal(o StyleSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s StyleSet) String() string {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = string(x)
	}
	return strings.Join(parts, "|")
}

// Pos points into the document by (block row, grapheme col).
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPos clamps p into a document of rowCount blocks where blockLen(row)
// returns the cluster count of a block.
func ClampPos(p Pos, rowCount int, blockLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)
	maxCol := 0
	if blockLen != nil {
		maxCol = blockLen(row)
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
