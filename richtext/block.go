package richtext

import "github.com/iw2rmb/notepad/internal/grapheme"

// MaxDepth is the deepest list nesting the engine keeps.
const MaxDepth = 4

// Block is one paragraph-level unit of the document.
type Block struct {
	Key   string
	Type  BlockType
	Depth int
	Data  map[string]any

	chars  []string
	styles []StyleSet
}

// NewBlock builds a block whose clusters all carry style.
func NewBlock(key string, t BlockType, text string, style StyleSet) Block {
	chars := grapheme.Split(text)
	styles := make([]StyleSet, len(chars))
	for i := range styles {
		styles[i] = style
	}
	return Block{Key: key, Type: t, chars: chars, styles: styles}
}

func (b Block) Text() string { return grapheme.Join(b.chars) }

// Len returns the number of grapheme clusters in the block.
func (b Block) Len() int { return len(b.chars) }

// Clusters returns a copy of the block's grapheme clusters.
func (b Block) Clusters() []string {
	return append([]string(nil), b.chars...)
}

// ClusterAt returns the cluster at col, or "" when out of range.
func (b Block) ClusterAt(col int) string {
	if col < 0 || col >= len(b.chars) {
		return ""
	}
	return b.chars[col]
}

// StyleAt returns the inline styles of the cluster at col.
func (b Block) StyleAt(col int) StyleSet {
	if col < 0 || col >= len(b.styles) {
		return nil
	}
	return b.styles[col]
}

func (b Block) clone() Block {
	out := b
	out.chars = append([]string(nil), b.chars...)
	out.styles = append([]StyleSet(nil), b.styles...)
	if b.Data != nil {
		out.Data = make(map[string]any, len(b.Data))
		for k, v := range b.Data {
			out.Data[k] = v
		}
	}
	return out
}

func blocksEqual(a, b Block) bool {
	if a.Key != b.Key || a.Type != b.Type || a.Depth != b.Depth || len(a.chars) != len(b.chars) {
		return false
	}
	for i := range a.chars {
		if a.chars[i] != b.chars[i] || !a.styles[i].Equal(b.styles[i]) {
			return false
		}
	}
	return true
}
