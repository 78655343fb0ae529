package richtext

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

// ErrMalformed is returned when serialized content cannot be decoded.
var ErrMalformed = errors.New("richtext: malformed document")

// RawDraft is the exchange format: a plain tree that serializes to the draft
// raw JSON layout. Offsets and lengths are UTF-16 code units.
type RawDraft struct {
	Blocks    []RawBlock           `json:"blocks"`
	EntityMap map[string]RawEntity `json:"entityMap"`
}

type RawBlock struct {
	Key               string                `json:"key"`
	Text              string                `json:"text"`
	Type              BlockType             `json:"type"`
	Depth             int                   `json:"depth"`
	InlineStyleRanges []RawInlineStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []RawEntityRange      `json:"entityRanges"`
	Data              map[string]any        `json:"data"`
}

type RawInlineStyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// RawEntityRange and RawEntity keep the exchange format complete. The engine
// has no entities, so ranges are dropped on load and never emitted.
type RawEntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

type RawEntity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// Raw converts the document into the exchange format.
func (s *State) Raw() RawDraft {
	out := RawDraft{
		Blocks:    make([]RawBlock, 0, len(s.blocks)),
		EntityMap: map[string]RawEntity{},
	}
	for _, b := range s.blocks {
		out.Blocks = append(out.Blocks, encodeBlock(b))
	}
	return out
}

func encodeBlock(b Block) RawBlock {
	offsets := utf16Offsets(b.chars)

	var order []InlineStyle
	for _, st := range b.styles {
		for _, x := range st {
			if !containsStyle(order, x) {
				order = append(order, x)
			}
		}
	}

	ranges := []RawInlineStyleRange{}
	n := len(b.chars)
	for _, style := range order {
		for i := 0; i < n; {
			if !b.styles[i].Has(style) {
				i++
				continue
			}
			j := i
			for j < n && b.styles[j].Has(style) {
				j++
			}
			ranges = append(ranges, RawInlineStyleRange{
				Offset: offsets[i],
				Length: offsets[j] - offsets[i],
				Style:  style,
			})
			i = j
		}
	}

	data := map[string]any{}
	for k, v := range b.Data {
		data[k] = v
	}
	typ := b.Type
	if typ == "" {
		typ = Unstyled
	}
	return RawBlock{
		Key:               b.Key,
		Text:              b.Text(),
		Type:              typ,
		Depth:             b.Depth,
		InlineStyleRanges: ranges,
		EntityRanges:      []RawEntityRange{},
		Data:              data,
	}
}

// utf16Offsets returns the UTF-16 start offset of every cluster plus the
// total length as the final element.
func utf16Offsets(chars []string) []int {
	offsets := make([]int, len(chars)+1)
	for i, c := range chars {
		offsets[i+1] = offsets[i] + grapheme.UTF16Len(c)
	}
	return offsets
}

func containsStyle(list []InlineStyle, v InlineStyle) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// FromRaw builds a State from the exchange format. An empty block list
// yields an empty document.
func FromRaw(raw RawDraft, opt Options) (*State, error) {
	s := New(opt)
	blocks, err := s.decodeBlocks(raw)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		s.blocks = blocks
	}
	return s, nil
}

func (s *State) decodeBlocks(raw RawDraft) ([]Block, error) {
	out := make([]Block, 0, len(raw.Blocks))
	var keys []string
	for i, rb := range raw.Blocks {
		if rb.Depth < 0 {
			return nil, fmt.Errorf("%w: block %d has negative depth %d", ErrMalformed, i, rb.Depth)
		}
		depth := minInt(rb.Depth, MaxDepth)
		t := rb.Type
		if t == "" {
			t = Unstyled
		}
		key := rb.Key
		if key == "" || containsString(keys, key) {
			key = s.newKey(keys...)
		}
		keys = append(keys, key)

		chars := grapheme.Split(rb.Text)
		styles := make([]StyleSet, len(chars))
		offsets := utf16Offsets(chars)
		for _, rg := range rb.InlineStyleRanges {
			if rg.Offset < 0 || rg.Length < 0 || rg.Style == "" {
				return nil, fmt.Errorf("%w: block %d has invalid style range %+v", ErrMalformed, i, rg)
			}
			end := rg.Offset + rg.Length
			for ci := range chars {
				if offsets[ci] >= rg.Offset && offsets[ci] < end {
					styles[ci] = styles[ci].With(rg.Style)
				}
			}
		}

		var data map[string]any
		if len(rb.Data) > 0 {
			data = make(map[string]any, len(rb.Data))
			for k, v := range rb.Data {
				data[k] = v
			}
		}
		out = append(out, Block{Key: key, Type: t, Depth: depth, Data: data, chars: chars, styles: styles})
	}
	return out, nil
}

// Parse decodes serialized content into the exchange format.
func Parse(data []byte) (RawDraft, error) {
	var raw RawDraft
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawDraft{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Blocks == nil {
		return RawDraft{}, fmt.Errorf("%w: missing blocks", ErrMalformed)
	}
	return raw, nil
}

// Serialize encodes the document as exchange-format JSON.
func (s *State) Serialize() ([]byte, error) {
	data, err := json.Marshal(s.Raw())
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return data, nil
}

// Deserialize replaces the document with serialized content. On error the
// state is left untouched. History is cleared and the cursor moves to the
// start of the document.
func (s *State) Deserialize(data []byte) error {
	raw, err := Parse(data)
	if err != nil {
		return err
	}
	blocks, err := s.decodeBlocks(raw)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		blocks = []Block{{Key: s.newKey(), Type: Unstyled}}
	}
	s.replaceDocument(blocks)
	return nil
}

// Reset replaces the document with a single empty block.
func (s *State) Reset() {
	s.replaceDocument([]Block{{Key: s.newKey(), Type: Unstyled}})
}

func (s *State) replaceDocument(blocks []Block) {
	change := s.beginChange(ChangeReplace)
	s.blocks = blocks
	s.cursor = Pos{}
	s.sel = selectionState{}
	s.clearOverride()
	s.hist = historyState{}
	s.commit(change)
}
