package editor

import "github.com/iw2rmb/notepad/richtext"

// Engine is the editing capability the widget depends on: content, selection,
// current styles, block lookup, command dispatch and serialization. The
// widget never reaches past this interface.
type Engine interface {
	// Version changes on every effective mutation, cursor moves included.
	// ContentVersion changes only when content changes.
	Version() uint64
	ContentVersion() uint64

	Blocks() []richtext.Block
	BlockForKey(key string) (richtext.Block, bool)
	StartKey() string
	CurrentInlineStyle() richtext.StyleSet

	Cursor() richtext.Pos
	Selection() (richtext.Range, bool)
	SelectionRaw() (richtext.Range, bool)
	SetCursor(p richtext.Pos)
	SetSelection(r richtext.Range)

	InsertText(text string) bool
	ToggleBlockType(t richtext.BlockType) bool
	ToggleInlineStyle(s richtext.InlineStyle) bool
	OnTab(shift bool, maxDepth int) bool
	// HandleKeyCommand resolves formatting commands and reports whether the
	// command was consumed. Execute runs a command's default behavior.
	HandleKeyCommand(cmd richtext.Command) bool
	Execute(cmd richtext.Command) bool

	Serialize() ([]byte, error)
	Deserialize(data []byte) error
}

var _ Engine = (*richtext.State)(nil)

// currentBlockType resolves the type of the block holding the selection start.
func currentBlockType(e Engine) richtext.BlockType {
	b, ok := e.BlockForKey(e.StartKey())
	if !ok {
		return richtext.Unstyled
	}
	return b.Type
}
