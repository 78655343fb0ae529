package editor

import "github.com/iw2rmb/notepad/richtext"

// ChangeEvent is delivered to Config.OnChange after every effective change,
// cursor moves included. ContentChanged tells content edits apart.
type ChangeEvent struct {
	Version        uint64
	ContentVersion uint64
	ContentChanged bool

	Cursor    richtext.Pos
	Selection struct {
		Range  richtext.Range
		Active bool
	}

	BlockType   richtext.BlockType
	InlineStyle richtext.StyleSet

	// Saved reports whether the change was written to the store.
	Saved bool
}

func buildChangeEvent(e Engine, contentChanged, saved bool) ChangeEvent {
	ev := ChangeEvent{
		Version:        e.Version(),
		ContentVersion: e.ContentVersion(),
		ContentChanged: contentChanged,
		Cursor:         e.Cursor(),
		BlockType:      currentBlockType(e),
		InlineStyle:    e.CurrentInlineStyle(),
		Saved:          saved,
	}
	if r, ok := e.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
