package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/richtext"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks). ctrl+i is
// indistinguishable from Tab, so italic lives on alt+i.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, BackspaceWord, BackspaceLine key.Binding
	Delete, DeleteWord                      key.Binding
	Enter                                   key.Binding

	Undo, Redo, SelectAll key.Binding
	Copy, Cut, Paste      key.Binding

	Bold, Italic, Underline, Code, Strikethrough key.Binding

	Indent, Outdent key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("alt+shift+left", "ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("alt+shift+right", "ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "block start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "block end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to block start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to block end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		BackspaceWord: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word left")),
		BackspaceLine: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to block start")),
		Delete:        key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		DeleteWord:    key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete word right")),
		Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split block")),

		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline:     key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underline")),
		Code:          key.NewBinding(key.WithKeys("alt+c", "alt+j"), key.WithHelp("alt+c", "monospace")),
		Strikethrough: key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "strikethrough")),

		Indent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent list item")),
		Outdent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent list item")),
	}
}

// Commands that never reach the engine; the model handles them itself.
const (
	commandIndent  richtext.Command = "indent"
	commandOutdent richtext.Command = "outdent"
	commandCopy    richtext.Command = "copy"
	commandCut     richtext.Command = "cut"
	commandPaste   richtext.Command = "paste"
)

// commands lists bindings in match order.
func (km KeyMap) commands() []struct {
	b   key.Binding
	cmd richtext.Command
} {
	return []struct {
		b   key.Binding
		cmd richtext.Command
	}{
		{km.Indent, commandIndent},
		{km.Outdent, commandOutdent},

		{km.Bold, richtext.CommandBold},
		{km.Italic, richtext.CommandItalic},
		{km.Underline, richtext.CommandUnderline},
		{km.Code, richtext.CommandCode},
		{km.Strikethrough, richtext.CommandStrikethrough},

		{km.ShiftWordLeft, richtext.CommandSelectWordLeft},
		{km.ShiftWordRight, richtext.CommandSelectWordRight},
		{km.WordLeft, richtext.CommandMoveWordLeft},
		{km.WordRight, richtext.CommandMoveWordRight},
		{km.ShiftLeft, richtext.CommandSelectLeft},
		{km.ShiftRight, richtext.CommandSelectRight},
		{km.ShiftUp, richtext.CommandSelectUp},
		{km.ShiftDown, richtext.CommandSelectDown},
		{km.ShiftHome, richtext.CommandSelectHome},
		{km.ShiftEnd, richtext.CommandSelectEnd},
		{km.DocStart, richtext.CommandMoveDocStart},
		{km.DocEnd, richtext.CommandMoveDocEnd},
		{km.Left, richtext.CommandMoveLeft},
		{km.Right, richtext.CommandMoveRight},
		{km.Up, richtext.CommandMoveUp},
		{km.Down, richtext.CommandMoveDown},
		{km.Home, richtext.CommandMoveHome},
		{km.End, richtext.CommandMoveEnd},

		{km.BackspaceWord, richtext.CommandBackspaceWord},
		{km.BackspaceLine, richtext.CommandBackspaceToStartOfLine},
		{km.Backspace, richtext.CommandBackspace},
		{km.DeleteWord, richtext.CommandDeleteWord},
		{km.Delete, richtext.CommandDelete},
		{km.Enter, richtext.CommandSplitBlock},

		{km.Undo, richtext.CommandUndo},
		{km.Redo, richtext.CommandRedo},
		{km.SelectAll, richtext.CommandSelectAll},

		{km.Copy, commandCopy},
		{km.Cut, commandCut},
		{km.Paste, commandPaste},
	}
}

// lookup maps a key to the command bound to it.
func (km KeyMap) lookup(msg tea.KeyMsg) (richtext.Command, bool) {
	for _, c := range km.commands() {
		if key.Matches(msg, c.b) {
			return c.cmd, true
		}
	}
	return "", false
}
