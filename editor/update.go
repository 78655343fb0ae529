package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/notepad/richtext"
)

// MapKeyToCommand resolves a key to an editor command. Config.KeyBindingFn
// is consulted first; the KeyMap decides otherwise. Tab and Shift+Tab map to
// list indentation and never move focus.
func (m Model) MapKeyToCommand(msg tea.KeyMsg) (richtext.Command, bool) {
	if m.cfg.KeyBindingFn != nil {
		if cmd, ok := m.cfg.KeyBindingFn(msg); ok {
			return cmd, true
		}
	}
	return m.keys.lookup(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.eng.InsertText(string(msg.Runes))
		}
		return m, nil
	}

	if cmd, ok := m.MapKeyToCommand(msg); ok {
		m.runCommand(cmd)
		return m, nil
	}

	if m.cfg.ReadOnly {
		return m, nil
	}
	switch {
	case msg.Type == tea.KeySpace:
		m.eng.InsertText(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.eng.InsertText(string(msg.Runes))
	}
	return m, nil
}

// runCommand resolves cmd through HandleKeyCommand and falls back to the
// engine's default behavior when it is not consumed.
func (m Model) runCommand(cmd richtext.Command) {
	switch cmd {
	case commandIndent, commandOutdent:
		if !m.cfg.ReadOnly {
			m.eng.OnTab(cmd == commandOutdent, m.cfg.TabDepth)
		}
	case commandCopy:
		m.copySelection()
	case commandCut:
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
	case commandPaste:
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}
	default:
		if m.cfg.ReadOnly && cmd.Mutates() {
			return
		}
		if !m.eng.HandleKeyCommand(cmd) {
			m.eng.Execute(cmd)
		}
	}
}
