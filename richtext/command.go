package richtext

// Command names an editing command produced by a key binding.
type Command string

const (
	CommandBold          Command = "bold"
	CommandItalic        Command = "italic"
	CommandUnderline     Command = "underline"
	CommandCode          Command = "code"
	CommandStrikethrough Command = "strikethrough"

	CommandSplitBlock             Command = "split-block"
	CommandBackspace              Command = "backspace"
	CommandBackspaceWord          Command = "backspace-word"
	CommandBackspaceToStartOfLine Command = "backspace-to-start-of-line"
	CommandDelete                 Command = "delete"
	CommandDeleteWord             Command = "delete-word"

	CommandUndo      Command = "undo"
	CommandRedo      Command = "redo"
	CommandSelectAll Command = "select-all"

	CommandMoveLeft      Command = "move-left"
	CommandMoveRight     Command = "move-right"
	CommandMoveUp        Command = "move-up"
	CommandMoveDown      Command = "move-down"
	CommandMoveWordLeft  Command = "move-word-left"
	CommandMoveWordRight Command = "move-word-right"
	CommandMoveHome      Command = "move-home"
	CommandMoveEnd       Command = "move-end"
	CommandMoveDocStart  Command = "move-doc-start"
	CommandMoveDocEnd    Command = "move-doc-end"

	CommandSelectLeft      Command = "select-left"
	CommandSelectRight     Command = "select-right"
	CommandSelectUp        Command = "select-up"
	CommandSelectDown      Command = "select-down"
	CommandSelectWordLeft  Command = "select-word-left"
	CommandSelectWordRight Command = "select-word-right"
	CommandSelectHome      Command = "select-home"
	CommandSelectEnd       Command = "select-end"
)

var moveCommands = map[Command]Move{
	CommandMoveLeft:      {Unit: MoveGrapheme, Dir: DirLeft},
	CommandMoveRight:     {Unit: MoveGrapheme, Dir: DirRight},
	CommandMoveUp:        {Unit: MoveBlock, Dir: DirUp},
	CommandMoveDown:      {Unit: MoveBlock, Dir: DirDown},
	CommandMoveWordLeft:  {Unit: MoveWord, Dir: DirLeft},
	CommandMoveWordRight: {Unit: MoveWord, Dir: DirRight},
	CommandMoveHome:      {Unit: MoveBlock, Dir: DirHome},
	CommandMoveEnd:       {Unit: MoveBlock, Dir: DirEnd},
	CommandMoveDocStart:  {Unit: MoveDoc, Dir: DirHome},
	CommandMoveDocEnd:    {Unit: MoveDoc, Dir: DirEnd},

	CommandSelectLeft:      {Unit: MoveGrapheme, Dir: DirLeft, Extend: true},
	CommandSelectRight:     {Unit: MoveGrapheme, Dir: DirRight, Extend: true},
	CommandSelectUp:        {Unit: MoveBlock, Dir: DirUp, Extend: true},
	CommandSelectDown:      {Unit: MoveBlock, Dir: DirDown, Extend: true},
	CommandSelectWordLeft:  {Unit: MoveWord, Dir: DirLeft, Extend: true},
	CommandSelectWordRight: {Unit: MoveWord, Dir: DirRight, Extend: true},
	CommandSelectHome:      {Unit: MoveBlock, Dir: DirHome, Extend: true},
	CommandSelectEnd:       {Unit: MoveBlock, Dir: DirEnd, Extend: true},
}

var styleCommands = map[Command]InlineStyle{
	CommandBold:          Bold,
	CommandItalic:        Italic,
	CommandUnderline:     Underline,
	CommandCode:          Code,
	CommandStrikethrough: Strikethrough,
}

// Mutates reports whether the command can change document content. Read-only
// hosts drop these.
func (c Command) Mutates() bool {
	if _, ok := moveCommands[c]; ok {
		return false
	}
	return c != CommandSelectAll
}

// HandleKeyCommand resolves the formatting commands and the block-level
// special cases of editing commands. It returns false when the command was
// not consumed; callers then fall back to Execute. Formatting commands are
// always consumed, even when the toggle leaves the document unchanged.
func (s *State) HandleKeyCommand(cmd Command) bool {
	if style, ok := styleCommands[cmd]; ok {
		s.ToggleInlineStyle(style)
		return true
	}
	switch cmd {
	case CommandBackspace, CommandBackspaceWord, CommandBackspaceToStartOfLine:
		return s.tryToRemoveBlockStyle()
	case CommandSplitBlock:
		return s.tryToExitEmptyBlock()
	default:
		return false
	}
}

// Execute runs the default behavior of an editing command and reports
// whether anything changed. Formatting commands have no default behavior.
func (s *State) Execute(cmd Command) bool {
	if mv, ok := moveCommands[cmd]; ok {
		return s.Move(mv)
	}
	switch cmd {
	case CommandSplitBlock:
		return s.SplitBlock()
	case CommandBackspace:
		return s.DeleteBackward()
	case CommandBackspaceWord:
		return s.DeleteWordBackward()
	case CommandBackspaceToStartOfLine:
		return s.DeleteToLineStart()
	case CommandDelete:
		return s.DeleteForward()
	case CommandDeleteWord:
		return s.DeleteWordForward()
	case CommandUndo:
		return s.Undo()
	case CommandRedo:
		return s.Redo()
	case CommandSelectAll:
		before := s.version
		s.SelectAll()
		return s.version != before
	default:
		return false
	}
}
