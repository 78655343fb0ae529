package richtext

// ChangeKind classifies a content change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeSplit
	ChangeBlockType
	ChangeInlineStyle
	ChangeDepth
	ChangeUndo
	ChangeRedo
	ChangeReplace
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert-characters"
	case ChangeDelete:
		return "remove-range"
	case ChangeSplit:
		return "split-block"
	case ChangeBlockType:
		return "change-block-type"
	case ChangeInlineStyle:
		return "change-inline-style"
	case ChangeDepth:
		return "adjust-depth"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	case ChangeReplace:
		return "replace-document"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// Change describes the most recent effective content mutation.
type Change struct {
	Kind            ChangeKind
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
}

type changeBuilder struct {
	kind            ChangeKind
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
}

// LastChange returns the most recent effective content change.
func (s *State) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return s.lastChange, true
}

func (s *State) selectionState() SelectionState {
	r, ok := s.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (s *State) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:            kind,
		versionBefore:   s.version,
		cursorBefore:    s.cursor,
		selectionBefore: s.selectionState(),
	}
}

// commit bumps both version counters and records the change. Every content
// mutation goes through here exactly once.
func (s *State) commit(cb changeBuilder) {
	s.version++
	s.contentVersion++
	s.lastChange = Change{
		Kind:            cb.kind,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    s.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     s.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  s.selectionState(),
	}
	s.hasLastChange = true
}
