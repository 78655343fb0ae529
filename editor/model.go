package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	applog "github.com/iw2rmb/notepad/internal/log"
	"github.com/iw2rmb/notepad/richtext"
	"github.com/iw2rmb/notepad/storage"
)

// Model is a Bubble Tea component that renders and edits one rich-text
// document: a block-style row, an inline-style row and the editing surface.
//
// The document lives in the Engine, so Model copies share it. Configuration
// is resolved once in New.
type Model struct {
	cfg   Config
	theme Theme
	keys  KeyMap
	eng   Engine
	log   *slog.Logger

	store storage.Store
	key   string

	focused bool

	// Host bounds from SetSize; zero means unbounded.
	hostWidth  int
	hostHeight int
	// Screen offset of the root container, for mouse coordinates.
	originX int
	originY int

	viewport viewport.Model
	cache    *layoutCache
	controls [2]controlRow

	mouseDragging bool
	mouseAnchor   richtext.Pos

	notice string

	lastVersion        uint64
	lastContentVersion uint64
}

// New resolves cfg, loads the stored document when persistence is enabled
// and returns a focused editor.
func New(cfg Config) Model {
	if cfg.TabDepth <= 0 {
		cfg.TabDepth = DefaultTabDepth
	}
	if cfg.IOTimeout <= 0 {
		cfg.IOTimeout = defaultIOTimeout
	}

	m := Model{
		cfg:      cfg,
		theme:    ResolveTheme(cfg),
		keys:     DefaultKeyMap(),
		eng:      cfg.Engine,
		log:      cfg.Logger,
		store:    cfg.Store,
		key:      storage.Key(cfg.DocumentID),
		focused:  true,
		viewport: viewport.New(0, 0),
		cache:    &layoutCache{},
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if m.log == nil {
		m.log = applog.WithComponent("editor")
	}
	if m.store == nil {
		m.store = storage.Default()
	}
	if m.eng == nil {
		m.eng = richtext.New(richtext.Options{HistoryLimit: cfg.HistoryLimit})
	}
	m.viewport.MouseWheelEnabled = m.theme.Overflow == OverflowAuto || m.theme.Overflow == OverflowScroll

	m.loadStored()
	m.lastVersion = m.eng.Version()
	m.lastContentVersion = m.eng.ContentVersion()

	m.relayout()
	return m
}

// Engine returns the editing engine holding the document.
func (m Model) Engine() Engine { return m.eng }

// Theme returns the resolved presentation.
func (m Model) Theme() Theme { return m.theme }

// StorageKey is the key the document is persisted under.
func (m Model) StorageKey() string { return m.key }

// Notice returns the pending non-fatal notice, if any.
func (m Model) Notice() string { return m.notice }

func (m Model) Init() tea.Cmd { return nil }

// SetSize bounds the editor by the host's available width and height.
func (m Model) SetSize(width, height int) Model {
	m.hostWidth = maxInt(width, 0)
	m.hostHeight = maxInt(height, 0)
	m.relayout()
	m.followCursor()
	return m
}

// SetOrigin records where the host draws the editor, so mouse events in
// screen coordinates map onto the component.
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ToggleBlockType applies the block-style toggle to the current selection.
func (m Model) ToggleBlockType(t richtext.BlockType) Model {
	if m.cfg.ReadOnly {
		return m
	}
	m.eng.ToggleBlockType(t)
	m.syncFromEngine()
	return m
}

// ToggleInlineStyle applies the inline-style toggle to the current selection.
func (m Model) ToggleInlineStyle(s richtext.InlineStyle) Model {
	if m.cfg.ReadOnly {
		return m
	}
	m.eng.ToggleInlineStyle(s)
	m.syncFromEngine()
	return m
}

// HandleKeyCommand resolves cmd through the engine's formatting rules and
// reports whether it was consumed.
func (m Model) HandleKeyCommand(cmd richtext.Command) (Model, bool) {
	if m.cfg.ReadOnly && cmd.Mutates() {
		return m, false
	}
	handled := m.eng.HandleKeyCommand(cmd)
	m.syncFromEngine()
	return m, handled
}

// Update handles key, mouse and window size messages. Every effective change
// is persisted and reported before Update returns.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// The host may also drive the engine directly between messages.
	m.syncFromEngine()
	return m, cmd
}

// syncFromEngine persists and reports a change once per engine version.
func (m *Model) syncFromEngine() {
	ver := m.eng.Version()
	if ver == m.lastVersion {
		return
	}
	cv := m.eng.ContentVersion()
	contentChanged := cv != m.lastContentVersion
	m.lastVersion = ver
	m.lastContentVersion = cv

	saved := false
	if contentChanged {
		saved = m.persist()
	}
	m.rebuildContent()
	m.followCursor()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.eng, contentChanged, saved))
	}
}

// rootWidth is the content width of the root container.
func (m Model) rootWidth() int {
	w := m.theme.Width
	if m.hostWidth > 0 {
		w = minInt(w, m.hostWidth-m.theme.chromeWidth())
	}
	return maxInt(w, 1)
}

// textWidth is the width of the editing surface inside its padding.
func (m Model) textWidth() int {
	return maxInt(m.rootWidth()-m.theme.EditorPadding.horizontal(), 1)
}

// relayout recomputes control rows and the surface after a size change.
func (m *Model) relayout() {
	cw := maxInt(m.rootWidth()-m.theme.ControlsMargin.horizontal(), 1)
	m.controls[0] = layoutRow(blockRow, BlockTypes, cw)
	m.controls[1] = layoutRow(inlineRow, InlineStyles, cw)
	m.rebuildContent()
}

func (m *Model) layout() surfaceLayout {
	key := layoutKey{contentVersion: m.eng.ContentVersion(), width: m.textWidth()}
	if m.cache.valid && m.cache.key == key {
		return m.cache.layout
	}
	l := buildLayout(m.eng.Blocks(), key.width, m.theme.EditorAlignText)
	m.cache.key = key
	m.cache.layout = l
	m.cache.valid = true
	return l
}

// surfaceHeight is the number of text rows the surface shows.
func (m *Model) surfaceHeight() int {
	th := m.theme
	rows := len(m.layout().rows)

	h := th.EditorHeight
	if h <= 0 {
		h = maxInt(rows, th.EditorMinHeight)
		if th.Overflow != OverflowVisible {
			h = minInt(h, th.EditorMaxHeight)
		}
	}
	if m.hostHeight > 0 {
		avail := m.hostHeight - th.Root.GetVerticalFrameSize() - th.Surface.GetVerticalFrameSize() -
			m.controls[0].height(th) - m.controls[1].height(th)
		if avail >= 1 {
			h = minInt(h, avail)
		}
	}
	return maxInt(h, 1)
}

func (m *Model) rebuildContent() {
	m.viewport.Width = m.textWidth()
	m.viewport.Height = m.surfaceHeight()
	m.viewport.SetContent(m.renderContent())
}

// followCursor keeps the cursor row inside the visible surface.
func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row, _ := m.layout().rowForPos(m.eng.Cursor())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
