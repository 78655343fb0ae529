package editor

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/notepad/richtext"
	"github.com/iw2rmb/notepad/storage"
)

// Documented defaults. Dimensions are terminal cells.
const (
	DefaultWidth           = 60
	DefaultBgColor         = lipgloss.Color("#ffffff")
	DefaultColor           = lipgloss.Color("#000000")
	DefaultBorderRadius    = 5
	DefaultOverflow        = OverflowAuto
	DefaultEditorMinHeight = 10
	DefaultEditorMaxHeight = 28
	DefaultEditorAlign     = AlignLeft
	DefaultControlsColor   = lipgloss.Color("#000000")
	DefaultControlsPadding = 0
	DefaultTabDepth        = 4

	defaultIOTimeout = 2 * time.Second
)

var (
	DefaultBorder         = BorderDescriptor{Size: 1, Style: BorderSolid, Color: "#000000"}
	DefaultControlsBorder = BorderDescriptor{Size: 1, Style: BorderSolid, Color: "#6c757c"}
	DefaultEditorPadding  = Spacing{Top: 1, Right: 2, Bottom: 1, Left: 2}
	DefaultControlsMargin = Spacing{Top: 1, Right: 2, Bottom: 0, Left: 2}
)

// Config configures the editor Model. Every field is optional; zero values
// select the documented default. The configuration is resolved once in New
// and never consulted again.
type Config struct {
	// Root container.
	Width        int            // content width of the root container
	BgColor      lipgloss.Color // background
	Color        lipgloss.Color // text color
	Border       *BorderDescriptor
	BorderRadius *int // > 0 selects rounded corners
	Overflow     Overflow
	// ShowBorder hides the root border only when explicitly false.
	ShowBorder *bool

	// Editing surface. Heights count text rows and exclude padding.
	EditorHeight    int // 0 sizes the surface to its content
	EditorMinHeight int
	EditorMaxHeight int
	EditorPadding   *Spacing
	EditorAlignText Align

	// Control rows.
	ControlsColor   lipgloss.Color
	ControlsBorder  *BorderDescriptor
	ControlsMargin  *Spacing
	ControlsPadding int // rows between the buttons and the row border

	// Persistence.
	UseLocalStorage bool
	DocumentID      string
	Store           storage.Store // nil means storage.Default()
	SavePolicy      SavePolicy
	IOTimeout       time.Duration

	// Engine owns content, selection and command resolution. Nil means a
	// richtext.State with HistoryLimit.
	Engine       Engine
	HistoryLimit int

	KeyMap *KeyMap
	// KeyBindingFn is consulted before KeyMap. Returning false defers to the
	// default key bindings.
	KeyBindingFn func(tea.KeyMsg) (richtext.Command, bool)
	// BlockStyleFn assigns a style class to a block; ClassStyles maps classes
	// to styles, merged over the built-in classes.
	BlockStyleFn func(richtext.Block) string
	ClassStyles  map[string]lipgloss.Style
	// CustomStyleMap is merged over DefaultStyleMap.
	CustomStyleMap map[richtext.InlineStyle]lipgloss.Style

	TabDepth int
	ReadOnly bool

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	OnChange    func(ChangeEvent)
	OnSaveError func(error)

	Logger   *slog.Logger
	Renderer *lipgloss.Renderer
}

// Bool returns a pointer to v, for optional Config fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional Config fields.
func Int(v int) *int { return &v }

// SavePolicy decides whether content changes are written to the store.
type SavePolicy int

const (
	// SaveWhenEnabled writes only when UseLocalStorage is set.
	SaveWhenEnabled SavePolicy = iota
	// SaveAlways writes on every change regardless of UseLocalStorage.
	SaveAlways
	// SaveNever disables writes; stored content may still be loaded.
	SaveNever
)

func (p SavePolicy) String() string {
	switch p {
	case SaveWhenEnabled:
		return "when-enabled"
	case SaveAlways:
		return "always"
	case SaveNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseSavePolicy accepts the names produced by SavePolicy.String.
func ParseSavePolicy(s string) (SavePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "when-enabled", "enabled":
		return SaveWhenEnabled, nil
	case "always":
		return SaveAlways, nil
	case "never":
		return SaveNever, nil
	default:
		return SaveWhenEnabled, fmt.Errorf("invalid save policy %q: must be one of when-enabled, always, never", s)
	}
}

func (p SavePolicy) shouldSave(useLocalStorage bool) bool {
	switch p {
	case SaveAlways:
		return true
	case SaveNever:
		return false
	default:
		return useLocalStorage
	}
}

// Overflow controls what happens to content taller than the surface.
type Overflow string

const (
	OverflowAuto    Overflow = "auto"    // scroll, wheel enabled
	OverflowScroll  Overflow = "scroll"  // same as auto
	OverflowHidden  Overflow = "hidden"  // clip; only the cursor scrolls
	OverflowVisible Overflow = "visible" // grow past the max height
)

// Align is the horizontal text alignment of the editing surface.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify" // rendered as left
)

func (a Align) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Border styles understood by BorderDescriptor.
const (
	BorderSolid  = "solid"
	BorderDouble = "double"
	BorderThick  = "thick"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
	BorderHidden = "hidden"
	BorderNone   = "none"
)

// BorderDescriptor is a {size, style, color} border triple.
type BorderDescriptor struct {
	Size  int
	Style string
	Color lipgloss.Color
}

// Declaration composes the descriptor into one "size style color" string.
func (b BorderDescriptor) Declaration() string {
	return strings.TrimSpace(fmt.Sprintf("%d %s %s", b.Size, b.Style, b.Color))
}

// Visible reports whether the border occupies cells.
func (b BorderDescriptor) Visible() bool {
	return b.Size > 0 && b.Style != BorderNone
}

// ParseBorder parses a "size style color" declaration. Missing parts take
// the values from def.
func ParseBorder(s string, def BorderDescriptor) (BorderDescriptor, error) {
	out := def
	fields := strings.Fields(s)
	if len(fields) > 3 {
		return def, fmt.Errorf("invalid border %q: want \"size style color\"", s)
	}
	for _, f := range fields {
		switch {
		case isBorderStyle(f):
			out.Style = strings.ToLower(f)
		case isSize(f):
			n, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
			if err != nil {
				return def, fmt.Errorf("invalid border size %q", f)
			}
			out.Size = n
		default:
			out.Color = lipgloss.Color(f)
		}
	}
	return out, nil
}

func isBorderStyle(s string) bool {
	switch strings.ToLower(s) {
	case BorderSolid, BorderDouble, BorderThick, BorderDashed, BorderDotted, BorderHidden, BorderNone:
		return true
	}
	return false
}

func isSize(s string) bool {
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// lipglossBorder selects the lipgloss border set for the descriptor.
func (b BorderDescriptor) lipglossBorder(radius int) lipgloss.Border {
	switch b.Style {
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderHidden:
		return lipgloss.HiddenBorder()
	}
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// Spacing is a CSS-style box of cell counts.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// ParseSpacing accepts one to four space-separated values with CSS
// shorthand semantics ("1", "1 2", "1 2 0", "1 2 0 2").
func ParseSpacing(s string) (Spacing, error) {
	fields := strings.Fields(s)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
		if err != nil || n < 0 {
			return Spacing{}, fmt.Errorf("invalid spacing value %q in %q", f, s)
		}
		vals = append(vals, n)
	}
	switch len(vals) {
	case 1:
		return Spacing{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Spacing{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Spacing{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return Spacing{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return Spacing{}, fmt.Errorf("invalid spacing %q: want 1 to 4 values", s)
	}
}

func (s Spacing) String() string {
	return fmt.Sprintf("%d %d %d %d", s.Top, s.Right, s.Bottom, s.Left)
}

func (s Spacing) horizontal() int { return s.Left + s.Right }
