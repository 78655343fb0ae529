package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/notepad/richtext"
)

// BlockquoteClass is the style class DefaultBlockStyle gives blockquotes.
const BlockquoteClass = "notepad-blockquote"

// DefaultBlockStyle gives blockquote blocks BlockquoteClass and every other
// block no class.
func DefaultBlockStyle(b richtext.Block) string {
	if b.Type == richtext.Blockquote {
		return BlockquoteClass
	}
	return ""
}

// DefaultStyleMap renders CODE as monospace text on a subtle background. The
// terminal is already monospace, so the background carries the distinction.
func DefaultStyleMap(r *lipgloss.Renderer) map[richtext.InlineStyle]lipgloss.Style {
	return map[richtext.InlineStyle]lipgloss.Style{
		richtext.Code: r.NewStyle().Background(lipgloss.Color("#f2f2f2")),
	}
}

// Theme is the fully resolved presentation of one editor. It is computed once
// from Config and is immutable afterwards.
type Theme struct {
	Width        int
	BgColor      lipgloss.Color
	Color        lipgloss.Color
	Border       BorderDescriptor
	BorderRadius int
	Overflow     Overflow
	ShowBorder   bool

	EditorHeight    int
	EditorMinHeight int
	EditorMaxHeight int
	EditorPadding   Spacing
	EditorAlignText Align

	ControlsColor   lipgloss.Color
	ControlsBorder  BorderDescriptor
	ControlsMargin  Spacing
	ControlsPadding int

	Root         lipgloss.Style
	Controls     lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Surface      lipgloss.Style
	Text         lipgloss.Style
	Cursor       lipgloss.Style
	Selection    lipgloss.Style
	Marker       lipgloss.Style
	CodeBlock    lipgloss.Style
	Notice       lipgloss.Style
	Headers      [6]lipgloss.Style
	Classes      map[string]lipgloss.Style
	Inline       map[richtext.InlineStyle]lipgloss.Style

	blockStyleFn func(richtext.Block) string
	renderer     *lipgloss.Renderer
}

// ResolveTheme applies the documented defaults to cfg.
func ResolveTheme(cfg Config) Theme {
	r := cfg.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	th := Theme{
		Width:           orInt(cfg.Width, DefaultWidth),
		BgColor:         orColor(cfg.BgColor, DefaultBgColor),
		Color:           orColor(cfg.Color, DefaultColor),
		Border:          DefaultBorder,
		BorderRadius:    DefaultBorderRadius,
		Overflow:        DefaultOverflow,
		ShowBorder:      cfg.ShowBorder == nil || *cfg.ShowBorder,
		EditorHeight:    cfg.EditorHeight,
		EditorMinHeight: orInt(cfg.EditorMinHeight, DefaultEditorMinHeight),
		EditorMaxHeight: orInt(cfg.EditorMaxHeight, DefaultEditorMaxHeight),
		EditorPadding:   DefaultEditorPadding,
		EditorAlignText: DefaultEditorAlign,
		ControlsColor:   orColor(cfg.ControlsColor, DefaultControlsColor),
		ControlsBorder:  DefaultControlsBorder,
		ControlsMargin:  DefaultControlsMargin,
		ControlsPadding: DefaultControlsPadding,
		blockStyleFn:    cfg.BlockStyleFn,
		renderer:        r,
	}
	if cfg.Border != nil {
		th.Border = *cfg.Border
	}
	if cfg.BorderRadius != nil {
		th.BorderRadius = *cfg.BorderRadius
	}
	switch cfg.Overflow {
	case OverflowAuto, OverflowScroll, OverflowHidden, OverflowVisible:
		th.Overflow = cfg.Overflow
	}
	if cfg.EditorPadding != nil {
		th.EditorPadding = *cfg.EditorPadding
	}
	switch cfg.EditorAlignText {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		th.EditorAlignText = cfg.EditorAlignText
	}
	if cfg.ControlsBorder != nil {
		th.ControlsBorder = *cfg.ControlsBorder
	}
	if cfg.ControlsMargin != nil {
		th.ControlsMargin = *cfg.ControlsMargin
	}
	if cfg.ControlsPadding > 0 {
		th.ControlsPadding = cfg.ControlsPadding
	}
	if th.EditorMaxHeight < th.EditorMinHeight {
		th.EditorMaxHeight = th.EditorMinHeight
	}
	if th.blockStyleFn == nil {
		th.blockStyleFn = DefaultBlockStyle
	}

	base := r.NewStyle().Foreground(th.Color).Background(th.BgColor)
	th.Text = base
	th.Root = r.NewStyle().Foreground(th.Color).Background(th.BgColor)
	if th.ShowBorder && th.Border.Visible() {
		th.Root = th.Root.
			Border(th.Border.lipglossBorder(th.BorderRadius)).
			BorderForeground(th.Border.Color).
			BorderBackground(th.BgColor)
	}

	th.Controls = r.NewStyle().
		Foreground(th.ControlsColor).
		Background(th.BgColor).
		Margin(th.ControlsMargin.Top, th.ControlsMargin.Right, th.ControlsMargin.Bottom, th.ControlsMargin.Left).
		MarginBackground(th.BgColor).
		PaddingBottom(th.ControlsPadding)
	if th.ControlsBorder.Visible() {
		th.Controls = th.Controls.
			Border(th.ControlsBorder.lipglossBorder(0), false, false, true, false).
			BorderForeground(th.ControlsBorder.Color).
			BorderBackground(th.BgColor)
	}
	th.Button = r.NewStyle().Foreground(th.ControlsColor).Background(th.BgColor)
	th.ButtonActive = th.Button.Bold(true).Faint(true)

	p := th.EditorPadding
	th.Surface = r.NewStyle().
		Background(th.BgColor).
		Padding(p.Top, p.Right, p.Bottom, p.Left)

	th.Cursor = r.NewStyle().Reverse(true)
	th.Selection = r.NewStyle().Background(lipgloss.Color("#b4d5fe"))
	th.Marker = base
	th.CodeBlock = base.Background(lipgloss.Color("#f2f2f2"))
	th.Notice = r.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#b00020")).
		Padding(0, 1)

	th.Headers = [6]lipgloss.Style{
		base.Bold(true).Underline(true),
		base.Bold(true),
		base.Bold(true),
		base.Bold(true).Italic(true),
		base.Italic(true),
		base.Italic(true).Faint(true),
	}

	th.Classes = map[string]lipgloss.Style{
		BlockquoteClass: base.Foreground(lipgloss.Color("#666666")).Italic(true),
	}
	for k, v := range cfg.ClassStyles {
		th.Classes[k] = v
	}

	th.Inline = map[richtext.InlineStyle]lipgloss.Style{
		richtext.Bold:          r.NewStyle().Bold(true),
		richtext.Italic:        r.NewStyle().Italic(true),
		richtext.Underline:     r.NewStyle().Underline(true),
		richtext.Strikethrough: r.NewStyle().Strikethrough(true),
	}
	for k, v := range DefaultStyleMap(r) {
		th.Inline[k] = v
	}
	for k, v := range cfg.CustomStyleMap {
		th.Inline[k] = v
	}
	return th
}

// BlockStyle returns the style class of b.
func (th Theme) BlockStyle(b richtext.Block) string {
	if th.blockStyleFn == nil {
		return DefaultBlockStyle(b)
	}
	return th.blockStyleFn(b)
}

// blockBase returns the text style of a block before inline styles apply.
func (th Theme) blockBase(b richtext.Block) lipgloss.Style {
	st := th.Text
	if lvl := b.Type.HeaderLevel(); lvl > 0 {
		st = th.Headers[lvl-1]
	} else if b.Type == richtext.CodeBlock {
		st = th.CodeBlock
	}
	if class := th.BlockStyle(b); class != "" {
		if cs, ok := th.Classes[class]; ok {
			st = cs.Inherit(st)
		}
	}
	return st
}

// inlineStyle layers the style of every inline style in set over base.
func (th Theme) inlineStyle(base lipgloss.Style, set richtext.StyleSet) lipgloss.Style {
	st := base
	for _, s := range set {
		if is, ok := th.Inline[s]; ok {
			st = is.Inherit(st)
		}
	}
	return st
}

// chromeWidth is the number of columns the root border adds.
func (th Theme) chromeWidth() int {
	return th.Root.GetHorizontalFrameSize()
}

func orInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orColor(v, def lipgloss.Color) lipgloss.Color {
	if v == "" {
		return def
	}
	return v
}
