package editor

import (
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
	"github.com/iw2rmb/notepad/richtext"
)

// StyleDescriptor pairs a control label with the style it toggles.
type StyleDescriptor struct {
	Label string
	Style string
}

// BlockTypes lists the block-level controls in display order.
var BlockTypes = []StyleDescriptor{
	{Label: "P", Style: string(richtext.Paragraph)},
	{Label: "H1", Style: string(richtext.HeaderOne)},
	{Label: "H2", Style: string(richtext.HeaderTwo)},
	{Label: "H3", Style: string(richtext.HeaderThree)},
	{Label: "H4", Style: string(richtext.HeaderFour)},
	{Label: "H5", Style: string(richtext.HeaderFive)},
	{Label: "H6", Style: string(richtext.HeaderSix)},
	{Label: "Blockquote", Style: string(richtext.Blockquote)},
	{Label: "UL", Style: string(richtext.UnorderedListItem)},
	{Label: "OL", Style: string(richtext.OrderedListItem)},
	{Label: "Code Block", Style: string(richtext.CodeBlock)},
}

// InlineStyles lists the inline controls in display order.
var InlineStyles = []StyleDescriptor{
	{Label: "Bold", Style: string(richtext.Bold)},
	{Label: "Italic", Style: string(richtext.Italic)},
	{Label: "Underline", Style: string(richtext.Underline)},
	{Label: "Monospace", Style: string(richtext.Code)},
}

// Button is a stateless toggle control.
type Button struct {
	Label  string
	Active bool
	Style  string
}

// View renders the label, emphasized (bold and faint) when active.
func (b Button) View(th Theme) string {
	if b.Active {
		return th.ButtonActive.Render(b.Label)
	}
	return th.Button.Render(b.Label)
}

// Press invokes onToggle with the button's style identifier.
func (b Button) Press(onToggle func(style string)) {
	if onToggle != nil {
		onToggle(b.Style)
	}
}

func (b Button) width() int { return grapheme.Width(b.Label) }

type rowKind int

const (
	blockRow rowKind = iota
	inlineRow
)

// placedButton is a button at a fixed cell offset within its control row.
type placedButton struct {
	desc StyleDescriptor
	line int
	x    int
	w    int
}

// controlRow is the laid-out geometry of one control row. Positions depend
// only on the labels and the width, so they are computed on resize.
type controlRow struct {
	kind    rowKind
	width   int
	lines   int
	buttons []placedButton
}

// layoutRow distributes the descriptors space-evenly across width, wrapping
// onto more lines when they do not fit with at least one cell between them.
func layoutRow(kind rowKind, descs []StyleDescriptor, width int) controlRow {
	row := controlRow{kind: kind, width: width}
	if len(descs) == 0 {
		return row
	}
	if width < 1 {
		width = 1
	}

	var groups [][]StyleDescriptor
	var cur []StyleDescriptor
	used := 0
	for _, d := range descs {
		w := grapheme.Width(d.Label)
		// A line of k buttons needs k+1 gaps.
		if len(cur) > 0 && used+w+len(cur)+2 > width {
			groups = append(groups, cur)
			cur, used = nil, 0
		}
		cur = append(cur, d)
		used += w
	}
	groups = append(groups, cur)

	for li, g := range groups {
		widths := make([]int, len(g))
		total := 0
		for i, d := range g {
			widths[i] = grapheme.Width(d.Label)
			total += widths[i]
		}
		gaps := spaceEvenly(width-total, len(g)+1)
		x := 0
		for i, d := range g {
			x += gaps[i]
			row.buttons = append(row.buttons, placedButton{desc: d, line: li, x: x, w: widths[i]})
			x += widths[i]
		}
	}
	row.lines = len(groups)
	return row
}

// spaceEvenly splits free cells into n gaps, giving the remainder to the
// leading gaps.
func spaceEvenly(free, n int) []int {
	gaps := make([]int, n)
	if free <= 0 || n == 0 {
		return gaps
	}
	base, rem := free/n, free%n
	for i := range gaps {
		gaps[i] = base
		if i < rem {
			gaps[i]++
		}
	}
	return gaps
}

// render draws the row's button lines (without the row's margin and border).
func (r controlRow) render(th Theme, active func(style string) bool) string {
	lines := make([]strings.Builder, r.lines)
	pos := make([]int, r.lines)
	fill := th.Button
	for _, pb := range r.buttons {
		sb := &lines[pb.line]
		if gap := pb.x - pos[pb.line]; gap > 0 {
			sb.WriteString(fill.Render(strings.Repeat(" ", gap)))
		}
		btn := Button{Label: pb.desc.Label, Style: pb.desc.Style, Active: active(pb.desc.Style)}
		sb.WriteString(btn.View(th))
		pos[pb.line] = pb.x + pb.w
	}
	out := make([]string, r.lines)
	for i := range lines {
		if gap := r.width - pos[i]; gap > 0 {
			lines[i].WriteString(fill.Render(strings.Repeat(" ", gap)))
		}
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

// hit returns the button under the row-local cell (x, line).
func (r controlRow) hit(x, line int) (StyleDescriptor, bool) {
	for _, pb := range r.buttons {
		if pb.line == line && x >= pb.x && x < pb.x+pb.w {
			return pb.desc, true
		}
	}
	return StyleDescriptor{}, false
}

// view wraps the rendered buttons in the controls style.
func (r controlRow) view(th Theme, active func(style string) bool) string {
	return th.Controls.Width(r.width).Render(r.render(th, active))
}

// height is the number of rows the control row occupies, chrome included.
func (r controlRow) height(th Theme) int {
	return r.lines + th.Controls.GetVerticalFrameSize()
}

// origin is the offset of the first button line within the rendered row.
func (r controlRow) origin(th Theme) (x, y int) {
	st := th.Controls
	x = st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	y = st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
	return x, y
}
