package editor

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/notepad/internal/grapheme"
	"github.com/iw2rmb/notepad/richtext"
)

var bulletMarkers = []string{"•", "◦", "▪"}

const quoteMarker = "│"

// visualRow is one rendered line of the editing surface.
type visualRow struct {
	block      int
	start, end int // grapheme cols [start, end)
	first      bool
	last       bool

	indent int    // cells before the text, marker included
	marker string // drawn on the block's first row only
	shift  int    // alignment offset
}

// surfaceLayout maps blocks onto wrapped surface rows.
type surfaceLayout struct {
	width    int
	rows     []visualRow
	firstRow []int
	units    [][]wrapUnit
}

type layoutKey struct {
	contentVersion uint64
	width          int
}

// layoutCache is shared between Model copies; the key makes reuse safe.
type layoutCache struct {
	key    layoutKey
	valid  bool
	layout surfaceLayout
}

// buildLayout wraps every block to width cells. One column stays free for
// the cursor at the end of a row.
func buildLayout(blocks []richtext.Block, width int, align Align) surfaceLayout {
	l := surfaceLayout{
		width:    width,
		firstRow: make([]int, len(blocks)),
		units:    make([][]wrapUnit, len(blocks)),
	}
	avail := maxInt(width-1, 1)
	markers := listMarkers(blocks)

	for i, b := range blocks {
		l.firstRow[i] = len(l.rows)
		units := wrapUnitsForClusters(b.Clusters())
		l.units[i] = units

		marker := markers[i]
		indent := 0
		if b.Type.IsList() {
			indent = 2 * b.Depth
		}
		if marker != "" {
			indent += grapheme.Width(marker) + 1
		}
		textW := maxInt(avail-indent, 1)

		segs := wrapClusters(units, textW)
		for si, seg := range segs {
			row := visualRow{
				block:  i,
				start:  seg[0],
				end:    seg[1],
				first:  si == 0,
				last:   si == len(segs)-1,
				indent: indent,
			}
			if si == 0 {
				row.marker = marker
			}
			row.shift = alignShift(align, avail, indent+unitsWidth(units[seg[0]:seg[1]]))
			l.rows = append(l.rows, row)
		}
	}
	return l
}

// listMarkers numbers ordered items per depth. A run of list items keeps its
// counters; any other block resets them.
func listMarkers(blocks []richtext.Block) []string {
	out := make([]string, len(blocks))
	var counters [richtext.MaxDepth + 1]int
	for i, b := range blocks {
		d := clampInt(b.Depth, 0, richtext.MaxDepth)
		switch b.Type {
		case richtext.OrderedListItem:
			counters[d]++
			for j := d + 1; j < len(counters); j++ {
				counters[j] = 0
			}
			out[i] = strconv.Itoa(counters[d]) + "."
		case richtext.UnorderedListItem:
			for j := d; j < len(counters); j++ {
				counters[j] = 0
			}
			out[i] = bulletMarkers[d%len(bulletMarkers)]
		case richtext.Blockquote:
			counters = [richtext.MaxDepth + 1]int{}
			out[i] = quoteMarker
		default:
			counters = [richtext.MaxDepth + 1]int{}
		}
	}
	return out
}

func alignShift(align Align, avail, used int) int {
	free := avail - used
	if free <= 0 {
		return 0
	}
	switch align {
	case AlignCenter:
		return free / 2
	case AlignRight:
		return free
	default:
		return 0
	}
}

func unitsWidth(units []wrapUnit) int {
	w := 0
	for _, u := range units {
		w += u.width
	}
	return w
}

// rowForPos returns the surface row showing p and the cell of p within it.
// A position at a wrap boundary belongs to the following row.
func (l surfaceLayout) rowForPos(p richtext.Pos) (row, x int) {
	if len(l.rows) == 0 || len(l.firstRow) == 0 {
		return 0, 0
	}
	b := clampInt(p.Row, 0, len(l.firstRow)-1)
	row = l.firstRow[b]
	for row < len(l.rows)-1 && l.rows[row].block == b && !l.rows[row].last && p.Col >= l.rows[row].end {
		row++
	}
	vr := l.rows[row]
	col := clampInt(p.Col, vr.start, vr.end)
	x = vr.shift + vr.indent + unitsWidth(l.units[b][vr.start:col])
	return row, x
}

// posAt maps a surface cell to the nearest document position.
func (l surfaceLayout) posAt(row, x int) richtext.Pos {
	if len(l.rows) == 0 {
		return richtext.Pos{}
	}
	vr := l.rows[clampInt(row, 0, len(l.rows)-1)]
	cell := x - vr.shift - vr.indent
	if cell <= 0 {
		return richtext.Pos{Row: vr.block, Col: vr.start}
	}
	units := l.units[vr.block]
	col := vr.start
	for col < vr.end {
		w := units[col].width
		if cell < w {
			break
		}
		cell -= w
		col++
	}
	// A click past the text of a wrapped row stays on that row.
	if col == vr.end && !vr.last && col > vr.start {
		col--
	}
	return richtext.Pos{Row: vr.block, Col: col}
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
