package editor

import "github.com/iw2rmb/notepad/internal/grapheme"

// wrapUnit is one grapheme cluster as seen by the wrapper.
type wrapUnit struct {
	width        int
	isWhitespace bool
}

func wrapUnitsForClusters(chars []string) []wrapUnit {
	units := make([]wrapUnit, len(chars))
	for i, c := range chars {
		w := grapheme.Width(c)
		if c == "\t" {
			w = 1
		}
		units[i] = wrapUnit{width: w, isWhitespace: grapheme.IsSpace(c)}
	}
	return units
}

// wrapClusters splits a block's clusters into [start, end) segments no wider
// than width cells, breaking after whitespace when possible. An empty block
// yields one empty segment.
func wrapClusters(units []wrapUnit, width int) [][2]int {
	if len(units) == 0 {
		return [][2]int{{0, 0}}
	}
	if width <= 0 {
		return [][2]int{{0, len(units)}}
	}

	segments := make([][2]int, 0, 1)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := units[overflow].width
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}
		if overflow <= start {
			overflow = minInt(start+1, len(units))
		}

		end := overflow
		if overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = minInt(start+1, len(units))
		}
		segments = append(segments, [2]int{start, end})
		start = end
	}
	return segments
}

func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}
