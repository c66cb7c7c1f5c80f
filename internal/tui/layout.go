package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 8
)

// CompactWidth triggers compact mode for the footer.
const CompactWidth = 60

// DefaultScale is the number of offset units one terminal column stands for.
const DefaultScale = 8.0

// chromeHeight is the number of rows taken by the status bar and the
// footer (which carries a top border).
const chromeHeight = 3

// columns converts an offset into whole terminal columns.
func columns(offset, scale float64) int {
	if scale <= 0 {
		scale = DefaultScale
	}
	return int(math.Round(offset / scale))
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// fitLines normalizes a rendered block to exactly height lines of width
// cells. Right-aligned blocks are padded on the left.
func fitLines(block string, width, height int, alignRight bool) []string {
	lines := strings.Split(block, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		pad := strings.Repeat(" ", max(0, width-ansi.StringWidth(line)))
		if alignRight {
			out[i] = pad + line
		} else {
			out[i] = line + pad
		}
	}
	return out
}

// composeRow builds one screen row of the given width with the front pane
// shifted by off columns. A positive shift uncovers the rear row on the
// left; a negative one uncovers the right row on the right.
func composeRow(rear, front, right string, width, off int) string {
	off = clampInt(off, -width, width)
	switch {
	case off > 0:
		return ansi.Cut(rear, 0, off) + ansi.Cut(front, 0, width-off)
	case off < 0:
		k := -off
		return ansi.Cut(front, k, width) + ansi.Cut(right, width-k, width)
	default:
		return front
	}
}
