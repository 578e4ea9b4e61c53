package tui

import (
	"fmt"
	"strings"

	"github.com/Leghis/sorting-visualizer/engine"
)

// maxBarWidth caps the bar length so large value ranges still fit a
// terminal row.
const maxBarWidth = 60

// RenderBars renders the element slice as one horizontal bar per row,
// colored by step state: yellow while comparing, red while swapping or
// being placed, green once sorted, white otherwise. Exported so tests can
// check the encoding without a screen.
func RenderBars(elems []engine.Element) string {
	if len(elems) == 0 {
		return "[dim]No data[white]"
	}

	maxValue := elems[0].Value
	for _, e := range elems {
		if e.Value > maxValue {
			maxValue = e.Value
		}
	}
	if maxValue < 1 {
		maxValue = 1
	}

	var b strings.Builder
	for i, e := range elems {
		width := e.Value * maxBarWidth / maxValue
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(&b, "%3d [%s]%s[white] %d\n",
			i, barColor(e), strings.Repeat("█", width), e.Value)
	}
	return b.String()
}

func barColor(e engine.Element) string {
	switch {
	case e.Swapping:
		return "red"
	case e.Comparing:
		return "yellow"
	case e.Sorted:
		return "green"
	default:
		return "white"
	}
}
