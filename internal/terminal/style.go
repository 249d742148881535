package terminal

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// halfBlockStyle colors the upper half of a '▀' cell with top and the lower
// half with bottom.
func halfBlockStyle(top, bottom colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
}
