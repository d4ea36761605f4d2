package document

import (
	"image"

	"github.com/charmbracelet/lipgloss"
)

// Measurer reports the size of a text label. Text shaping is the host's
// business; the document only asks for the extent.
type Measurer interface {
	Measure(text string) image.Point
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string) image.Point

// Measure calls f(text).
func (f MeasureFunc) Measure(text string) image.Point { return f(text) }

// CellMeasurer measures text on a monospace grid: the widest line in
// terminal cells times CellWidth, the line count times CellHeight.
type CellMeasurer struct {
	CellWidth  int
	CellHeight int
}

// Measure implements Measurer.
func (m CellMeasurer) Measure(text string) image.Point {
	return image.Pt(lipgloss.Width(text)*m.CellWidth, lipgloss.Height(text)*m.CellHeight)
}

// DefaultMeasurer assumes an 8x16 pixel cell.
var DefaultMeasurer Measurer = CellMeasurer{CellWidth: 8, CellHeight: 16}
