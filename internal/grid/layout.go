package grid

import "github.com/1broseidon/tabswitch/internal/platform"

const (
	// IconSize is the edge length of an icon cell in pixels.
	IconSize = 48
	// Padding separates cells from each other and from the window edge.
	Padding = 8
	// TitleHeight is the height of the title strip below the grid.
	TitleHeight = 24
	// MaxColumns caps the grid width regardless of screen size.
	MaxColumns = 20
)

// Layout is the grid geometry of one switcher session.
type Layout struct {
	Columns    uint16
	CellSize   uint16
	Padding    uint16
	TotalWidth uint16
	Count      int
}

// Compute derives the grid for count windows on a screen of the given
// width. The grid uses at most 80% of the screen width and never has
// fewer than one column.
func Compute(screenWidth, count int) Layout {
	usable := max(screenWidth, 0) * 4 / 5

	byWidth := 1
	if usable > Padding {
		byWidth = max(1, (usable-Padding)/(IconSize+Padding))
	}

	cols := min(count, byWidth, MaxColumns)
	if cols < 1 {
		cols = 1
	}

	return Layout{
		Columns:    uint16(cols),
		CellSize:   IconSize,
		Padding:    Padding,
		TotalWidth: uint16(cols*(IconSize+Padding) + Padding),
		Count:      max(count, 0),
	}
}

// Rows returns ceil(Count/Columns), at least one.
func (l Layout) Rows() int {
	cols := max(int(l.Columns), 1)
	return max((l.Count+cols-1)/cols, 1)
}

// TitleY is the top edge of the title strip.
func (l Layout) TitleY() int {
	return l.Rows()*int(l.CellSize+l.Padding) + int(l.Padding)
}

// Height is the full window height including the title strip.
func (l Layout) Height() int {
	return l.TitleY() + TitleHeight
}

// Cell returns the rectangle of the i-th cell, filled row by row.
func (l Layout) Cell(i int) platform.Rect {
	cols := max(int(l.Columns), 1)
	col := i % cols
	row := i / cols
	step := int(l.CellSize + l.Padding)
	return platform.Rect{
		X:      int(l.Padding) + col*step,
		Y:      int(l.Padding) + row*step,
		Width:  int(l.CellSize),
		Height: int(l.CellSize),
	}
}

// Bounds centres the window on a screen of the given size.
func (l Layout) Bounds(screenWidth, screenHeight int) platform.Rect {
	width := int(l.TotalWidth)
	height := l.Height()
	return platform.Rect{
		X:      max(screenWidth-width, 0) / 2,
		Y:      max(screenHeight-height, 0) / 2,
		Width:  width,
		Height: height,
	}
}
