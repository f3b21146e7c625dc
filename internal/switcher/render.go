package switcher

import (
	"errors"

	"github.com/1broseidon/tabswitch/internal/grid"
	"github.com/1broseidon/tabswitch/internal/icon"
	"github.com/1broseidon/tabswitch/internal/platform"
	"golang.org/x/text/encoding/charmap"
)

const (
	selectionMargin = 2
	charWidth       = 6
	truncateWidth   = 7
	titleBaseline   = 16
	titleMinX       = 4
)

// render paints every cell and the title strip, then flushes.
func render(surface platform.Surface, layout grid.Layout, candidates []Candidate, selected int) error {
	var errs []error
	for i, c := range candidates {
		cell := layout.Cell(i)
		errs = append(errs, surface.Fill(platform.InkInverse, cell))
		errs = append(errs, drawIcon(surface, cell, c.Icon, i == selected))
	}

	errs = append(errs, drawTitle(surface, layout, candidates, selected))
	errs = append(errs, surface.Flush())
	return errors.Join(errs...)
}

// drawIcon centres the bitmap in cell. The selected icon sits in a filled
// box and is drawn in inverse ink.
func drawIcon(surface platform.Surface, cell platform.Rect, bm icon.Bitmap, selected bool) error {
	w, h := int(bm.Width), int(bm.Height)
	x0 := cell.X + (cell.Width-w)/2
	y0 := cell.Y + (cell.Height-h)/2

	ink := platform.InkNormal
	if selected {
		box := platform.Rect{
			X:      x0 - selectionMargin,
			Y:      y0 - selectionMargin,
			Width:  w + 2*selectionMargin,
			Height: h + 2*selectionMargin,
		}
		if err := surface.Fill(platform.InkNormal, box); err != nil {
			return err
		}
		ink = platform.InkInverse
	}

	runs := inkRuns(bm, x0, y0)
	if len(runs) == 0 {
		return nil
	}
	return surface.Fill(ink, runs...)
}

// inkRuns merges horizontally adjacent ink pixels into one rectangle each.
func inkRuns(bm icon.Bitmap, x0, y0 int) []platform.Rect {
	var runs []platform.Rect
	for y := 0; y < int(bm.Height); y++ {
		start := -1
		for x := 0; x <= int(bm.Width); x++ {
			ink := x < int(bm.Width) && bm.At(x, y)
			switch {
			case ink && start < 0:
				start = x
			case !ink && start >= 0:
				runs = append(runs, platform.Rect{X: x0 + start, Y: y0 + y, Width: x - start, Height: 1})
				start = -1
			}
		}
	}
	return runs
}

func drawTitle(surface platform.Surface, layout grid.Layout, candidates []Candidate, selected int) error {
	width := int(layout.TotalWidth)
	top := layout.TitleY()

	strip := platform.Rect{X: 0, Y: top, Width: width, Height: grid.TitleHeight}
	if err := surface.Fill(platform.InkInverse, strip); err != nil {
		return err
	}
	if err := surface.Line(platform.InkNormal, 0, top, width, top); err != nil {
		return err
	}

	if selected < 0 || selected >= len(candidates) {
		return nil
	}

	text := latin1(truncateTitle(candidates[selected].Title, width/truncateWidth))
	x := max(titleMinX, (width-len(text)*charWidth)/2)
	return surface.Text(x, top+titleBaseline, text)
}

// truncateTitle shortens title to at most limit characters, marking the
// cut with "...".
func truncateTitle(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	keep := max(limit-3, 0)
	return string(runes[:keep]) + "..."
}

// latin1 encodes s for a core font, replacing unmappable runes with '?'.
func latin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
