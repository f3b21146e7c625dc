package grid

import "testing"

func TestComputeColumnsWithinBounds(t *testing.T) {
	widths := []int{-10, 0, 1, 8, 63, 64, 80, 640, 1024, 1920, 3840, 100000}
	for _, w := range widths {
		for n := 0; n <= 45; n++ {
			l := Compute(w, n)
			upper := min(max(n, 1), MaxColumns)
			if l.Columns < 1 || int(l.Columns) > upper {
				t.Fatalf("Compute(%d, %d).Columns = %d, want within [1, %d]", w, n, l.Columns, upper)
			}
			if want := int(l.Columns)*(IconSize+Padding) + Padding; int(l.TotalWidth) != want {
				t.Fatalf("Compute(%d, %d).TotalWidth = %d, want %d", w, n, l.TotalWidth, want)
			}
		}
	}
}

func TestComputeFullHD(t *testing.T) {
	// usable = 1536, (1536-8)/56 = 27 -> capped at MaxColumns.
	l := Compute(1920, 30)
	if l.Columns != MaxColumns {
		t.Fatalf("expected %d columns, got %d", MaxColumns, l.Columns)
	}
	if l.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", l.Rows())
	}
	if l.TotalWidth != 20*56+8 {
		t.Fatalf("unexpected width %d", l.TotalWidth)
	}
}

func TestComputeNarrowScreen(t *testing.T) {
	// usable = 512, (512-8)/56 = 9.
	l := Compute(640, 12)
	if l.Columns != 9 {
		t.Fatalf("expected 9 columns, got %d", l.Columns)
	}
	if l.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", l.Rows())
	}
}

func TestComputeFewWindows(t *testing.T) {
	l := Compute(1920, 3)
	if l.Columns != 3 || l.Rows() != 1 {
		t.Fatalf("expected 3x1 grid, got %d columns x %d rows", l.Columns, l.Rows())
	}
	if l.TotalWidth != 3*56+8 {
		t.Fatalf("unexpected width %d", l.TotalWidth)
	}
	if l.Height() != 56+8+TitleHeight {
		t.Fatalf("unexpected height %d", l.Height())
	}
}

func TestComputeZeroCount(t *testing.T) {
	l := Compute(1920, 0)
	if l.Columns != 1 || l.Rows() != 1 {
		t.Fatalf("expected a 1x1 grid for no windows, got %dx%d", l.Columns, l.Rows())
	}
}

func TestCellPositions(t *testing.T) {
	l := Compute(640, 12) // 9 columns
	first := l.Cell(0)
	if first.X != 8 || first.Y != 8 || first.Width != IconSize || first.Height != IconSize {
		t.Fatalf("unexpected first cell %+v", first)
	}
	second := l.Cell(1)
	if second.X != 8+56 || second.Y != 8 {
		t.Fatalf("unexpected second cell %+v", second)
	}
	wrapped := l.Cell(9)
	if wrapped.X != 8 || wrapped.Y != 8+56 {
		t.Fatalf("unexpected wrapped cell %+v", wrapped)
	}
	if l.TitleY() != 2*56+8 {
		t.Fatalf("unexpected title y %d", l.TitleY())
	}
}

func TestBoundsCentresAndClamps(t *testing.T) {
	l := Compute(1920, 3)
	b := l.Bounds(1920, 1080)
	if b.X != (1920-int(l.TotalWidth))/2 || b.Y != (1080-l.Height())/2 {
		t.Fatalf("window not centred: %+v", b)
	}

	tiny := l.Bounds(10, 10)
	if tiny.X != 0 || tiny.Y != 0 {
		t.Fatalf("expected origin clamp on tiny screen, got %+v", tiny)
	}
}
