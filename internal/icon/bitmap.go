package icon

// Bitmap is a 1-bit image. Bits[y*Width+x] is true for ink pixels.
type Bitmap struct {
	Width  uint16
	Height uint16
	Bits   []bool
}

// At reports whether the pixel at (x, y) is ink. Out-of-range coordinates
// and short bit slices read as background.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= int(b.Width) || y >= int(b.Height) {
		return false
	}
	idx := y*int(b.Width) + x
	if idx >= len(b.Bits) {
		return false
	}
	return b.Bits[idx]
}

// Scale resamples the bitmap to size x size using nearest-neighbor sampling.
func (b Bitmap) Scale(size int) Bitmap {
	return Bitmap{
		Width:  uint16(clampSize(size)),
		Height: uint16(clampSize(size)),
		Bits:   sample(int(b.Width), int(b.Height), b.Bits, clampSize(size)),
	}
}

// sample maps every destination pixel (x, y) to source pixel
// (x*w/size, y*h/size). Samples that fall outside bits are background.
func sample(w, h int, bits []bool, size int) []bool {
	out := make([]bool, size*size)
	if size == 0 {
		return out
	}
	for y := 0; y < size; y++ {
		srcY := y * h / size
		for x := 0; x < size; x++ {
			srcX := x * w / size
			idx := srcY*w + srcX
			if idx >= 0 && idx < len(bits) {
				out[y*size+x] = bits[idx]
			}
		}
	}
	return out
}

func clampSize(size int) int {
	if size < 0 {
		return 0
	}
	if size > 0xFFFF {
		return 0xFFFF
	}
	return size
}

// Placeholder draws a generic window: a two pixel outer border, a title
// bar band across the top and an inner border ring just inside the outer one.
func Placeholder(size int) Bitmap {
	s := clampSize(size)
	const border = 2
	titleBar := s / 5

	bits := make([]bool, s*s)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			outer := x < border || x >= s-border || y < border || y >= s-border
			title := y < titleBar+border
			inner := x == border || x == s-border-1 || y == s-border-1
			bits[y*s+x] = outer || title || inner
		}
	}

	return Bitmap{Width: uint16(s), Height: uint16(s), Bits: bits}
}
