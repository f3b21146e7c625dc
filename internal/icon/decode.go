package icon

import "encoding/binary"

// record is one entry of a _NET_WM_ICON property: width, height and
// width*height ARGB pixels.
type record struct {
	width  int
	height int
	pixels []uint32
}

// Decode parses a raw _NET_WM_ICON property value, picks the entry closest
// to size, converts it to monochrome and rescales it to size x size.
// It returns false when the buffer holds no complete entry.
func Decode(raw []byte, size int) (Bitmap, bool) {
	best, ok := bestRecord(parseRecords(words(raw)), size)
	if !ok {
		return Bitmap{}, false
	}

	bits := make([]bool, len(best.pixels))
	for i, argb := range best.pixels {
		bits[i] = IsInk(argb)
	}

	size = clampSize(size)
	return Bitmap{
		Width:  uint16(size),
		Height: uint16(size),
		Bits:   sample(best.width, best.height, bits, size),
	}, true
}

// words reassembles the property bytes into 32-bit values. xgb speaks the
// little-endian wire protocol, so CARDINAL data arrives little-endian.
// A trailing group shorter than four bytes is dropped.
func words(raw []byte) []uint32 {
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return out
}

// parseRecords walks consecutive icon entries. It stops at the first entry
// with a zero dimension or one whose pixel data would run past the buffer.
func parseRecords(data []uint32) []record {
	var records []record
	idx := 0
	for idx+2 < len(data) {
		width, height := data[idx], data[idx+1]
		if width == 0 || height == 0 {
			break
		}
		count := uint64(width) * uint64(height)
		if count > uint64(len(data)-idx-2) {
			break
		}
		end := idx + 2 + int(count)
		records = append(records, record{
			width:  int(width),
			height: int(height),
			pixels: data[idx+2 : end],
		})
		idx = end
	}
	return records
}

// bestRecord returns the entry minimising |w-size|+|h-size|. On a tie a
// later entry wins only if it is not narrower than size.
func bestRecord(records []record, size int) (record, bool) {
	if len(records) == 0 {
		return record{}, false
	}
	best := records[0]
	bestDiff := distance(best, size)
	for _, r := range records[1:] {
		diff := distance(r, size)
		if diff < bestDiff || (diff == bestDiff && r.width >= size) {
			best, bestDiff = r, diff
		}
	}
	return best, true
}

func distance(r record, size int) int {
	return abs(r.width-size) + abs(r.height-size)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsInk converts one ARGB pixel to monochrome. The pixel is blended over
// white using ITU-R BT.601 luminance and thresholded at the midpoint.
func IsInk(argb uint32) bool {
	a := float64((argb>>24)&0xFF) / 255
	r := float64((argb >> 16) & 0xFF)
	g := float64((argb >> 8) & 0xFF)
	b := float64(argb & 0xFF)

	lum := (0.299*r + 0.587*g + 0.114*b) / 255
	value := lum*a + (1 - a)
	return value < 0.5
}

// ForWindow returns the decoded icon when data holds one and the
// placeholder otherwise. The second result reports whether a real icon
// was used.
func ForWindow(data []byte, err error, size int) (Bitmap, bool) {
	if err == nil && len(data) > 0 {
		if bm, ok := Decode(data, size); ok {
			return bm, true
		}
	}
	return Placeholder(size), false
}
