// Package inspect prints the candidates a session would offer, for
// diagnosing discovery and icon decoding without opening the grid.
package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/1broseidon/tabswitch/internal/icon"
	"github.com/1broseidon/tabswitch/internal/switcher"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Entry is the YAML form of one candidate.
type Entry struct {
	Position int    `yaml:"position"`
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Icon     Icon   `yaml:"icon"`
}

// Icon summarises the bitmap shown for a candidate.
type Icon struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Source string `yaml:"source"`
	Ink    int    `yaml:"ink_pixels"`
}

// Entries converts candidates into their printable form, in MRU order.
func Entries(candidates []switcher.Candidate) []Entry {
	entries := make([]Entry, 0, len(candidates))
	for i, c := range candidates {
		source := "placeholder"
		if c.HasIcon {
			source = "_NET_WM_ICON"
		}
		entries = append(entries, Entry{
			Position: i,
			ID:       fmt.Sprintf("0x%x", uint32(c.ID)),
			Title:    c.Title,
			Icon: Icon{
				Width:  int(c.Icon.Width),
				Height: int(c.Icon.Height),
				Source: source,
				Ink:    countInk(c.Icon),
			},
		})
	}
	return entries
}

// WriteYAML writes the candidate list as a YAML document.
func WriteYAML(w io.Writer, candidates []switcher.Candidate) error {
	doc := struct {
		Count   int     `yaml:"count"`
		Windows []Entry `yaml:"windows"`
	}{
		Count:   len(candidates),
		Windows: Entries(candidates),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteIcons renders every icon as half-block text art, packing as many
// boxes per row as fit in width columns.
func WriteIcons(w io.Writer, candidates []switcher.Candidate, width int) error {
	if len(candidates) == 0 {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	boxes := make([]string, 0, len(candidates))
	for i, c := range candidates {
		art := Art(c.Icon)
		label := truncate(fmt.Sprintf("%d %s", i, c.Title), lipgloss.Width(art))
		boxes = append(boxes, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(label), art)))
	}

	var rows []string
	var row []string
	used := 0
	for _, box := range boxes {
		bw := lipgloss.Width(box)
		if len(row) > 0 && used+bw > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, box)
		used += bw
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

// Art draws a bitmap with one character per two pixel rows.
func Art(bm icon.Bitmap) string {
	var sb strings.Builder
	for y := 0; y < int(bm.Height); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < int(bm.Width); x++ {
			top := bm.At(x, y)
			bottom := bm.At(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// TerminalWidth returns the column count of f, or 0 when f is not a
// terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func countInk(bm icon.Bitmap) int {
	n := 0
	for _, b := range bm.Bits {
		if b {
			n++
		}
	}
	return n
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
