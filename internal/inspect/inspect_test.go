package inspect

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/1broseidon/tabswitch/internal/icon"
	"github.com/1broseidon/tabswitch/internal/switcher"
	"gopkg.in/yaml.v3"
)

func sampleCandidates() []switcher.Candidate {
	return []switcher.Candidate{
		{
			ID:      0x1a00003,
			Title:   "Editor",
			Icon:    icon.Bitmap{Width: 2, Height: 2, Bits: []bool{true, false, false, true}},
			HasIcon: true,
		},
		{
			ID:    0x2c0000a,
			Title: "café: notes",
			Icon:  icon.Placeholder(8),
		},
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleCandidates()); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	var doc struct {
		Count   int     `yaml:"count"`
		Windows []Entry `yaml:"windows"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if doc.Count != 2 || len(doc.Windows) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}

	first := doc.Windows[0]
	if first.ID != "0x1a00003" || first.Title != "Editor" || first.Position != 0 {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Icon.Source != "_NET_WM_ICON" || first.Icon.Ink != 2 {
		t.Fatalf("unexpected first icon: %+v", first.Icon)
	}

	second := doc.Windows[1]
	if second.Title != "café: notes" {
		t.Fatalf("title not preserved: %q", second.Title)
	}
	if second.Icon.Source != "placeholder" || second.Icon.Width != 8 {
		t.Fatalf("unexpected second icon: %+v", second.Icon)
	}
}

func TestWriteYAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, nil); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}
	if !strings.Contains(buf.String(), "count: 0") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestArt(t *testing.T) {
	bm := icon.Bitmap{
		Width:  3,
		Height: 3,
		Bits: []bool{
			true, false, true,
			true, true, false,
			false, true, false,
		},
	}
	got := Art(bm)
	want := "█▄▀\n ▀ "
	if got != want {
		t.Fatalf("Art = %q, want %q", got, want)
	}
}

func TestWriteIconsWrapsRows(t *testing.T) {
	candidates := sampleCandidates()
	candidates[0].Icon = icon.Placeholder(8)

	var wide, narrow bytes.Buffer
	if err := WriteIcons(&wide, candidates, 200); err != nil {
		t.Fatalf("WriteIcons error: %v", err)
	}
	if err := WriteIcons(&narrow, candidates, 10); err != nil {
		t.Fatalf("WriteIcons error: %v", err)
	}

	wideLines := strings.Count(wide.String(), "\n")
	narrowLines := strings.Count(narrow.String(), "\n")
	if narrowLines <= wideLines {
		t.Fatalf("expected narrow output to stack boxes: wide=%d narrow=%d lines", wideLines, narrowLines)
	}
}

func TestWriteIconsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIcons(&buf, nil, 80); err != nil {
		t.Fatalf("WriteIcons error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTerminalWidthOfRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if w := TerminalWidth(f); w != 0 {
		t.Fatalf("TerminalWidth(file) = %d, want 0", w)
	}
}
