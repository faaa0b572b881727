package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/heatlife/internal/palette"
	"github.com/san-kum/heatlife/internal/sim"
)

func testFrame() sim.Frame {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	return sim.Frame{
		Generation: 7,
		Size:       2,
		Alive:      1,
		Sampled:    5,
		Colors: [][]palette.Color{
			{red, blue},
			{blue, red},
		},
	}
}

func TestFrameToSVG(t *testing.T) {
	svg := FrameToSVG(testFrame(), 5)

	if !strings.Contains(svg, `width="10" height="10"`) {
		t.Error("expected 10x10 canvas")
	}
	if n := strings.Count(svg, `width="5" height="5"`); n != 4 {
		t.Errorf("expected 4 cell rects, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="5" y="0" width="5" height="5" fill="#0000ff"/>`) {
		t.Error("expected blue cell at (1,0)")
	}
	if !strings.Contains(svg, "generation 7, 1 alive, colors from generation 5") {
		t.Error("expected generation comment")
	}
}

func TestFrameToSVGClampsCellSize(t *testing.T) {
	svg := FrameToSVG(testFrame(), 0)
	if !strings.Contains(svg, `width="2" height="2"`) {
		t.Error("non-positive cell size should fall back to 1")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}

	svg := SeriesToSVG([]float64{3, 3, 3}, 100, 50, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("expected stroke color")
	}
	if strings.Count(svg, " L") != 2 {
		t.Error("expected two line segments")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := WriteFile(path, FrameToSVG(testFrame(), 1)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("expected an xml document")
	}
}

func TestPopulationChart(t *testing.T) {
	var buf bytes.Buffer
	if err := PopulationChart(&buf, []float64{1}, 2, 400, 200); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}

	if err := PopulationChart(&buf, []float64{40, 32, 35, 35}, 2, 400, 200); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected png output")
	}
}
