package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/heatlife/internal/palette"
	"github.com/san-kum/heatlife/internal/sim"
)

const halfBlock = "▀"

// RenderGrid draws a frame with one half block per pair of rows: the
// foreground carries the upper cell and the background the lower one.
func RenderGrid(f sim.Frame) string {
	var sb strings.Builder
	for y := 0; y < f.Size; y += 2 {
		for x := 0; x < f.Size; x++ {
			style := lipgloss.NewStyle().Foreground(hex(f.At(x, y)))
			if y+1 < f.Size {
				style = style.Background(hex(f.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		if y+2 < f.Size {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hex(c palette.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }
