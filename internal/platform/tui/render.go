package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/twenty48/internal/game"
)

// tilePalette holds background colors by tile power; powers past the end
// reuse the last entry.
var tilePalette = []lipgloss.Color{
	"236", // empty
	"252", // 2
	"230", // 4
	"215", // 8
	"209", // 16
	"203", // 32
	"196", // 64
	"228", // 128
	"227", // 256
	"226", // 512
	"220", // 1024
	"214", // 2048
	"135", // 4096+
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

func tileStyle(t game.Tile, width int) lipgloss.Style {
	idx := min(int(t.Power()), len(tilePalette)-1)
	fg := lipgloss.Color("235")
	if t.Power() >= 3 {
		fg = lipgloss.Color("255")
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(fg).
		Background(tilePalette[idx])
}

// RenderBoard draws the board as a grid of colored cells.
func RenderBoard(s *game.State) string {
	width := cellWidth(s)
	rows := make([]string, 0, s.Height())
	for r := range s.Height() {
		cells := make([]string, 0, s.Width())
		for c := range s.Width() {
			t, err := s.Tile(game.Pos(r, c))
			if err != nil {
				continue
			}
			label := t.String()
			if t.Empty() {
				label = "·"
			}
			cells = append(cells, tileStyle(t, width).Render(label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// cellWidth fits the widest tile with a space either side.
func cellWidth(s *game.State) int {
	return max(len(s.MaxTile().String()), 4) + 2
}
