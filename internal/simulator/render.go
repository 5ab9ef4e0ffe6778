package simulator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/skyjo/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	winnerGridStyle = gridStyle.
			BorderForeground(lipgloss.Color("#96CEB4"))

	lowCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	midCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	highCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	penaltyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// RenderSnapshot draws every player's grid side by side with round and
// total scores underneath.
func RenderSnapshot(s game.Snapshot) string {
	winners := make(map[string]bool, len(s.Winners))
	for _, id := range s.Winners {
		winners[id] = true
	}

	boxes := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		style := gridStyle
		if winners[p.ID] {
			style = winnerGridStyle
		}
		boxes = append(boxes, style.Render(renderPlayer(p)))
	}

	header := headerStyle.Render(fmt.Sprintf("Room %s  round %d  %s", s.Code, s.Round, s.Phase))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
	)
}

func renderPlayer(p game.PlayerView) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString("\n")

	for row := range game.GridRows {
		cells := make([]string, game.GridCols)
		for col := range game.GridCols {
			i := row*game.GridCols + col
			if i < len(p.Grid) {
				cells[col] = renderCard(p.Grid[i])
			} else {
				cells[col] = mutedStyle.Render("  ")
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	round := fmt.Sprintf("round %d", p.RoundScore)
	if p.Penalized {
		round = penaltyStyle.Render(fmt.Sprintf("round %d (x2)", p.RoundScore))
	}
	fmt.Fprintf(&b, "%s\ntotal %d", round, p.Total)
	return b.String()
}

func renderCard(c game.CardView) string {
	switch {
	case c.Cleared:
		return mutedStyle.Render("--")
	case c.Value == nil:
		return mutedStyle.Render("??")
	}
	text := fmt.Sprintf("%2d", *c.Value)
	switch v := *c.Value; {
	case v <= 0:
		return lowCardStyle.Render(text)
	case v <= 6:
		return midCardStyle.Render(text)
	default:
		return highCardStyle.Render(text)
	}
}
