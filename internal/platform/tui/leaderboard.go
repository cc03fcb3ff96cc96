package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-meteors/internal/storage"
)

// Leaderboard layout constants
const (
	leaderboardSize = 5 // rows shown after game over
	playerColWidth  = 12
)

// newScoreTable builds the leaderboard table for the given entries.
// The row of the entry with id highlight is selected.
func newScoreTable(scores []storage.ScoreEntry, highlight int64) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: playerColWidth},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, len(scores))
	selected := -1
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			truncate(s.Player, playerColWidth),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("15:04:05"),
		}
		if s.ID == highlight {
			selected = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(selected >= 0),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if selected >= 0 {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetCursor(selected)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	return t
}

// renderLeaderboard renders the table, or a hint when nothing is recorded.
func renderLeaderboard(scores []storage.ScoreEntry, highlight int64) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(scores) == 0 {
		return boxStyle.Render(emptyStyle.Render("No scores recorded yet."))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HIGH SCORES"),
		newScoreTable(scores, highlight).View(),
	)
	return boxStyle.Render(body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
