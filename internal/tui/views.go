package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/fairway/internal/insights"
)

func (a *App) renderSummary() string {
	s := a.summary
	par := a.config.Course().Par()
	cards := []string{
		cardStyle.Render(fmt.Sprintf("Score: %d (%s)", s.Total, toParLabel(s.Total, par))),
		cardStyle.Render(fmt.Sprintf("GIR: %d", s.GIR)),
		cardStyle.Render(fmt.Sprintf("Putts: %d", s.Putts)),
		cardStyle.Render(fmt.Sprintf("Doubles+: %d", s.Doubles)),
		cardStyle.Render(fmt.Sprintf("Penalties: %d", s.Penalties)),
		cardStyle.Render(fmt.Sprintf("Up & Downs: %d", s.UpDowns)),
	}
	lines := make([]string, 0, len(a.insights))
	for _, line := range a.insights {
		lines = append(lines, "• "+line)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("📊 Round Summary"),
		mutedStyle.Render(s.Date),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...),
		"",
		headingStyle.Render("Insights"),
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func (a *App) openHistory() (tea.Model, tea.Cmd) {
	rounds := a.rounds.Rounds()
	rows := make([]table.Row, 0, len(rounds))
	// newest first
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		rows = append(rows, table.Row{
			r.Date,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.GIR),
			strconv.Itoa(r.Putts),
			strconv.Itoa(r.Doubles),
			strconv.Itoa(r.Penalties),
			strconv.Itoa(r.UpDowns),
		})
	}
	a.historyTable.SetRows(rows)
	a.historyTable.GotoTop()
	a.state = stateHistory
	a.log.WithComponent("tui").WithField("rounds", len(rounds)).Debug("History opened")
	return a, nil
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "GIR", Width: 5},
		{Title: "Putts", Width: 6},
		{Title: "Dbl+", Width: 5},
		{Title: "Pen", Width: 4},
		{Title: "U&D", Width: 4},
	}
}

func (a *App) renderHistory() string {
	title := titleStyle.Render("📈 Rounds")
	if a.rounds.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("No rounds yet. Start one from the home screen."))
	}
	avg := insights.Averages(a.rounds.Rounds())
	averages := mutedStyle.Render(fmt.Sprintf(
		"Averages over %d rounds · Score %.1f | GIR %.1f | Putts %.1f | Up & Downs %.1f | Penalties %.1f",
		avg.Rounds, avg.Total, avg.GIR, avg.Putts, avg.UpDowns, avg.Penalties,
	))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", a.historyTable.View(), "", averages)
}
