package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/fairway/internal/round"
)

func (a *App) startRound() (tea.Model, tea.Cmd) {
	session, err := round.NewSession(a.config.Course())
	if err != nil {
		a.log.WithComponent("tui").WithError(err).Error("Cannot start round")
		a.setError(err)
		return a, nil
	}
	a.session = session
	a.editingScore = false
	a.state = statePlay
	a.setStatus("Round started at %s", a.config.Course().DisplayName())
	a.log.WithRound(session.ID()).WithField("course", a.config.Course().DisplayName()).Info("Round started")
	return a, nil
}

func (a *App) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editingScore {
		return a.updateScoreInput(msg)
	}

	if tee, ok := a.keys.teeFor(msg); ok {
		a.applyEdit(round.FieldTee, tee)
		return a, nil
	}

	current := a.session.Current()
	switch {
	case key.Matches(msg, a.keys.ToggleGIR):
		a.applyEdit(round.FieldGIR, !current.GIR)
	case key.Matches(msg, a.keys.ToggleUpDown):
		if current.GIR {
			a.setStatus("Up & down only applies when the green was missed")
			return a, nil
		}
		a.applyEdit(round.FieldUpAndDown, !current.UpAndDown)
	case key.Matches(msg, a.keys.Putts):
		putts, _ := strconv.Atoi(msg.String())
		a.applyEdit(round.FieldPutts, putts)
	case key.Matches(msg, a.keys.ScoreUp):
		a.applyEdit(round.FieldScore, current.Score+1)
	case key.Matches(msg, a.keys.ScoreDown):
		if current.Score > 0 {
			a.applyEdit(round.FieldScore, current.Score-1)
		}
	case key.Matches(msg, a.keys.EditScore):
		return a, a.beginScoreEdit()
	case key.Matches(msg, a.keys.PrevHole):
		a.session = a.session.Prev()
		a.err = nil
	case key.Matches(msg, a.keys.NextHole):
		a.session = a.session.Next()
		a.err = nil
	case key.Matches(msg, a.keys.Finish):
		if a.session.IsLastHole() {
			return a.finishRound()
		}
		a.session = a.session.Next()
		a.err = nil
	case key.Matches(msg, a.keys.Abandon):
		a.log.WithRound(a.session.ID()).WithField("hole", a.session.Current().Hole).Info("Round abandoned")
		a.session = round.Session{}
		a.setStatus("Round abandoned, nothing saved")
		return a.returnHome()
	}
	return a, nil
}

func (a *App) applyEdit(field round.Field, value any) {
	next, err := a.session.Edit(field, value)
	if err != nil {
		a.log.WithRound(a.session.ID()).WithError(err).Warn("Edit rejected")
		a.setError(err)
		return
	}
	a.session = next
	a.err = nil
}

func (a *App) beginScoreEdit() tea.Cmd {
	a.editingScore = true
	score := a.session.Current().Score
	if score > 0 {
		a.scoreInput.SetValue(strconv.Itoa(score))
	} else {
		a.scoreInput.SetValue("")
	}
	a.scoreInput.CursorEnd()
	return a.scoreInput.Focus()
}

func (a *App) updateScoreInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CommitScore):
		raw := strings.TrimSpace(a.scoreInput.Value())
		score := 0
		if raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				a.setError(fmt.Errorf("score must be a whole number, got %q", raw))
				return a, nil
			}
			score = parsed
		}
		a.applyEdit(round.FieldScore, score)
		if a.err != nil {
			return a, nil
		}
		a.endScoreEdit()
		return a, nil
	case key.Matches(msg, a.keys.CancelScore):
		a.endScoreEdit()
		a.err = nil
		return a, nil
	}
	var cmd tea.Cmd
	a.scoreInput, cmd = a.scoreInput.Update(msg)
	return a, cmd
}

func (a *App) endScoreEdit() {
	a.editingScore = false
	a.scoreInput.Blur()
	a.scoreInput.SetValue("")
}

func (a *App) finishRound() (tea.Model, tea.Cmd) {
	entry := a.log.WithRound(a.session.ID())
	summary, err := a.session.Finish(a.config.FormatDate(a.now()))
	if err != nil {
		entry.WithError(err).Error("Round could not be summarized")
		a.setError(err)
		return a, nil
	}
	if err := a.rounds.Append(summary); err != nil {
		entry.WithError(err).Error("Round could not be saved")
		a.setError(fmt.Errorf("round not saved: %w", err))
		return a, nil
	}
	a.summary = summary
	a.insights = a.engine.Generate(summary, a.rounds.History())
	a.session = round.Session{}
	a.state = stateSummary
	a.setStatus("Round saved · %d rounds on record", a.rounds.Len())
	entry.WithField("total", summary.Total).
		WithField("gir", summary.GIR).
		WithField("putts", summary.Putts).
		Info("Round finished")
	return a, nil
}

func (a *App) renderPlay() string {
	h := a.session.Current()
	title := titleStyle.Render(fmt.Sprintf("Hole %d (Par %d)", h.Hole, h.Par))
	progress := mutedStyle.Render(fmt.Sprintf("%s · hole %d of %d · %s",
		a.config.Course().DisplayName(), a.session.Index()+1, len(a.session.Holes()), a.runningScore()))

	teeOptions := make([]string, 0, len(round.TeeResults()))
	for _, tee := range round.TeeResults() {
		teeOptions = append(teeOptions, renderOption(string(tee), h.Tee == tee))
	}
	puttOptions := make([]string, 0, 3)
	for p := 1; p <= 3; p++ {
		puttOptions = append(puttOptions, renderOption(strconv.Itoa(p), h.Putts == p))
	}

	rows := []string{
		title,
		progress,
		"",
		section("Tee Shot", lipgloss.JoinHorizontal(lipgloss.Top, teeOptions...)),
		section("GIR", renderOption(yesNo(h.GIR), h.GIR)),
		section("Putts", lipgloss.JoinHorizontal(lipgloss.Top, puttOptions...)+mutedStyle.Render(fmt.Sprintf("  (%d)", h.Putts))),
	}
	if !h.GIR {
		rows = append(rows, section("Up & Down", renderOption(yesNo(h.UpAndDown), h.UpAndDown)))
	}
	rows = append(rows, section("Score", a.renderScoreField(h)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderScoreField(h round.HoleRecord) string {
	if a.editingScore {
		return cardStyle.BorderForeground(accentColor).Render(a.scoreInput.View())
	}
	return fmt.Sprintf("%d  %s", h.Score, mutedStyle.Render(toParLabel(h.Score, h.Par)))
}

// runningScore totals the holes entered so far; a hole counts once it has a score.
func (a *App) runningScore() string {
	strokes, par := 0, 0
	for _, h := range a.session.Holes() {
		if h.Score == 0 {
			continue
		}
		strokes += h.Score
		par += h.Par
	}
	if strokes == 0 {
		return "no scores yet"
	}
	return fmt.Sprintf("%d strokes (%s)", strokes, toParLabel(strokes, par))
}

func section(label, body string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(12).Foreground(mutedColor).Render(label),
		body,
	)
}

func renderOption(label string, active bool) string {
	if active {
		return activeStyle.Render(label)
	}
	return optionStyle.Render(label)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func toParLabel(score, par int) string {
	diff := score - par
	switch {
	case score == 0:
		return ""
	case diff == 0:
		return "E"
	case diff > 0:
		return fmt.Sprintf("+%d", diff)
	default:
		return strconv.Itoa(diff)
	}
}
