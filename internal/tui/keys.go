package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/fairway/internal/round"
)

// keyMap holds every binding used by the views. Each view renders the subset
// it understands in the help footer.
type keyMap struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding

	TeeFairway key.Binding
	TeeLeft    key.Binding
	TeeRight   key.Binding
	TeePenalty key.Binding
	teeHelp    key.Binding

	ToggleGIR    key.Binding
	ToggleUpDown key.Binding
	Putts        key.Binding
	EditScore    key.Binding
	ScoreUp      key.Binding
	ScoreDown    key.Binding
	PrevHole     key.Binding
	NextHole     key.Binding
	Finish       key.Binding
	Abandon      key.Binding

	CommitScore key.Binding
	CancelScore key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "home")),

		TeeFairway: key.NewBinding(key.WithKeys("f")),
		TeeLeft:    key.NewBinding(key.WithKeys("l")),
		TeeRight:   key.NewBinding(key.WithKeys("r")),
		TeePenalty: key.NewBinding(key.WithKeys("p")),
		teeHelp:    key.NewBinding(key.WithKeys("f", "l", "r", "p"), key.WithHelp("f/l/r/p", "tee shot")),

		ToggleGIR:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "GIR")),
		ToggleUpDown: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "up & down")),
		Putts:        key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "putts")),
		EditScore:    key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "type score")),
		ScoreUp:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "score")),
		ScoreDown:    key.NewBinding(key.WithKeys("-")),
		PrevHole:     key.NewBinding(key.WithKeys("left", "b"), key.WithHelp("←", "prev hole")),
		NextHole:     key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→", "next hole")),
		Finish:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / finish")),
		Abandon:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abandon round")),

		CommitScore: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "save score")),
		CancelScore: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) teeFor(msg tea.KeyMsg) (round.TeeResult, bool) {
	switch {
	case key.Matches(msg, k.TeeFairway):
		return round.TeeFairway, true
	case key.Matches(msg, k.TeeLeft):
		return round.TeeLeft, true
	case key.Matches(msg, k.TeeRight):
		return round.TeeRight, true
	case key.Matches(msg, k.TeePenalty):
		return round.TeePenalty, true
	}
	return round.TeeUnset, false
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// playHelp hides bindings that do nothing on the current hole.
func (k keyMap) playHelp(s round.Session) []key.Binding {
	bindings := []key.Binding{k.teeHelp, k.ToggleGIR}
	if !s.Current().GIR {
		bindings = append(bindings, k.ToggleUpDown)
	}
	bindings = append(bindings, k.Putts, k.ScoreUp, k.EditScore)
	if !s.IsFirstHole() {
		bindings = append(bindings, k.PrevHole)
	}
	if !s.IsLastHole() {
		bindings = append(bindings, k.NextHole)
	}
	return append(bindings, k.Finish, k.Abandon)
}

func (k keyMap) scoreHelp() []key.Binding {
	return []key.Binding{k.CommitScore, k.CancelScore}
}

func (k keyMap) backHelp() []key.Binding {
	return []key.Binding{k.Back}
}
