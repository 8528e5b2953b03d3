// internal/tui/app.go
//
// This is the terminal UI for Fairway. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: the App struct below holds all state
// 2. Update: turns key presses into state transitions
// 3. View: renders state to a string
//
// The App is the presentation collaborator of the round engine: it drives a
// round.Session while holes are entered, hands the finished session to the
// store, and asks the insights engine for feedback.

package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/fairway/internal/config"
	"github.com/kingrea/fairway/internal/insights"
	"github.com/kingrea/fairway/internal/logging"
	"github.com/kingrea/fairway/internal/round"
	"github.com/kingrea/fairway/internal/store"
)

// appState represents which "screen" we're on
type appState int

const (
	stateHome    appState = iota // Start round / history / exit
	statePlay                    // Hole-by-hole entry
	stateSummary                 // Stats and insights for the round just finished
	stateHistory                 // Every stored round
)

const (
	menuStartRound = "Start Round"
	menuHistory    = "History"
	menuExit       = "Exit"

	logPanelLines = 6
)

var (
	accentColor = lipgloss.Color("#5B8DEF")
	mutedColor  = lipgloss.Color("#888888")
	borderColor = lipgloss.Color("#444444")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#4CAF50")).Bold(true).Padding(0, 1)
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Padding(0, 1)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the clock used to date finished rounds.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithInsightEngine overrides the insight policy taken from config.
func WithInsightEngine(engine insights.Engine) AppOption {
	return func(a *App) {
		a.engine = engine
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state  appState
	config *config.Config
	rounds *store.RoundStore
	log    *logging.Logger
	engine insights.Engine
	now    func() time.Time

	// UI components
	homeMenu     list.Model
	scoreInput   textinput.Model
	historyTable table.Model
	help         help.Model
	keys         keyMap

	// Round in progress; only meaningful in statePlay
	session      round.Session
	editingScore bool

	// Round just finished; only meaningful in stateSummary
	summary  round.Summary
	insights []string

	statusMsg string
	err       error

	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance around an opened store.
func NewApp(cfg *config.Config, rounds *store.RoundStore, log *logging.Logger, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	if rounds == nil {
		return nil, fmt.Errorf("tui: round store is required")
	}
	if log == nil {
		log = logging.Discard()
	}

	homeMenu := list.New([]list.Item{
		menuItem{title: menuStartRound, desc: fmt.Sprintf("Record 18 holes at %s", cfg.Course().DisplayName())},
		menuItem{title: menuHistory, desc: "Browse finished rounds"},
		menuItem{title: menuExit, desc: "Quit Fairway"},
	}, list.NewDefaultDelegate(), 60, 14)
	homeMenu.Title = "⛳ FAIRWAY"
	homeMenu.SetShowStatusBar(false)
	homeMenu.SetFilteringEnabled(false)
	homeMenu.SetShowHelp(false)
	homeMenu.DisableQuitKeybindings()

	scoreInput := textinput.New()
	scoreInput.Prompt = ""
	scoreInput.CharLimit = 2
	scoreInput.Width = 4
	scoreInput.Cursor.SetMode(cursor.CursorStatic)

	historyTable := table.New(
		table.WithColumns(historyColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(borderColor).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#1A1A1A")).Background(accentColor)
	historyTable.SetStyles(styles)

	app := &App{
		state:        stateHome,
		config:       cfg,
		rounds:       rounds,
		log:          log,
		engine:       insights.NewEngine(cfg.InsightsMode()),
		now:          time.Now,
		homeMenu:     homeMenu,
		scoreInput:   scoreInput,
		historyTable: historyTable,
		help:         help.New(),
		keys:         defaultKeyMap(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.log.WithComponent("tui").
		WithField("rounds", rounds.Len()).
		WithField("insights", app.engine.Mode()).
		Info("Session opened")
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.homeMenu.SetSize(max(20, msg.Width-6), max(8, msg.Height-14))
		a.historyTable.SetHeight(max(5, msg.Height-16))
		a.help.Width = max(20, msg.Width-4)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateHome:
			return a.updateHome(msg)
		case statePlay:
			return a.updatePlay(msg)
		case stateSummary:
			if key.Matches(msg, a.keys.Back) {
				return a.returnHome()
			}
			return a, nil
		case stateHistory:
			if key.Matches(msg, a.keys.Back) {
				return a.returnHome()
			}
			var cmd tea.Cmd
			a.historyTable, cmd = a.historyTable.Update(msg)
			return a, cmd
		}
	}

	if a.state == stateHome {
		var cmd tea.Cmd
		a.homeMenu, cmd = a.homeMenu.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Select):
		return a.handleHomeSelection()
	}
	var cmd tea.Cmd
	a.homeMenu, cmd = a.homeMenu.Update(msg)
	return a, cmd
}

// handleHomeSelection processes menu item selection
func (a *App) handleHomeSelection() (tea.Model, tea.Cmd) {
	item, ok := a.homeMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case menuStartRound:
		return a.startRound()
	case menuHistory:
		return a.openHistory()
	case menuExit:
		a.log.WithComponent("tui").Info("Exit selected")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) returnHome() (tea.Model, tea.Cmd) {
	a.state = stateHome
	a.editingScore = false
	a.scoreInput.Blur()
	a.err = nil
	return a, nil
}

func (a *App) setError(err error) {
	a.err = err
	a.statusMsg = ""
}

func (a *App) setStatus(format string, args ...any) {
	a.err = nil
	a.statusMsg = fmt.Sprintf(format, args...)
}

// View renders the current screen inside the shared frame.
func (a *App) View() string {
	var content string
	var bindings []key.Binding
	switch a.state {
	case stateHome:
		content = a.homeMenu.View()
		bindings = a.keys.homeHelp()
	case statePlay:
		content = a.renderPlay()
		if a.editingScore {
			bindings = a.keys.scoreHelp()
		} else {
			bindings = a.keys.playHelp(a.session)
		}
	case stateSummary:
		content = a.renderSummary()
		bindings = a.keys.backHelp()
	case stateHistory:
		content = a.renderHistory()
		bindings = a.keys.backHelp()
	}
	return a.renderFrame(content, a.help.ShortHelpView(bindings))
}

func (a *App) renderFrame(content, footer string) string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	parts := []string{content}
	if status := a.renderStatusLine(); status != "" {
		parts = append(parts, "", status)
	}
	if panel := a.renderLogPanel(width - 4); panel != "" {
		parts = append(parts, "", panel)
	}
	parts = append(parts, "", footer)
	return lipgloss.NewStyle().
		Width(max(20, width-2)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) renderStatusLine() string {
	if a.err != nil {
		return errorStyle.Render("✗ " + a.err.Error())
	}
	if a.statusMsg != "" {
		return mutedStyle.Render(a.statusMsg)
	}
	return ""
}

func (a *App) renderLogPanel(width int) string {
	lines := a.log.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.log.Path())
	head := headingStyle.Render(fmt.Sprintf("LOG · %s", fileName))
	body := mutedStyle.Width(max(20, width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}
