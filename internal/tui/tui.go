// Package tui draws the blackjack table in the terminal and turns mouse
// clicks and key presses into engine intents.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AP-2007/Black-Jack/internal/deck"
	"github.com/AP-2007/Black-Jack/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options configures the table view
type Options struct {
	Theme string
	Mouse bool
}

// Model is the Bubble Tea model for the blackjack table
type Model struct {
	engine *game.Engine
	logger *log.Logger
	theme  Theme
	mouse  bool

	// UI components
	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	// Event log, filled from the engine's event bus
	formatter *game.EventFormatter
	gameLog   []logEntry

	// Button hit regions from the last View
	buttons []region

	// Dimensions
	width    int
	height   int
	quitting bool
}

type logEntry struct {
	text   string
	header bool
	tone   game.Tone
	result bool
}

// dealMsg asks the model to deal the opening round
type dealMsg struct{}

// New creates the table view and subscribes it to the engine's events
func New(engine *game.Engine, logger *log.Logger, opts Options) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		engine:      engine,
		logger:      logger.WithPrefix("tui"),
		theme:       ThemeFor(opts.Theme),
		mouse:       opts.Mouse,
		keys:        newKeyMap(),
		help:        help.New(),
		logViewport: vp,
		formatter:   game.NewEventFormatter(game.FormattingOptions{ShowValues: true}),
	}
	engine.EventBus().Subscribe(game.SubscriberFunc(m.onEvent))
	return m
}

// Init deals the first round if the engine has not started one
func (m *Model) Init() tea.Cmd {
	if m.engine.Phase() != game.PhaseIdle {
		return nil
	}
	return func() tea.Msg { return dealMsg{} }
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case dealMsg:
		m.perform(ActionRestart)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hit):
			m.perform(ActionHit)
			return m, nil
		case key.Matches(msg, m.keys.Stand):
			m.perform(ActionStand)
			return m, nil
		case key.Matches(msg, m.keys.Restart):
			m.perform(ActionRestart)
			return m, nil
		}

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if action, ok := hitTest(m.buttons, msg.X, msg.Y); ok {
				m.logger.Debug("Button clicked", "button", action, "x", msg.X, "y", msg.Y)
				m.perform(action)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// perform forwards an intent to the engine. Rejected intents leave the table
// unchanged.
func (m *Model) perform(action Action) {
	var err error
	switch action {
	case ActionHit:
		err = m.engine.Hit()
	case ActionStand:
		err = m.engine.Stand()
	case ActionRestart:
		err = m.engine.Restart()
	}

	switch {
	case err == nil:
	case errors.Is(err, game.ErrInvalidTransition):
		m.logger.Debug("Intent rejected", "action", action, "error", err)
	case errors.Is(err, deck.ErrExhausted):
		m.logger.Warn("Round settled on a short deck", "action", action)
	default:
		m.logger.Error("Intent failed", "action", action, "error", err)
	}
}

// onEvent appends a formatted engine event to the log pane
func (m *Model) onEvent(event game.GameEvent) {
	entry := logEntry{text: m.formatter.Format(event)}
	switch e := event.(type) {
	case game.RoundStartEvent:
		entry.header = true
	case game.RoundEndEvent:
		entry.result = true
		entry.tone = e.Outcome.Tone()
	}
	m.addLogEntry(entry)
}

// addLogEntry adds an entry to the game log and scrolls to it
func (m *Model) addLogEntry(entry logEntry) {
	if entry.text == "" {
		return
	}
	m.gameLog = append(m.gameLog, entry)

	m.logViewport.SetContent(m.renderLog())
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns the plain text of every log entry
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		out[i] = e.text
	}
	return out
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.engine.Snapshot()

	header := m.renderHeader(snap)
	table := m.theme.Table.Render(m.renderTable(snap))

	top := lipgloss.Height(header) + lipgloss.Height(table)
	buttons, regions := renderButtons(m.theme, snap.CanAct(), 0, top)
	m.buttons = regions

	helpView := m.help.View(m.keys)

	used := top + lipgloss.Height(buttons) + lipgloss.Height(helpView)
	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-used-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.LogBorder).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, table, buttons, logPane, helpView)
}

func (m *Model) renderHeader(snap game.Snapshot) string {
	title := " ♠ Blackjack ♥ "
	score := fmt.Sprintf(" Wins: %d  Losses: %d ", snap.Tally.Wins, snap.Tally.Losses)
	pad := max(m.width-lipgloss.Width(title)-lipgloss.Width(score), 1)
	return m.theme.Header.Render(title + strings.Repeat(" ", pad) + score)
}

func (m *Model) renderTable(snap game.Snapshot) string {
	dealerValue := "?"
	if snap.DealerVisible() {
		dealerValue = fmt.Sprint(snap.DealerValue)
	}
	playerValue := fmt.Sprint(snap.PlayerValue)
	if snap.PlayerSoft && snap.CanAct() {
		playerValue = "soft " + playerValue
	}

	var status string
	switch {
	case snap.Phase == game.PhaseIdle:
		status = m.theme.Info.Render("Shuffling...")
	case snap.CanAct():
		status = m.theme.Info.Render("Hit or stand?")
	default:
		status = m.toneStyle(snap.Tone()).Render(snap.Message())
		if snap.Exhausted {
			status += m.theme.Warning.Render("  (deck exhausted)")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render(fmt.Sprintf("Dealer (%s)", dealerValue)),
		m.renderCards(snap.Dealer, !snap.DealerVisible()),
		"",
		m.theme.Label.Render(fmt.Sprintf("Player (%s)", playerValue)),
		m.renderCards(snap.Player, false),
		"",
		status,
	)
}

// renderCards draws a hand as a row of card faces. With hideFirst the first
// card is drawn face down.
func (m *Model) renderCards(cards []deck.Card, hideFirst bool) string {
	if len(cards) == 0 {
		return m.theme.Info.Render("no cards")
	}

	faces := make([]string, 0, len(cards)*2)
	for i, card := range cards {
		if i > 0 {
			faces = append(faces, " ")
		}
		switch {
		case i == 0 && hideFirst:
			faces = append(faces, m.theme.HiddenCard.Render("░░░"))
		case card.IsRed():
			faces = append(faces, m.theme.RedCard.Render(card.String()))
		default:
			faces = append(faces, m.theme.BlackCard.Render(card.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, faces...)
}

func (m *Model) renderLog() string {
	lines := make([]string, 0, len(m.gameLog))
	for _, e := range m.gameLog {
		switch {
		case e.header:
			lines = append(lines, m.theme.Label.Render(e.text))
		case e.result:
			lines = append(lines, m.toneStyle(e.tone).Render(e.text))
		default:
			lines = append(lines, e.text)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) toneStyle(tone game.Tone) lipgloss.Style {
	switch tone {
	case game.ToneWin:
		return m.theme.Success
	case game.ToneLoss:
		return m.theme.Error
	default:
		return m.theme.Warning
	}
}
