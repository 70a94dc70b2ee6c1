package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/tui/components/card"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case card.VerdictMsg:
		return m.handleVerdict(msg)
	}

	switch m.screen {
	case ScreenCard:
		return m.updateCard(msg)
	case ScreenResult:
		return m.updateResult(msg)
	case ScreenStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Stats):
			m.showStats()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		set, ok := m.catalog.FindSet(m.menu.SetID)
		if !ok {
			m.message = "Pick a study set first."
			return m, m.showMenu()
		}
		return m, m.startSession(set, m.menu.Mode)
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateCard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.card.Committing() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Back):
			m.session.Abandon()
			logger.Debug("Session abandoned", "reviewed", m.session.Index(), "total", m.session.Total())
			return m, m.showMenu()
		case key.Matches(msg, m.keys.Flip):
			return m, m.card.Tap()
		case key.Matches(msg, m.keys.Remember):
			return m, m.card.Swipe(true)
		case key.Matches(msg, m.keys.Forget):
			return m, m.card.Swipe(false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.card, cmd = m.card.Update(msg)
	return m, cmd
}

// handleVerdict applies a graded card to the session. Verdicts for a card
// that is no longer current (the session was abandoned) are dropped.
func (m Model) handleVerdict(msg card.VerdictMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenCard || m.session == nil || m.session.Current().ID != msg.ItemID {
		return m, nil
	}

	if err := m.session.SubmitVerdict(msg.Remembered); err != nil {
		logger.Warn("Dropped verdict", "item", msg.ItemID, "error", err)
		return m, nil
	}

	if m.session.IsComplete() {
		m.finishSession()
		return m, nil
	}
	m.card.SetItem(m.session.Current(), m.session.Index(), m.session.Total())
	return m, nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Retry):
		sess, err := m.reviewer.Retry()
		return m, m.enterSession(sess, err)
	case key.Matches(keyMsg, m.keys.Stats):
		m.showStats()
	case key.Matches(keyMsg, m.keys.Menu), key.Matches(keyMsg, m.keys.Back):
		return m, m.showMenu()
	}
	return m, nil
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m, m.showMenu()
	}

	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)
	return m, cmd
}
