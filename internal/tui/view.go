package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/flipdeck/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.screen {
	case ScreenCard:
		content = m.viewCard()
	case ScreenResult:
		content = m.viewResult()
	case ScreenStats:
		content = docStyle.Render(m.stats.View())
	default:
		content = m.viewMenu()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(constants.AppName)
	var sub string
	switch m.screen {
	case ScreenCard:
		sub = fmt.Sprintf("%s · %s", m.label, m.mode.Title())
	case ScreenResult:
		sub = "Session complete"
	case ScreenStats:
		sub = "Statistics"
	default:
		sub = "Choose a study set"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, subtitleStyle.Render(sub))
}

func (m Model) viewMenu() string {
	var parts []string
	if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message))
	}
	if len(m.catalog.Sets()) == 0 {
		parts = append(parts, plainStyle.Render("The deck is empty. Point --deck at a deck file."))
	} else {
		parts = append(parts, m.form.View())
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewCard() string {
	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		m.card.View(),
	)
}

func (m Model) viewResult() string {
	r := m.result

	msg := plainStyle.Render("Keep reviewing to make it stick.")
	if r.Perfect() {
		msg = perfectStyle.Render("Perfect! You've mastered this set.")
	} else if r.Percent() >= 80 {
		msg = passStyle.Render("Passing score! Go over the ones you missed.")
	}

	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			scoreStyle.Render(fmt.Sprintf("%d%%", r.Percent())),
			plainStyle.Render(fmt.Sprintf("%s remembered", r)),
			"",
			msg,
			"",
			"[r] Retry   [enter] Menu   [ctrl+s] Statistics",
		),
	)
}
