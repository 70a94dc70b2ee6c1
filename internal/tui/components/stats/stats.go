package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			MarginTop(1)

	masteredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	learningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	weakStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(6).
			Align(lipgloss.Right)
)

type Model struct {
	viewport viewport.Model
	summary  progress.Summary
	cats     progress.Categories
	recent   []models.SessionRecord
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetData(summary progress.Summary, cats progress.Categories, recent []models.SessionRecord) {
	m.summary = summary
	m.cats = cats
	m.recent = recent
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	var b strings.Builder

	s := m.summary
	b.WriteString(headerStyle.Render(fmt.Sprintf("Overall  %d%% mastered", s.MasteredPct())))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		masteredStyle.Render(fmt.Sprintf("mastered %d", s.Mastered)),
		learningStyle.Render(fmt.Sprintf("learning %d", s.Learning)),
		weakStyle.Render(fmt.Sprintf("weak %d", s.Weak)),
		mutedStyle.Render(fmt.Sprintf("untouched %d", s.Untouched)),
	)

	writeSection(&b, "Weak", weakStyle, m.cats.Weak)
	writeSection(&b, "Learning", learningStyle, m.cats.Learning)
	writeSection(&b, "Mastered", masteredStyle, m.cats.Mastered)

	if len(m.recent) > 0 {
		b.WriteString(headerStyle.Render("Recent sessions"))
		b.WriteString("\n")
		for _, rec := range m.recent {
			fmt.Fprintf(&b, "%s  %-28s %-9s %d/%d\n",
				mutedStyle.Render(rec.FinishedAt.Local().Format(constants.DefaultDateFormat)),
				rec.Label, rec.Mode, rec.Tally, rec.Total)
		}
	}

	m.viewport.SetContent(b.String())
}

func writeSection(b *strings.Builder, title string, style lipgloss.Style, items []models.ScoredItem) {
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("  none"))
		b.WriteString("\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "%s  %s  %s\n",
			scoreStyle.Render(style.Render(fmt.Sprintf("%+d", it.Score))),
			it.Prompt,
			mutedStyle.Render(it.Answer),
		)
	}
}
