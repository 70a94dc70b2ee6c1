package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flipdeck/internal/history"
	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
	"github.com/julianstephens/flipdeck/internal/review"
	"github.com/julianstephens/flipdeck/internal/tui/components/card"
	"github.com/julianstephens/flipdeck/internal/tui/components/stats"
)

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenCard
	ScreenResult
	ScreenStats
)

// MenuFormModel holds the values bound to the menu form
type MenuFormModel struct {
	SetID string
	Mode  models.Mode
}

type Model struct {
	reviewer *review.Reviewer
	history  *history.Log
	catalog  models.Catalog

	screen   Screen
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	menu     *MenuFormModel
	message  string
	session  *review.Session
	label    string
	mode     models.Mode
	result   review.Result
	card     card.Model
	stats    stats.Model
	quitting bool
	width    int
	height   int
}

// NewModel builds the review program. The history log may be nil.
func NewModel(reviewer *review.Reviewer, log *history.Log, catalog models.Catalog) Model {
	m := Model{
		reviewer: reviewer,
		history:  log,
		catalog:  catalog,
		screen:   ScreenMenu,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		menu:     &MenuFormModel{Mode: models.ModeNormal},
		card:     card.New(),
		stats:    stats.New(0, 0),
	}
	if sets := catalog.Sets(); len(sets) > 0 {
		m.menu.SetID = sets[0].ID
	}
	m.form = m.newMenuForm()
	return m
}

// StartWith skips the menu and opens a session straight away. When the
// selection is empty the menu is shown with the reason instead.
func (m Model) StartWith(set models.StudySet, mode models.Mode) Model {
	m.menu.SetID = set.ID
	m.menu.Mode = mode
	m.form = m.newMenuForm()
	m.startSession(set, mode)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == ScreenMenu {
		return m.form.Init()
	}
	return nil
}

func (m Model) Screen() Screen { return m.screen }

func (m Model) Message() string { return m.message }

func (m Model) Session() *review.Session { return m.session }

func (m *Model) newMenuForm() *huh.Form {
	scores := m.reviewer.Store().Load()

	var setOptions []huh.Option[string]
	for _, set := range m.catalog.Sets() {
		sum := progress.Summarize(set.IDs(), scores)
		label := fmt.Sprintf("%s  %d%% mastered", set.Label(), sum.MasteredPct())
		if sum.Complete() {
			label += "  ✓ complete"
		}
		setOptions = append(setOptions, huh.NewOption(label, set.ID))
	}

	var modeOptions []huh.Option[models.Mode]
	for _, mode := range models.Modes() {
		modeOptions = append(modeOptions, huh.NewOption(mode.Title(), mode))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Study set").
				Options(setOptions...).
				Value(&m.menu.SetID),
			huh.NewSelect[models.Mode]().
				Title("Mode").
				Options(modeOptions...).
				Value(&m.menu.Mode),
		),
	).WithShowHelp(false)
}

// startSession opens a session on the card screen, or returns to the menu
// with the empty-selection message.
func (m *Model) startSession(set models.StudySet, mode models.Mode) tea.Cmd {
	sess, err := m.reviewer.StartSession(set.IDs(), mode)
	m.label = set.Label()
	m.mode = mode
	return m.enterSession(sess, err)
}

func (m *Model) enterSession(sess *review.Session, err error) tea.Cmd {
	if err != nil {
		if !review.IsEmptySelection(err) {
			logger.Error("Failed to start session", "error", err)
		}
		m.message = err.Error()
		return m.showMenu()
	}

	m.message = ""
	m.session = sess
	m.card.SetItem(sess.Current(), sess.Index(), sess.Total())
	m.screen = ScreenCard
	return nil
}

func (m *Model) showMenu() tea.Cmd {
	m.session = nil
	m.card.Reset()
	m.screen = ScreenMenu
	m.form = m.newMenuForm()
	return m.form.Init()
}

func (m *Model) showStats() {
	items := m.reviewer.Items()
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	scores := m.reviewer.Store().Load()

	var recent []models.SessionRecord
	if m.history != nil {
		var err error
		recent, err = m.history.Recent(10)
		if err != nil {
			logger.Warn("Failed to load session history", "error", err)
		}
	}

	m.stats.SetData(progress.Summarize(ids, scores), progress.Categorize(items, scores), recent)
	m.screen = ScreenStats
}

// finishSession records the result and shows the result screen
func (m *Model) finishSession() {
	m.result = m.session.Result()
	m.screen = ScreenResult
	if m.history == nil {
		return
	}
	if _, err := m.history.Append(m.label, m.mode, m.result.Tally, m.result.Total); err != nil {
		logger.Warn("Failed to record session", "error", err)
	}
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.card.SetSize(m.width, m.height-4)
	m.stats.SetSize(m.width-4, max(m.height-6, 5))
}

func (m Model) ShortHelp() []key.Binding {
	switch m.screen {
	case ScreenCard:
		return []key.Binding{m.keys.Flip, m.keys.Forget, m.keys.Remember, m.keys.Back}
	case ScreenResult:
		return []key.Binding{m.keys.Retry, m.keys.Menu, m.keys.Stats, m.keys.Quit}
	case ScreenStats:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Back}
	default:
		return []key.Binding{m.keys.Stats, m.keys.Back, m.keys.Help}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		m.ShortHelp(),
		{m.keys.Help, m.keys.Quit},
	}
}

var _ tea.Model = Model{}
