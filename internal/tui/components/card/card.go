package card

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/flipdeck/internal/gesture"
	"github.com/julianstephens/flipdeck/internal/models"
)

// Terminal cells are much coarser than pixels; drag distances are scaled
// so a swipe needs roughly a dozen columns.
const (
	unitsPerColumn = 8.0
	unitsPerRow    = 16.0
)

// CommitDoneMsg is delivered when the exit animation of a swiped card ends
type CommitDoneMsg struct{}

// VerdictMsg carries the grade for the card that just left
type VerdictMsg struct {
	ItemID     int
	Remembered bool
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	rememberColor = lipgloss.Color("42")
	forgetColor   = lipgloss.Color("203")
)

type Model struct {
	item     models.Item
	index    int
	total    int
	gestures *gesture.Controller
	width    int
	height   int
}

func New(opts ...gesture.Option) Model {
	return Model{gestures: gesture.NewController(opts...)}
}

// SetItem shows item as card index+1 of total, front face up
func (m *Model) SetItem(item models.Item, index, total int) {
	m.item = item
	m.index = index
	m.total = total
	m.gestures.Reset()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Item() models.Item { return m.item }

// Gesture exposes the drag state, mostly for tests
func (m Model) Gesture() gesture.State { return m.gestures.State() }

func (m Model) Committing() bool {
	return m.gestures.State().Phase == gesture.Committing
}

func (m Model) Flipped() bool {
	return m.gestures.State().Flipped
}

// Reset cancels any drag or pending commit
func (m *Model) Reset() {
	m.gestures.Reset()
}

// Tap flips the card as if it were clicked
func (m *Model) Tap() tea.Cmd {
	return m.apply(m.gestures.Tap())
}

// Swipe grades the card as if it were dragged off to one side
func (m *Model) Swipe(remembered bool) tea.Cmd {
	dir := gesture.Left
	if remembered {
		dir = gesture.Right
	}
	return m.apply(m.gestures.Swipe(dir))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, y := float64(msg.X)*unitsPerColumn, float64(msg.Y)*unitsPerRow
		switch msg.Action {
		case tea.MouseActionPress:
			return m, m.apply(m.gestures.Press(x, y))
		case tea.MouseActionMotion:
			return m, m.apply(m.gestures.Drag(x, y))
		case tea.MouseActionRelease:
			return m, m.apply(m.gestures.Release())
		}

	case tea.BlurMsg:
		// the terminal lost focus mid-drag; treat like the pointer leaving the card
		return m, m.apply(m.gestures.Leave())

	case CommitDoneMsg:
		return m, m.apply(m.gestures.CommitDone())
	}
	return m, nil
}

// apply turns gesture effects into commands
func (m *Model) apply(effects []gesture.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case gesture.ScheduleCommit:
			cmds = append(cmds, tea.Tick(eff.After, func(time.Time) tea.Msg {
				return CommitDoneMsg{}
			}))
		case gesture.Verdict:
			id, remembered := m.item.ID, eff.Remembered
			cmds = append(cmds, func() tea.Msg {
				return VerdictMsg{ItemID: id, Remembered: remembered}
			})
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	st := m.gestures.State()

	var body strings.Builder
	body.WriteString(idStyle.Render(fmt.Sprintf("#%d", m.item.ID)))
	body.WriteString("\n\n")
	if st.Flipped {
		body.WriteString(labelStyle.Render("ANSWER"))
		body.WriteString("\n\n")
		body.WriteString(answerStyle.Render(m.item.Answer))
		if m.item.HasNote() {
			body.WriteString("\n\n")
			body.WriteString(noteStyle.Render(m.item.Note))
		}
		body.WriteString("\n\n")
		body.WriteString(hintStyle.Render("tap to see the question"))
	} else {
		body.WriteString(labelStyle.Render("QUESTION"))
		body.WriteString("\n\n")
		body.WriteString(promptStyle.Render(m.item.Prompt))
		body.WriteString("\n\n")
		body.WriteString(hintStyle.Render("tap to reveal the answer"))
	}

	width := max(30, min(60, m.width-10))
	frame := frameStyle.Width(width)
	switch {
	case st.Phase == gesture.Committing && st.Direction == gesture.Right:
		frame = frame.BorderForeground(rememberColor).Faint(true)
	case st.Phase == gesture.Committing:
		frame = frame.BorderForeground(forgetColor).Faint(true)
	case st.IntentRight() >= 0.5:
		frame = frame.BorderForeground(rememberColor)
	case st.IntentLeft() >= 0.5:
		frame = frame.BorderForeground(forgetColor)
	}

	card := frame.Render(body.String())
	// nudge the card sideways while it is dragged
	shift := int(st.DX / unitsPerColumn)
	if shift > 0 {
		card = lipgloss.NewStyle().MarginLeft(min(shift, 12)).Render(card)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		m.progressLine(width),
		"",
		card,
		"",
		m.intentLine(st),
	)
}

func (m Model) progressLine(width int) string {
	counter := fmt.Sprintf("%d / %d", m.index+1, m.total)
	barWidth := max(10, width-len(counter)-2)
	filled := 0
	if m.total > 0 {
		filled = barWidth * m.index / m.total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return hintStyle.Render(counter) + "  " + hintStyle.Render(bar)
}

// intentLine fades the two verdict markers in as the card is dragged
func (m Model) intentLine(st gesture.State) string {
	forget := lipgloss.NewStyle().Foreground(forgetColor)
	remember := lipgloss.NewStyle().Foreground(rememberColor)
	if st.IntentLeft() >= 0.5 || (st.Phase == gesture.Committing && st.Direction == gesture.Left) {
		forget = forget.Bold(true).Reverse(true)
	}
	if st.IntentRight() >= 0.5 || (st.Phase == gesture.Committing && st.Direction == gesture.Right) {
		remember = remember.Bold(true).Reverse(true)
	}
	return forget.Render(" ✕ not yet ") + "     " + hintStyle.Render("tap to flip · swipe to grade") + "     " + remember.Render(" ◯ got it ")
}
