package card

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/flipdeck/internal/gesture"
	"github.com/julianstephens/flipdeck/internal/models"
)

// collect runs cmd and any batched commands, skipping ticks
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		// a scheduled tick; the test delivers CommitDoneMsg itself
		return nil
	}
}

func setupTestCard(t *testing.T) Model {
	t.Helper()
	m := New()
	m.SetSize(80, 24)
	m.SetItem(models.Item{ID: 42, Prompt: "Kamakura shogunate", Answer: "鎌倉幕府", Note: "1185"}, 0, 3)
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestCard_ClickFlips(t *testing.T) {
	m := setupTestCard(t)

	m, _ = m.Update(mouse(tea.MouseActionPress, 40, 10))
	m, cmd := m.Update(mouse(tea.MouseActionRelease, 40, 10))

	if !m.Flipped() {
		t.Error("card not flipped after click")
	}
	if msgs := collect(cmd); len(msgs) != 0 {
		t.Errorf("click produced messages %v, want none", msgs)
	}
	if !strings.Contains(m.View(), "鎌倉幕府") || !strings.Contains(m.View(), "1185") {
		t.Error("flipped card does not show the answer and note")
	}
}

func TestCard_DragRightGradesRemembered(t *testing.T) {
	m := setupTestCard(t)

	m, _ = m.Update(mouse(tea.MouseActionPress, 20, 10))
	m, _ = m.Update(mouse(tea.MouseActionMotion, 26, 10))
	if m.Gesture().IntentRight() <= 0 {
		t.Error("no rightward intent while dragging")
	}
	m, _ = m.Update(mouse(tea.MouseActionMotion, 32, 11))
	m, cmd := m.Update(mouse(tea.MouseActionRelease, 32, 11))
	if !m.Committing() {
		t.Fatalf("card not committing after drag, state %+v", m.Gesture())
	}
	if cmd == nil {
		t.Fatal("commit did not schedule the exit animation")
	}

	m, cmd = m.Update(CommitDoneMsg{})
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0] != (VerdictMsg{ItemID: 42, Remembered: true}) {
		t.Errorf("messages after commit = %v, want one remembered verdict", msgs)
	}
	if m.Committing() || m.Flipped() {
		t.Error("card state not reset after commit")
	}

	_, cmd = m.Update(CommitDoneMsg{})
	if msgs := collect(cmd); len(msgs) != 0 {
		t.Errorf("second CommitDoneMsg produced %v", msgs)
	}
}

func TestCard_BlurEndsDrag(t *testing.T) {
	m := setupTestCard(t)

	m, _ = m.Update(mouse(tea.MouseActionPress, 40, 10))
	m, _ = m.Update(mouse(tea.MouseActionMotion, 20, 10))
	m, _ = m.Update(tea.BlurMsg{})

	if st := m.Gesture(); st.Phase != gesture.Committing || st.Direction != gesture.Left {
		t.Errorf("state after blur = %+v, want committing left", st)
	}
}

func TestCard_IgnoresOtherButtons(t *testing.T) {
	m := setupTestCard(t)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Gesture().Phase != gesture.Idle {
		t.Errorf("wheel event started tracking: %+v", m.Gesture())
	}
}

func TestCard_KeyboardGrades(t *testing.T) {
	m := setupTestCard(t)

	m.Tap()
	if !m.Flipped() {
		t.Fatal("Tap() did not flip")
	}
	m.Swipe(false)
	_, cmd := m.Update(CommitDoneMsg{})
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0] != (VerdictMsg{ItemID: 42, Remembered: false}) {
		t.Errorf("messages = %v, want one not-remembered verdict", msgs)
	}
}

func TestCard_SetItemResets(t *testing.T) {
	m := setupTestCard(t)
	m.Tap()
	m.SetItem(models.Item{ID: 7, Prompt: "Heian-kyo", Answer: "平安京"}, 1, 3)

	if m.Flipped() {
		t.Error("new card starts flipped")
	}
	view := m.View()
	if !strings.Contains(view, "Heian-kyo") || !strings.Contains(view, "2 / 3") {
		t.Errorf("view does not show the new prompt and counter:\n%s", view)
	}
}
