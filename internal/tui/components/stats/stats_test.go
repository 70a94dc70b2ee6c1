package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
)

func TestStats_Render(t *testing.T) {
	items := []models.Item{
		{ID: 1, Prompt: "Taika Reform", Answer: "大化の改新"},
		{ID: 2, Prompt: "Heian-kyo", Answer: "平安京"},
		{ID: 3, Prompt: "Kamakura shogunate", Answer: "鎌倉幕府"},
	}
	scores := map[int]int{1: -2, 2: 3}

	m := New(80, 40)
	m.SetData(
		progress.Summarize([]int{1, 2, 3}, scores),
		progress.Categorize(items, scores),
		[]models.SessionRecord{{Label: "Set 1 (1-3)", Mode: models.ModeWeak, Tally: 2, Total: 3, FinishedAt: time.Now()}},
	)

	view := m.View()
	for _, want := range []string{"33% mastered", "Weak (1)", "Taika Reform", "-2", "Learning (0)", "Mastered (1)", "Heian-kyo", "Set 1 (1-3)", "2/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Kamakura") {
		t.Error("untouched item listed in a category")
	}
}
