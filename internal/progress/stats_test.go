package progress

import (
	"testing"

	"github.com/julianstephens/flipdeck/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  models.Mastery
	}{
		{-5, models.MasteryWeak},
		{-1, models.MasteryWeak},
		{0, models.MasteryUntouched},
		{1, models.MasteryLearning},
		{2, models.MasteryLearning},
		{3, models.MasteryMastered},
		{9, models.MasteryMastered},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	scores := map[int]int{1: 3, 2: 1, 3: -1, 4: 0, 99: 5}
	sum := Summarize([]int{1, 2, 3, 4, 5}, scores)

	want := Summary{Mastered: 1, Learning: 1, Weak: 1, Untouched: 2, Total: 5}
	if sum != want {
		t.Errorf("Summarize() = %+v, want %+v", sum, want)
	}
	if sum.MasteredPct() != 20 {
		t.Errorf("MasteredPct() = %d, want 20", sum.MasteredPct())
	}
	if sum.Complete() {
		t.Error("Complete() = true, want false")
	}
}

func TestSummary_Edges(t *testing.T) {
	if pct := (Summary{}).MasteredPct(); pct != 0 {
		t.Errorf("MasteredPct() of empty summary = %d, want 0", pct)
	}
	if (Summary{}).Complete() {
		t.Error("empty summary reported complete")
	}

	full := Summarize([]int{1, 2, 3}, map[int]int{1: 3, 2: 4, 3: 3})
	if !full.Complete() || full.MasteredPct() != 100 {
		t.Errorf("fully mastered summary = %+v", full)
	}

	third := Summarize([]int{1, 2, 3}, map[int]int{1: 3})
	if third.MasteredPct() != 33 {
		t.Errorf("MasteredPct() = %d, want 33", third.MasteredPct())
	}
}

func TestCategorize(t *testing.T) {
	items := []models.Item{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}, {ID: 7}, {ID: 8},
	}
	scores := map[int]int{1: -1, 2: 2, 3: -3, 4: 1, 5: 4, 6: 3, 8: 0}

	cats := Categorize(items, scores)

	assertIDs := func(name string, got []models.ScoredItem, want []int) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("%s = %v, want ids %v", name, got, want)
		}
		for i := range want {
			if got[i].ID != want[i] {
				t.Errorf("%s[%d] = %d, want %d", name, i, got[i].ID, want[i])
			}
		}
	}

	assertIDs("Weak", cats.Weak, []int{3, 1})
	assertIDs("Learning", cats.Learning, []int{2, 4})
	assertIDs("Mastered", cats.Mastered, []int{5, 6})
}
