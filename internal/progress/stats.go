package progress

import (
	"cmp"
	"math"
	"slices"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/models"
)

func IsMastered(score int) bool {
	return score >= constants.MasteryThreshold
}

// Classify maps a score onto its mastery class. Zero is untouched whether
// or not the item was ever reviewed.
func Classify(score int) models.Mastery {
	switch {
	case score < 0:
		return models.MasteryWeak
	case score == 0:
		return models.MasteryUntouched
	case IsMastered(score):
		return models.MasteryMastered
	default:
		return models.MasteryLearning
	}
}

// Summary counts item ids by mastery class
type Summary struct {
	Mastered  int
	Learning  int
	Weak      int
	Untouched int
	Total     int
}

// Summarize classifies every id against the score mapping; missing ids
// count as untouched.
func Summarize(ids []int, scores map[int]int) Summary {
	sum := Summary{Total: len(ids)}
	for _, id := range ids {
		switch Classify(scores[id]) {
		case models.MasteryMastered:
			sum.Mastered++
		case models.MasteryLearning:
			sum.Learning++
		case models.MasteryWeak:
			sum.Weak++
		default:
			sum.Untouched++
		}
	}
	return sum
}

// MasteredPct is the mastered share rounded to a whole percent
func (s Summary) MasteredPct() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Mastered) / float64(s.Total) * 100))
}

// Complete reports whether every id is mastered
func (s Summary) Complete() bool {
	return s.Total > 0 && s.Mastered == s.Total
}

// Categories holds reviewed items grouped for the stats screen
type Categories struct {
	Weak     []models.ScoredItem // lowest score first
	Learning []models.ScoredItem // highest score first
	Mastered []models.ScoredItem // by id
}

// Categorize groups items with a non-zero score. Untouched items are left out.
func Categorize(items []models.Item, scores map[int]int) Categories {
	var cats Categories
	for _, item := range items {
		scored := models.ScoredItem{Item: item, Score: scores[item.ID]}
		switch Classify(scored.Score) {
		case models.MasteryMastered:
			cats.Mastered = append(cats.Mastered, scored)
		case models.MasteryLearning:
			cats.Learning = append(cats.Learning, scored)
		case models.MasteryWeak:
			cats.Weak = append(cats.Weak, scored)
		}
	}

	slices.SortStableFunc(cats.Weak, func(a, b models.ScoredItem) int {
		return cmp.Compare(a.Score, b.Score)
	})
	slices.SortStableFunc(cats.Learning, func(a, b models.ScoredItem) int {
		return cmp.Compare(b.Score, a.Score)
	})
	slices.SortStableFunc(cats.Mastered, func(a, b models.ScoredItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return cats
}
