// Package selector builds the ordered worklist for a review session.
package selector

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/models"
)

type options struct {
	rng *rand.Rand
}

type Option func(*options)

// WithRand sets the source used to shuffle normal-mode worklists
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Select filters all down to targetIDs, keeping content order, then
// applies the mode: intensive keeps negative scores, weak keeps scores
// below the mastery threshold (both sorted lowest first, ties in content
// order) and normal keeps everything in shuffled order. Missing scores
// count as zero. An empty result is valid.
func Select(all []models.Item, targetIDs []int, mode models.Mode, scores map[int]int, opts ...Option) []models.Item {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	targets := make(map[int]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = struct{}{}
	}

	picked := make([]models.Item, 0, len(targetIDs))
	for _, item := range all {
		if _, ok := targets[item.ID]; ok {
			picked = append(picked, item)
		}
	}

	switch mode {
	case models.ModeIntensive:
		picked = keep(picked, func(it models.Item) bool { return scores[it.ID] < 0 })
		sortByScore(picked, scores)
	case models.ModeWeak:
		picked = keep(picked, func(it models.Item) bool { return scores[it.ID] < constants.MasteryThreshold })
		sortByScore(picked, scores)
	default:
		shuffle(picked, o.rng)
	}
	return picked
}

func keep(items []models.Item, pred func(models.Item) bool) []models.Item {
	return slices.DeleteFunc(items, func(it models.Item) bool { return !pred(it) })
}

func sortByScore(items []models.Item, scores map[int]int) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		return cmp.Compare(scores[a.ID], scores[b.ID])
	})
}

// shuffle is a Fisher-Yates pass from the last index down to 1
func shuffle(items []models.Item, rng *rand.Rand) {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(items) - 1; i > 0; i-- {
		j := intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
