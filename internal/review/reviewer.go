package review

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
	"github.com/julianstephens/flipdeck/internal/selector"
)

// EmptySelectionError reports that a mode found nothing to review in the
// requested ids. It is not a failure; Error returns the message to show.
type EmptySelectionError struct {
	Mode models.Mode
}

func (e *EmptySelectionError) Error() string {
	return e.Mode.EmptyMessage()
}

// IsEmptySelection reports whether err is an *EmptySelectionError
func IsEmptySelection(err error) bool {
	var empty *EmptySelectionError
	return errors.As(err, &empty)
}

// Reviewer starts sessions over a loaded deck and remembers the last
// request so it can be retried.
type Reviewer struct {
	items []models.Item
	store *progress.Store
	rng   *rand.Rand

	lastIDs  []int
	lastMode models.Mode
	started  bool
}

type ReviewerOption func(*Reviewer)

// WithShuffle fixes the random source used for normal mode
func WithShuffle(rng *rand.Rand) ReviewerOption {
	return func(r *Reviewer) {
		r.rng = rng
	}
}

func NewReviewer(items []models.Item, store *progress.Store, opts ...ReviewerOption) *Reviewer {
	r := &Reviewer{
		items: items,
		store: store,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartSession selects a worklist for the ids and mode and starts a
// session over it. An empty selection returns *EmptySelectionError.
func (r *Reviewer) StartSession(itemIDs []int, mode models.Mode) (*Session, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid mode %q", mode)
	}

	r.lastIDs = slices.Clone(itemIDs)
	r.lastMode = mode
	r.started = true

	var opts []selector.Option
	if r.rng != nil {
		opts = append(opts, selector.WithRand(r.rng))
	}
	worklist := selector.Select(r.items, itemIDs, mode, r.store.Load(), opts...)
	if len(worklist) == 0 {
		logger.Debug("Empty selection", "mode", mode, "targets", len(itemIDs))
		return nil, &EmptySelectionError{Mode: mode}
	}

	logger.Debug("Starting session", "mode", mode, "items", len(worklist))
	return NewSession(worklist, r.store), nil
}

// Retry starts a new session with the ids and mode of the last request
func (r *Reviewer) Retry() (*Session, error) {
	if !r.started {
		return nil, errors.New("no previous session to retry")
	}
	return r.StartSession(r.lastIDs, r.lastMode)
}

// Items returns the loaded deck
func (r *Reviewer) Items() []models.Item {
	return r.items
}

// Store returns the progress store sessions record into
func (r *Reviewer) Store() *progress.Store {
	return r.store
}
