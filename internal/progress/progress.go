// Package progress keeps per-item mastery scores and applies weekly decay
// each time they are read.
package progress

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/storage"
)

// Entry is the persisted state of one reviewed item
type Entry struct {
	Score       int
	LastUpdated time.Time
}

// Store reads and writes the score and timestamp documents over a KV.
// Persistence failures never reach the caller: failed reads behave like an
// empty store and failed writes are logged and dropped.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	now func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// state is the in-memory form of both documents. stamps holds epoch
// milliseconds, the format the timestamp document is stored in.
type state struct {
	scores map[int]int
	stamps map[int]int64
}

func emptyState() state {
	return state{scores: map[int]int{}, stamps: map[int]int64{}}
}

// Load returns the current scores after decay. Backfilled timestamps and
// decayed scores are written back before returning.
func (s *Store) Load() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _ := s.load()
	return st.scores
}

// RecordVerdict moves the item's score one step up or down and stamps it
// with the current time.
func (s *Store) RecordVerdict(itemID int, remembered bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, now := s.load()
	delta := -1
	if remembered {
		delta = 1
	}
	st.scores[itemID] += delta
	st.stamps[itemID] = now.UnixMilli()

	logger.Debug("Recorded verdict", "item", itemID, "remembered", remembered, "score", st.scores[itemID])
	s.persist(st)
}

// Snapshot returns the decayed entries with their timestamps
func (s *Store) Snapshot() map[int]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, now := s.load()
	entries := make(map[int]Entry, len(st.scores))
	for id, score := range st.scores {
		last := now
		if ms, ok := st.stamps[id]; ok {
			last = time.UnixMilli(ms)
		}
		entries[id] = Entry{Score: score, LastUpdated: last}
	}
	return entries
}

// load must be called with mu held
func (s *Store) load() (state, time.Time) {
	now := s.now()
	st := emptyState()

	scores, found, err := readDoc[int](s.kv, constants.ProgressScoresKey)
	if err != nil {
		logger.Warn("Failed to load progress, starting empty", "error", err)
		return st, now
	}
	if found {
		st.scores = scores
	}

	stamps, found, err := readDoc[int64](s.kv, constants.ProgressTimestampsKey)
	if err != nil {
		logger.Warn("Failed to load progress timestamps, starting empty", "error", err)
		return emptyState(), now
	}

	dirty := false
	if found {
		st.stamps = stamps
	} else if len(st.scores) > 0 {
		for id := range st.scores {
			st.stamps[id] = now.UnixMilli()
		}
		dirty = true
		logger.Info("Backfilled progress timestamps", "items", len(st.scores))
	}

	for id, score := range st.scores {
		if score <= 0 {
			continue
		}
		last := now
		if ms, ok := st.stamps[id]; ok {
			last = time.UnixMilli(ms)
		}
		weeks := int(now.Sub(last) / constants.OneWeek)
		if weeks < 1 {
			continue
		}
		decayed := max(0, score-weeks)
		if decayed != score {
			st.scores[id] = decayed
			st.stamps[id] = now.UnixMilli()
			dirty = true
			logger.Debug("Decayed score", "item", id, "from", score, "to", decayed, "weeks", weeks)
		}
	}

	if dirty {
		s.persist(st)
	}
	return st, now
}

// persist writes both documents in one SetMany call
func (s *Store) persist(st state) {
	scores, err := json.Marshal(st.scores)
	if err != nil {
		logger.Warn("Failed to encode progress", "error", err)
		return
	}
	stamps, err := json.Marshal(st.stamps)
	if err != nil {
		logger.Warn("Failed to encode progress timestamps", "error", err)
		return
	}

	err = s.kv.SetMany(map[string]string{
		constants.ProgressScoresKey:     string(scores),
		constants.ProgressTimestampsKey: string(stamps),
	})
	if err != nil {
		logger.Warn("Failed to save progress", "error", err)
	}
}

// Check reports whether both progress documents in kv decode. Load treats
// an undecodable document as empty, so this is the only way to notice one.
func Check(kv storage.KV) error {
	if _, _, err := readDoc[int](kv, constants.ProgressScoresKey); err != nil {
		return fmt.Errorf("%s: %w", constants.ProgressScoresKey, err)
	}
	if _, _, err := readDoc[int64](kv, constants.ProgressTimestampsKey); err != nil {
		return fmt.Errorf("%s: %w", constants.ProgressTimestampsKey, err)
	}
	return nil
}

func readDoc[V int | int64](kv storage.KV, key string) (map[int]V, bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	doc := map[int]V{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false, err
	}
	if doc == nil {
		// "null" decodes to a nil map
		doc = map[int]V{}
	}
	return doc, true, nil
}
