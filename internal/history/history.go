// Package history keeps a capped log of finished review sessions.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/storage"
)

// Log stores session records under their own key, newest last. It is
// independent of the progress documents.
type Log struct {
	kv    storage.KV
	limit int
	now   func() time.Time
}

type Option func(*Log)

func WithLimit(n int) Option {
	return func(l *Log) {
		l.limit = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func New(kv storage.KV, opts ...Option) *Log {
	l := &Log{
		kv:    kv,
		limit: constants.MaxSessionHistory,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records a finished session and drops the oldest records past the
// limit. The stored record is returned with its id and time filled in.
func (l *Log) Append(label string, mode models.Mode, tally, total int) (models.SessionRecord, error) {
	records, err := l.List()
	if err != nil {
		return models.SessionRecord{}, err
	}

	rec := models.SessionRecord{
		ID:         uuid.New().String(),
		Label:      label,
		Mode:       mode,
		Tally:      tally,
		Total:      total,
		FinishedAt: l.now().UTC(),
	}
	records = append(records, rec)
	if len(records) > l.limit {
		records = records[len(records)-l.limit:]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("failed to encode session history: %w", err)
	}
	if err := l.kv.Set(constants.SessionHistoryKey, string(data)); err != nil {
		return models.SessionRecord{}, fmt.Errorf("failed to save session history: %w", err)
	}
	return rec, nil
}

// List returns every stored record, oldest first
func (l *Log) List() ([]models.SessionRecord, error) {
	raw, ok, err := l.kv.Get(constants.SessionHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session history: %w", err)
	}
	if !ok {
		return []models.SessionRecord{}, nil
	}

	var records []models.SessionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to parse session history: %w", err)
	}
	return records, nil
}

// Recent returns up to n records, newest first
func (l *Log) Recent(n int) ([]models.SessionRecord, error) {
	records, err := l.List()
	if err != nil {
		return nil, err
	}
	n = max(n, 0)
	out := make([]models.SessionRecord, 0, min(n, len(records)))
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out, nil
}
