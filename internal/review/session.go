// Package review runs a review session over a fixed worklist.
package review

import (
	"errors"
	"fmt"
	"math"

	"github.com/julianstephens/flipdeck/internal/models"
)

var ErrSessionNotActive = errors.New("session is not active")

// VerdictRecorder receives each verdict as it is submitted
type VerdictRecorder interface {
	RecordVerdict(itemID int, remembered bool)
}

type State int

const (
	Active State = iota
	Complete
	Abandoned
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Complete:
		return "complete"
	case Abandoned:
		return "abandoned"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session walks a worklist one item at a time. Verdicts are final: each is
// recorded as soon as it is submitted and cannot be revisited.
type Session struct {
	worklist []models.Item
	recorder VerdictRecorder
	index    int
	tally    int
	state    State
}

// NewSession starts a session at the first item. It panics if worklist is
// empty; callers check the selection first.
func NewSession(worklist []models.Item, recorder VerdictRecorder) *Session {
	if len(worklist) == 0 {
		panic("review: session started with an empty worklist")
	}
	return &Session{
		worklist: worklist,
		recorder: recorder,
		state:    Active,
	}
}

// Current returns the item under review. Once the session has ended it
// returns the last item shown.
func (s *Session) Current() models.Item {
	return s.worklist[min(s.index, len(s.worklist)-1)]
}

// Index is the zero-based position of the current item
func (s *Session) Index() int       { return s.index }
func (s *Session) Total() int       { return len(s.worklist) }
func (s *Session) Tally() int       { return s.tally }
func (s *Session) State() State     { return s.state }
func (s *Session) IsComplete() bool { return s.state == Complete }

// SubmitVerdict records the verdict for the current item and advances
func (s *Session) SubmitVerdict(remembered bool) error {
	if s.state != Active {
		return fmt.Errorf("%w: %s", ErrSessionNotActive, s.state)
	}

	item := s.worklist[s.index]
	if s.recorder != nil {
		s.recorder.RecordVerdict(item.ID, remembered)
	}
	if remembered {
		s.tally++
	}

	if s.index == len(s.worklist)-1 {
		s.state = Complete
		return nil
	}
	s.index++
	return nil
}

// Abandon drops the rest of the worklist. Verdicts already submitted stay
// recorded.
func (s *Session) Abandon() {
	if s.state == Active {
		s.state = Abandoned
	}
}

// Result is the outcome reported when a session ends
type Result struct {
	Tally int
	Total int
}

func (s *Session) Result() Result {
	return Result{Tally: s.tally, Total: len(s.worklist)}
}

// Percent is the remembered share rounded to a whole percent
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return int(math.Round(float64(r.Tally) / float64(r.Total) * 100))
}

func (r Result) Perfect() bool {
	return r.Total > 0 && r.Tally == r.Total
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Tally, r.Total)
}
