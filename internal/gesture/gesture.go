// Package gesture turns raw pointer samples on a card into flips and
// swipe verdicts. Transition is a pure function; Controller wraps it with
// a clock for callers that feed live input.
package gesture

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/flipdeck/internal/constants"
)

type Phase int

const (
	Idle Phase = iota
	Tracking
	Committing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Committing:
		return "committing"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Direction is the side a card leaves by. Right means remembered.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

func (d Direction) Remembered() bool {
	return d == Right
}

// State is everything the card needs to render itself
type State struct {
	Phase   Phase
	Flipped bool
	// Direction is only meaningful while Committing
	Direction Direction

	StartX, StartY float64
	StartAt        time.Time
	DX, DY         float64
}

// IntentRight is how strongly the current drag leans toward remembered,
// from 0 to 1.
func (s State) IntentRight() float64 {
	return clamp(s.DX / (constants.SwipeThreshold * constants.IntentRampFactor))
}

func (s State) IntentLeft() float64 {
	return clamp(-s.DX / (constants.SwipeThreshold * constants.IntentRampFactor))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Event is a pointer sample or timer callback
type Event interface {
	isEvent()
}

// Down starts an interaction at a position
type Down struct {
	X, Y float64
	At   time.Time
}

type Move struct {
	X, Y float64
}

// Up ends an interaction
type Up struct {
	At time.Time
}

// Leave is the pointer leaving the card mid-drag; handled like Up
type Leave struct {
	At time.Time
}

// CommitDone fires when the exit animation scheduled by a commit finishes
type CommitDone struct{}

func (Down) isEvent()       {}
func (Move) isEvent()       {}
func (Up) isEvent()         {}
func (Leave) isEvent()      {}
func (CommitDone) isEvent() {}

// Effect is work the caller performs after a transition
type Effect interface {
	isEffect()
}

// Flip reports the new face after a tap
type Flip struct {
	Flipped bool
}

// ScheduleCommit asks the caller to deliver CommitDone after the delay
type ScheduleCommit struct {
	Direction Direction
	After     time.Duration
}

// Verdict is the graded result for the card, emitted once per commit
type Verdict struct {
	Remembered bool
}

func (Flip) isEffect()           {}
func (ScheduleCommit) isEffect() {}
func (Verdict) isEffect()        {}

// Transition applies ev to s. Taps are checked before swipes; a release
// that is neither snaps the card back without changing its face.
func Transition(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Down:
		if s.Phase == Committing {
			return s, nil
		}
		return State{
			Phase:   Tracking,
			Flipped: s.Flipped,
			StartX:  ev.X,
			StartY:  ev.Y,
			StartAt: ev.At,
		}, nil

	case Move:
		if s.Phase != Tracking {
			return s, nil
		}
		s.DX = ev.X - s.StartX
		s.DY = ev.Y - s.StartY
		return s, nil

	case Up:
		return release(s, ev.At)

	case Leave:
		return release(s, ev.At)

	case CommitDone:
		if s.Phase != Committing {
			return s, nil
		}
		return State{}, []Effect{Verdict{Remembered: s.Direction.Remembered()}}
	}
	return s, nil
}

func release(s State, at time.Time) (State, []Effect) {
	if s.Phase != Tracking {
		return s, nil
	}

	switch {
	case at.Sub(s.StartAt) < constants.TapTimeout && math.Abs(s.DX) < constants.TapJitter:
		flipped := !s.Flipped
		return State{Flipped: flipped}, []Effect{Flip{Flipped: flipped}}
	case s.DX > constants.SwipeThreshold:
		return commit(s, Right)
	case s.DX < -constants.SwipeThreshold:
		return commit(s, Left)
	default:
		return State{Flipped: s.Flipped}, nil
	}
}

func commit(s State, dir Direction) (State, []Effect) {
	s.Phase = Committing
	s.Direction = dir
	return s, []Effect{ScheduleCommit{Direction: dir, After: constants.CommitAnimation}}
}
