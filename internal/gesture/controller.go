package gesture

import (
	"time"

	"github.com/julianstephens/flipdeck/internal/constants"
)

// Controller holds the gesture state for the card on screen
type Controller struct {
	state State
	now   func() time.Time
}

type Option func(*Controller)

// WithClock replaces time.Now for event timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Handle(ev Event) []Effect {
	next, effects := Transition(c.state, ev)
	c.state = next
	return effects
}

func (c *Controller) Press(x, y float64) []Effect {
	return c.Handle(Down{X: x, Y: y, At: c.now()})
}

func (c *Controller) Drag(x, y float64) []Effect {
	return c.Handle(Move{X: x, Y: y})
}

func (c *Controller) Release() []Effect {
	return c.Handle(Up{At: c.now()})
}

func (c *Controller) Leave() []Effect {
	return c.Handle(Leave{At: c.now()})
}

func (c *Controller) CommitDone() []Effect {
	return c.Handle(CommitDone{})
}

// Tap feeds an instant press and release at the origin
func (c *Controller) Tap() []Effect {
	c.Press(0, 0)
	return c.Release()
}

// Swipe feeds a drag just past the threshold in dir and releases
func (c *Controller) Swipe(dir Direction) []Effect {
	dx := constants.SwipeThreshold + 1
	if dir == Left {
		dx = -dx
	}
	c.Press(0, 0)
	c.Drag(dx, 0)
	return c.Release()
}

func (c *Controller) IntentRight() float64 { return c.state.IntentRight() }
func (c *Controller) IntentLeft() float64  { return c.state.IntentLeft() }

// Reset drops all transient state, e.g. when the session is abandoned
func (c *Controller) Reset() {
	c.state = State{}
}
