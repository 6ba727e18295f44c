package tick

import "time"

// ResumePolicy decides which level a resume lands on.
type ResumePolicy uint8

const (
	// ResumeRegular always resumes at Regular.
	ResumeRegular ResumePolicy = iota
	// ResumePrevious resumes at the last running level.
	ResumePrevious
)

// ControllerOption customises a Controller.
type ControllerOption func(*Controller)

// WithResumePolicy selects how SetPaused(false) and TogglePause resume.
func WithResumePolicy(p ResumePolicy) ControllerOption {
	return func(c *Controller) { c.resume = p }
}

// WithLevel sets the starting level.
func WithLevel(l Level) ControllerOption {
	return func(c *Controller) {
		if int(l) < numLevels {
			c.level = l
		}
	}
}

// Controller owns the current speed level. Every mutator is total.
type Controller struct {
	table  Table
	level  Level
	last   Level
	resume ResumePolicy
}

// NewController validates the table and returns a controller at Regular
// unless WithLevel says otherwise.
func NewController(table Table, opts ...ControllerOption) (*Controller, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{table: table, level: Regular, last: Regular}
	for _, opt := range opts {
		opt(c)
	}
	if c.level != Paused {
		c.last = c.level
	}
	return c, nil
}

// Level returns the active level.
func (c *Controller) Level() Level { return c.level }

// Paused reports whether the active level is Paused.
func (c *Controller) Paused() bool { return c.level == Paused }

// Interval resolves the active level. ok is false while paused.
func (c *Controller) Interval() (time.Duration, bool) {
	return c.table.Interval(c.level)
}

// Table returns the interval table in use.
func (c *Controller) Table() Table { return c.table }

// Increase moves one level faster, saturating at VeryFast.
func (c *Controller) Increase() {
	if c.level < VeryFast {
		c.set(c.level + 1)
	}
}

// Decrease moves one level slower, saturating at Paused.
func (c *Controller) Decrease() {
	if c.level > Paused {
		c.set(c.level - 1)
	}
}

// SetPaused forces Paused, or resumes according to the resume policy.
func (c *Controller) SetPaused(paused bool) {
	if paused {
		c.set(Paused)
		return
	}
	c.set(c.resumeLevel())
}

// TogglePause flips between Paused and the resume level.
func (c *Controller) TogglePause() {
	c.SetPaused(c.level != Paused)
}

func (c *Controller) resumeLevel() Level {
	if c.resume == ResumePrevious {
		return c.last
	}
	return Regular
}

func (c *Controller) set(l Level) {
	c.level = l
	if l != Paused {
		c.last = l
	}
}

// Apply folds a cycle's event batch into the controller. Only the last event
// of each kind takes effect; survivors run in arrival order.
func (c *Controller) Apply(events []Event) {
	for _, ev := range Coalesce(events) {
		switch ev.Kind {
		case IncreaseSpeed:
			c.Increase()
		case DecreaseSpeed:
			c.Decrease()
		case Pause:
			c.SetPaused(ev.Paused)
		case TogglePause:
			c.TogglePause()
		}
	}
}
