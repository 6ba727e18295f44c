package session

import (
	"iter"
	"strconv"
	"time"

	"tickgol/internal/core"
	"tickgol/internal/sims/life"
	"tickgol/internal/tick"
)

// Session owns one board together with the speed controller and tick gate
// that decide when it advances. It is not safe for concurrent use; hosts
// must serialise every call.
type Session struct {
	cfg        Config
	grid       *core.Grid
	engine     *life.Engine
	speed      *tick.Controller
	gate       *tick.Gate
	seed       int64
	generation int
	stepped    bool
	stats      life.Stats
}

// New validates cfg and builds a seeded session.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height, cfg.Edges)
	if err != nil {
		return nil, err
	}
	speed, err := tick.NewController(cfg.Table, tick.WithLevel(cfg.Level), tick.WithResumePolicy(cfg.Resume))
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		grid:   grid,
		engine: life.NewEngine(),
		speed:  speed,
		gate:   tick.NewGate(0),
	}
	s.gate.Configure(speed.Interval())
	s.Reset(cfg.Seed)
	return s, nil
}

// Update runs one host cycle: it folds the cycle's control events into the
// speed controller, feeds elapsed into the gate and steps the board when the
// gate fires. It reports whether a step happened.
func (s *Session) Update(elapsed time.Duration, events []tick.Event) bool {
	s.speed.Apply(events)
	s.gate.Configure(s.speed.Interval())
	s.stepped = s.gate.Advance(elapsed)
	if s.stepped {
		s.advance()
	}
	return s.stepped
}

// Step advances one generation immediately, bypassing the gate.
func (s *Session) Step() {
	s.advance()
	s.stepped = true
}

func (s *Session) advance() {
	s.stats = s.engine.Step(s.grid)
	s.generation++
}

// Reset reseeds the board with the configured fill and restarts the
// generation counter. The speed level is kept.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	life.Seed(s.grid, s.cfg.Fill, seed)
	if p, ok := life.Lookup(s.cfg.Pattern); ok {
		life.Stamp(s.grid, p, core.Position{X: s.grid.Width() / 2, Y: s.grid.Height() / 2})
	}
	s.gate.Reset()
	s.generation = 0
	s.stepped = false
	s.stats = life.Stats{Alive: s.grid.CountAlive()}
}

// Grid exposes the board for reading. Callers must not modify it.
func (s *Session) Grid() *core.Grid { return s.grid }

// Cells yields every position and its state.
func (s *Session) Cells() iter.Seq2[core.Position, core.Cell] { return s.grid.All() }

// Stepped reports whether the most recent Update or Step advanced the board.
func (s *Session) Stepped() bool { return s.stepped }

// Generation returns the number of steps since the last reset.
func (s *Session) Generation() int { return s.generation }

// Level returns the active speed level.
func (s *Session) Level() tick.Level { return s.speed.Level() }

// Speed exposes the controller for hosts that drive it directly.
func (s *Session) Speed() *tick.Controller { return s.speed }

// Stats describes the current generation.
func (s *Session) Stats() life.Stats { return s.stats }

// Seed returns the seed used by the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Config returns the configuration the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Parameters reports the values hosts show in their status panels.
func (s *Session) Parameters() core.ParameterSnapshot {
	interval := "-"
	if d, ok := s.speed.Interval(); ok {
		interval = d.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "size", Label: "Dimension", Type: core.ParamTypeString, Value: strconv.Itoa(s.grid.Width()) + " x " + strconv.Itoa(s.grid.Height())},
				{Key: "edges", Label: "Edges", Type: core.ParamTypeString, Value: s.grid.Edges().String()},
				{Key: "fill", Label: "Fill", Type: core.ParamTypeString, Value: string(s.cfg.Fill)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				{Key: "generation", Label: "Step", Type: core.ParamTypeInt, Value: strconv.Itoa(s.generation)},
				{Key: "alive", Label: "Live cells", Type: core.ParamTypeInt, Value: strconv.Itoa(s.stats.Alive)},
				{Key: "speed", Label: "Speed", Type: core.ParamTypeString, Value: s.speed.Level().String()},
				{Key: "interval", Label: "Interval", Type: core.ParamTypeDuration, Value: interval},
				{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.speed.Paused())},
			},
		},
	}}
}
