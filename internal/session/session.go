package session

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorter"
)

// Session owns one visualized sort: the input, the engine run, and the
// player that animates it.
type Session struct {
	ID     uuid.UUID
	Config *config.Config

	initial []int
	work    []int
	check   bool
	started bool

	board   *bars.Board
	player  *player.Player
	trace   []sorter.Action
	metrics []metrics.Metric
	tone    audio.Tone
	log     zerolog.Logger
}

// Recording is a finished run, detached from any surface.
type Recording struct {
	ID      uuid.UUID
	Engine  string
	Values  []int
	Actions []sorter.Action
	Check   bool
}

// New shuffles 1..cfg.Size with cfg.Seed and lays the bars out on surface.
// A nil surface uses the configured surface size and draws nothing.
func New(cfg *config.Config, surface bars.Surface, tone audio.Tone, log zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	values := sorter.Permutation(cfg.Size, rand.New(rand.NewSource(cfg.Seed)))
	return build(cfg, uuid.New(), values, surface, tone, log), nil
}

// FromTrace rebuilds a session whose actions were recorded earlier. The
// player is loaded and ready to animate; Start must not be called.
func FromTrace(cfg *config.Config, rec Recording, surface bars.Surface, tone audio.Tone, log zerolog.Logger) (*Session, error) {
	for i, a := range rec.Actions {
		if err := a.Validate(len(rec.Values)); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	if rec.Engine != "" {
		cfg.Engine = rec.Engine
	}

	s := build(cfg, rec.ID, rec.Values, surface, tone, log)
	s.work = sorter.Replay(rec.Values, rec.Actions)
	s.check = rec.Check
	s.started = true
	for _, a := range rec.Actions {
		s.record(a)
	}
	s.log.Debug().Int("actions", len(rec.Actions)).Msg("trace loaded")
	return s, nil
}

func build(cfg *config.Config, id uuid.UUID, values []int, surface bars.Surface, tone audio.Tone, log zerolog.Logger) *Session {
	if surface == nil {
		surface = bars.Discard{W: float64(cfg.Surface.Width), H: float64(cfg.Surface.Height)}
	}
	if tone == nil {
		tone = audio.Silent{}
	}
	geo := Layout(cfg.Layout, surface.Width(), surface.Height(), len(values))
	board := bars.NewBoard(values, geo)
	log = log.With().Str("run", id.String()).Str("engine", cfg.Engine).Logger()

	work := make([]int, len(values))
	copy(work, values)
	return &Session{
		ID:      id,
		Config:  cfg,
		initial: append([]int(nil), values...),
		work:    work,
		board:   board,
		player:  player.New(board, surface, tone, cfg.Speed(), log),
		metrics: metrics.Defaults(),
		tone:    tone,
		log:     log,
	}
}

// Layout picks the bar geometry for a surface.
func Layout(name string, w, h float64, n int) bars.Geometry {
	if name == config.LayoutClassic {
		return bars.Classic(w, h, n)
	}
	return bars.Fit(w, h, n)
}

func (s *Session) record(a sorter.Action) {
	s.trace = append(s.trace, a)
	metrics.Observe(s.metrics, a)
	s.player.Record(a)
}

// Start runs the engine to completion. Every action is scheduled by the time
// it returns; nothing has been drawn yet. A failed verification scan is
// logged and reported, not treated as an error.
func (s *Session) Start() (bool, error) {
	if s.started {
		return false, ErrAlreadyStarted
	}
	engine, err := sorter.Lookup(s.Config.Engine)
	if err != nil {
		return false, err
	}
	s.started = true

	s.log.Info().Int("size", len(s.work)).Dur("speed", s.Config.Speed()).Msg("sorting")
	s.check = engine(s.work, s.record)
	if !s.check {
		s.log.Warn().Ints("result", s.work).Msg("verification scan found a descending pair")
	}
	s.log.Info().
		Int("actions", len(s.trace)).
		Dur("duration", s.player.Duration()).
		Bool("check", s.check).
		Msg("sort recorded")
	return s.check, nil
}

func (s *Session) Board() *bars.Board        { return s.board }
func (s *Session) Player() *player.Player    { return s.player }
func (s *Session) Metrics() []metrics.Metric { return s.metrics }
func (s *Session) Check() bool               { return s.check }
func (s *Session) Initial() []int            { return append([]int(nil), s.initial...) }
func (s *Session) Result() []int             { return append([]int(nil), s.work...) }
func (s *Session) Trace() []sorter.Action    { return append([]sorter.Action(nil), s.trace...) }
func (s *Session) Logger() zerolog.Logger    { return s.log }

// ShiftRuns is the shifts-per-insertion series, if collected.
func (s *Session) ShiftRuns() []float64 {
	for _, m := range s.metrics {
		if sr, ok := m.(metrics.Series); ok {
			return sr.Series()
		}
	}
	return nil
}

func (s *Session) Recording() Recording {
	return Recording{
		ID:      s.ID,
		Engine:  s.Config.Engine,
		Values:  s.Initial(),
		Actions: s.Trace(),
		Check:   s.check,
	}
}

// Soundtrack lays the tones of the trace on the animation timeline, without
// touching the session's own board.
func (s *Session) Soundtrack() []audio.Event {
	scratch := bars.NewBoard(s.initial, s.board.Geo)
	sched := s.player.Scheduler()

	events := make([]audio.Event, 0, len(s.trace))
	for k, a := range s.trace {
		if note, ok := scratch.Apply(a); ok {
			events = append(events, audio.Event{At: sched.Delay(k + 1), Note: note})
		}
	}
	return events
}

// Close releases the tone output.
func (s *Session) Close() error {
	if c, ok := s.tone.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
