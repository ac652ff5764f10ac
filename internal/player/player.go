package player

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/sorter"
)

// Observer is told about every action as it fires.
type Observer func(tick int, a sorter.Action)

// Player replays recorded actions onto a board. On each firing it mutates
// the board, plays the tone, clears and redraws the surface, then returns
// every non-sorted bar to the default color.
type Player struct {
	sched     *Scheduler
	board     *bars.Board
	surface   bars.Surface
	tone      audio.Tone
	log       zerolog.Logger
	observers []Observer
}

func New(board *bars.Board, surface bars.Surface, tone audio.Tone, speed time.Duration, log zerolog.Logger) *Player {
	if surface == nil {
		surface = bars.Discard{}
	}
	if tone == nil {
		tone = audio.Silent{}
	}
	return &Player{
		sched:   NewScheduler(speed),
		board:   board,
		surface: surface,
		tone:    tone,
		log:     log,
	}
}

// Record is handed to the sort engine as its sorter.Recorder.
func (p *Player) Record(a sorter.Action) { p.sched.Record(a) }

func (p *Player) OnFire(o Observer) { p.observers = append(p.observers, o) }

func (p *Player) Board() *bars.Board           { return p.board }
func (p *Player) Scheduler() *Scheduler        { return p.sched }
func (p *Player) Done() bool                   { return p.sched.Pending() == 0 }
func (p *Player) Duration() time.Duration      { return p.sched.Delay(p.sched.Ticks()) }
func (p *Player) Progress() (fired, total int) { return p.sched.Fired(), p.sched.Ticks() }

// Draw renders the board as it stands, without firing anything.
func (p *Player) Draw() {
	p.surface.Clear()
	p.board.Draw(p.surface)
}

// Advance fires every action due by elapsed, measured from the time base.
func (p *Player) Advance(elapsed time.Duration) int {
	return p.sched.Advance(elapsed, p.fire)
}

// Finish fires everything still pending.
func (p *Player) Finish() int {
	return p.Advance(p.Duration())
}

func (p *Player) fire(tick int, a sorter.Action) {
	if note, ok := p.board.Apply(a); ok {
		p.tone.Play(note)
	}
	p.surface.Clear()
	p.board.Draw(p.surface)
	p.board.ResetColors()

	for _, o := range p.observers {
		o(tick, a)
	}
	p.log.Trace().Int("tick", tick).Stringer("action", a).Msg("fired")
}

// Run drives Advance from the wall clock, checking once per frame, until
// every action has fired or ctx is done. The time base is the call to Run.
func (p *Player) Run(ctx context.Context, frame time.Duration) error {
	start := time.Now()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for !p.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			p.Advance(now.Sub(start))
		}
	}
	return nil
}
