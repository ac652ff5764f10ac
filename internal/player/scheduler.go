package player

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorter"
)

type entry struct {
	due    time.Duration
	tick   int
	action sorter.Action
}

// Scheduler turns recorded actions into a timeline. The k-th recorded action
// is due k*speed after the time base, so due times strictly increase with
// emission order and the queue never needs reordering.
type Scheduler struct {
	speed time.Duration
	ticks int
	queue []entry
	head  int
}

func NewScheduler(speed time.Duration) *Scheduler {
	return &Scheduler{speed: speed}
}

// Record is a sorter.Recorder.
func (s *Scheduler) Record(a sorter.Action) {
	s.ticks++
	s.queue = append(s.queue, entry{
		due:    s.Delay(s.ticks),
		tick:   s.ticks,
		action: a,
	})
}

// Delay is the fire time of the k-th action, 1-indexed.
func (s *Scheduler) Delay(k int) time.Duration {
	return time.Duration(k) * s.speed
}

func (s *Scheduler) Speed() time.Duration { return s.speed }
func (s *Scheduler) Ticks() int           { return s.ticks }
func (s *Scheduler) Pending() int         { return len(s.queue) - s.head }
func (s *Scheduler) Fired() int           { return s.head }

// Next reports when the next pending action is due.
func (s *Scheduler) Next() (time.Duration, bool) {
	if s.head >= len(s.queue) {
		return 0, false
	}
	return s.queue[s.head].due, true
}

// Advance fires, in order, every pending action due at or before elapsed.
// Each action fires exactly once. It returns the number fired.
func (s *Scheduler) Advance(elapsed time.Duration, fire func(tick int, a sorter.Action)) int {
	n := 0
	for s.head < len(s.queue) && s.queue[s.head].due <= elapsed {
		e := s.queue[s.head]
		s.head++
		fire(e.tick, e.action)
		n++
	}
	return n
}
