package player_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorter"
)

// call is one surface operation, in the order it happened.
type call struct {
	op    string
	color bars.Color
}

type spySurface struct {
	calls []call
}

func (s *spySurface) Width() float64  { return 120 }
func (s *spySurface) Height() float64 { return 60 }
func (s *spySurface) Clear()          { s.calls = append(s.calls, call{op: "clear"}) }
func (s *spySurface) FillRect(x, y, w, h float64, c bars.Color) {
	s.calls = append(s.calls, call{op: "fill", color: c})
}

var _ = Describe("Scheduler", func() {
	const speed = 15 * time.Millisecond

	It("spaces the k-th action k*speed after the time base", func() {
		s := player.NewScheduler(speed)
		for i := 0; i < 5; i++ {
			s.Record(sorter.NewSort(0))
		}

		Expect(s.Ticks()).To(Equal(5))
		for k := 1; k <= 5; k++ {
			Expect(s.Delay(k)).To(Equal(time.Duration(k) * speed))
		}
		next, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(speed))
	})

	It("fires in emission order, each action once", func() {
		s := player.NewScheduler(speed)
		emitted := []sorter.Action{
			sorter.NewShiftRight(0),
			sorter.NewInsert(0, 1),
			sorter.NewShiftRight(1),
			sorter.NewInsert(1, 2),
		}
		for _, a := range emitted {
			s.Record(a)
		}

		var fired []sorter.Action
		var ticks []int
		collect := func(tick int, a sorter.Action) {
			ticks = append(ticks, tick)
			fired = append(fired, a)
		}

		Expect(s.Advance(speed-1, collect)).To(Equal(0))
		Expect(s.Advance(2*speed, collect)).To(Equal(2))
		Expect(s.Advance(2*speed, collect)).To(Equal(0))
		Expect(s.Advance(time.Hour, collect)).To(Equal(2))

		Expect(fired).To(Equal(emitted))
		Expect(ticks).To(Equal([]int{1, 2, 3, 4}))
		Expect(s.Pending()).To(BeZero())
	})

	It("keeps counting ticks across late recordings", func() {
		s := player.NewScheduler(speed)
		s.Record(sorter.NewSort(0))
		s.Advance(time.Hour, func(int, sorter.Action) {})
		s.Record(sorter.NewSort(1))

		next, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(2 * speed))
	})
})

var _ = Describe("Player", func() {
	var (
		board   *bars.Board
		surface *spySurface
		tone    *audio.Recorder
		p       *player.Player
	)

	BeforeEach(func() {
		values := []int{3, 1, 2}
		board = bars.NewBoard(values, bars.Fit(120, 60, len(values)))
		surface = &spySurface{}
		tone = &audio.Recorder{}
		p = player.New(board, surface, tone, 10*time.Millisecond, zerolog.Nop())
		sorter.InsertionSort(values, p.Record)
	})

	It("holds every action once the sort returns", func() {
		fired, total := p.Progress()
		Expect(fired).To(BeZero())
		Expect(total).To(Equal(8))
		Expect(p.Duration()).To(Equal(80 * time.Millisecond))
		Expect(surface.calls).To(BeEmpty())
	})

	It("applies, clears, redraws, then resets colors", func() {
		Expect(p.Advance(10 * time.Millisecond)).To(Equal(1))

		Expect(surface.calls).To(HaveLen(4))
		Expect(surface.calls[0].op).To(Equal("clear"))
		Expect(surface.calls[2]).To(Equal(call{op: "fill", color: bars.Shift}))
		Expect(board.Bars[1].Color).To(Equal(bars.Default))
		Expect(tone.Notes()).To(HaveLen(1))
		Expect(tone.Notes()[0].Wave).To(Equal(audio.Sine))
	})

	It("ends with an ascending, fully sorted board", func() {
		var seen []int
		p.OnFire(func(tick int, a sorter.Action) { seen = append(seen, tick) })

		Expect(p.Finish()).To(Equal(8))
		Expect(p.Done()).To(BeTrue())
		Expect(board.Values()).To(Equal([]int{1, 2, 3}))
		Expect(board.SortedCount()).To(Equal(3))
		Expect(seen).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8}))
		Expect(tone.Notes()).To(HaveLen(8))
	})

	It("never touches a bar after it is sorted", func() {
		var sortedAt = map[int]bars.Bar{}
		p.OnFire(func(tick int, a sorter.Action) {
			for i, b := range board.Bars {
				if prev, ok := sortedAt[i]; ok {
					Expect(*b).To(Equal(prev), "bar %d changed at tick %d", i, tick)
				} else if b.IsSorted() {
					sortedAt[i] = *b
				}
			}
		})
		p.Finish()
	})

	It("runs against the wall clock until drained", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		Expect(p.Run(ctx, time.Millisecond)).To(Succeed())
		Expect(p.Done()).To(BeTrue())
	})

	It("stops when the context is done", func() {
		slow := player.New(board, surface, tone, time.Hour, zerolog.Nop())
		slow.Record(sorter.NewSort(0))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(slow.Run(ctx, time.Millisecond)).To(MatchError(context.Canceled))
		Expect(slow.Done()).To(BeFalse())
	})
})
