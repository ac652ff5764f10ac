package audio

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Sawtooth
	Square
	Triangle
)

var waveNames = [...]string{"sine", "sawtooth", "square", "triangle"}

func (w Wave) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return fmt.Sprintf("Wave(%d)", int(w))
	}
	return waveNames[w]
}

func ParseWave(s string) (Wave, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range waveNames {
		if n == name {
			return Wave(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWave, s)
}

// Note is a single short tone request.
type Note struct {
	Wave  Wave
	Pitch float64 // Hz
}

// Tone plays notes fire-and-forget.
type Tone interface {
	Play(n Note)
}

// Silent discards every note.
type Silent struct{}

func (Silent) Play(Note) {}

// Recorder keeps every note it is asked to play.
type Recorder struct {
	mu    sync.Mutex
	notes []Note
}

func (r *Recorder) Play(n Note) {
	r.mu.Lock()
	r.notes = append(r.notes, n)
	r.mu.Unlock()
}

func (r *Recorder) Notes() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Event places a note on a timeline, for offline rendering.
type Event struct {
	At   time.Duration
	Note Note
}

// Params shape every voice.
type Params struct {
	SampleRate int
	Volume     float64
	Length     time.Duration // oscillator stops after this
	Decay      time.Duration // gain ramps to -100dB over this
}

func DefaultParams() Params {
	return Params{
		SampleRate: SampleRate,
		Volume:     0.25,
		Length:     100 * time.Millisecond,
		Decay:      40 * time.Millisecond,
	}
}
