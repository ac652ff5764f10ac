package audio

import (
	"io"
	"sort"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// soundtrack streams a fixed timeline of notes.
type soundtrack struct {
	events []Event
	params Params
	rate   float64
	pos    int
	next   int
	total  int
	voices []*voice
}

// Soundtrack renders events as a stereo beep stream. The stream ends once
// the last note has finished ringing.
func Soundtrack(events []Event, p Params) beep.Streamer {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })

	format := p.Format()
	total := 0
	if len(sorted) > 0 {
		total = format.SampleRate.N(sorted[len(sorted)-1].At + p.Length)
	}
	return &soundtrack{
		events: sorted,
		params: p,
		rate:   float64(p.SampleRate),
		total:  total,
	}
}

func (t *soundtrack) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	sr := beep.SampleRate(t.params.SampleRate)
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		for t.next < len(t.events) && sr.N(t.events[t.next].At) <= t.pos {
			if t.events[t.next].Note.Pitch > 0 {
				t.voices = append(t.voices, newVoice(t.events[t.next].Note, t.params))
			}
			t.next++
		}

		var v float64
		v, t.voices = mix(t.voices, t.rate)
		v *= t.params.Volume
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *soundtrack) Err() error { return nil }

func (p Params) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(p.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// WriteWAV encodes the rendered timeline as 16-bit stereo WAV.
func WriteWAV(w io.WriteSeeker, events []Event, p Params) error {
	return wav.Encode(w, Soundtrack(events, p), p.Format())
}

// Samples drains the rendered timeline into a mono buffer.
func Samples(events []Event, p Params) []float64 {
	s := Soundtrack(events, p)
	buf := make([][2]float64, BufferSize)
	out := make([]float64, 0)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}
