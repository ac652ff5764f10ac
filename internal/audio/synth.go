package audio

import "math"

// floor is the gain the decay ramp ends at.
const floor = 0.00001

// voice is one decaying oscillator.
type voice struct {
	wave  Wave
	freq  float64
	phase float64
	gain  float64
	decay float64 // per-sample gain multiplier
	left  int     // samples until the oscillator stops
}

func newVoice(n Note, p Params) *voice {
	rate := float64(p.SampleRate)
	decaySamples := p.Decay.Seconds() * rate
	mult := 1.0
	if decaySamples > 0 {
		mult = math.Pow(floor, 1/decaySamples)
	}
	return &voice{
		wave:  n.Wave,
		freq:  n.Pitch,
		gain:  1,
		decay: mult,
		left:  int(p.Length.Seconds() * rate),
	}
}

func (v *voice) done() bool { return v.left <= 0 }

func (v *voice) next(rate float64) float64 {
	if v.left <= 0 {
		return 0
	}
	s := oscillate(v.wave, v.phase) * v.gain

	v.phase += v.freq / rate
	v.phase -= math.Floor(v.phase)
	if v.gain > floor {
		v.gain *= v.decay
	}
	v.left--
	return s
}

// oscillate evaluates a wave at phase p in [0, 1).
func oscillate(w Wave, p float64) float64 {
	switch w {
	case Sawtooth:
		return 2*p - 1
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4.0*math.Abs(p-0.5) - 1.0
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// mix advances every voice by one sample and drops finished ones.
func mix(voices []*voice, rate float64) (float64, []*voice) {
	sum := 0.0
	live := voices[:0]
	for _, v := range voices {
		sum += v.next(rate)
		if !v.done() {
			live = append(live, v)
		}
	}
	return sum, live
}
