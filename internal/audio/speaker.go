package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// maxVoices caps polyphony; the oldest voice is dropped first.
	maxVoices = 32
)

// Speaker plays notes on the default output device. Notes are mixed inside
// the portaudio callback, so Play never blocks on the device.
type Speaker struct {
	Stream *portaudio.Stream

	params Params
	log    zerolog.Logger

	mu     sync.Mutex
	voices []*voice

	Active bool
}

func NewSpeaker(p Params, log zerolog.Logger) *Speaker {
	return &Speaker{
		params: p,
		log:    log,
		voices: make([]*voice, 0, maxVoices),
	}
}

func (s *Speaker) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Output only; duplex streams fail on Linux when devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(s.params.SampleRate), BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: open stream: %v", ErrUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("%w: start stream: %v", ErrUnavailable, err)
	}

	s.log.Debug().Int("sample_rate", s.params.SampleRate).Msg("audio output started")

	s.Stream = stream
	s.Active = true
	return nil
}

// Close stops the stream and releases portaudio.
func (s *Speaker) Close() error {
	if !s.Active {
		return nil
	}
	s.Active = false

	var err error
	if s.Stream != nil {
		if stopErr := s.Stream.Stop(); stopErr != nil {
			err = stopErr
		}
		if closeErr := s.Stream.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if termErr := portaudio.Terminate(); termErr != nil && err == nil {
		err = termErr
	}
	return err
}

func (s *Speaker) Play(n Note) {
	if !s.Active || n.Pitch <= 0 {
		return
	}
	s.mu.Lock()
	if len(s.voices) >= maxVoices {
		s.voices = s.voices[1:]
	}
	s.voices = append(s.voices, newVoice(n, s.params))
	s.mu.Unlock()
}

func (s *Speaker) process(out [][]float32) {
	rate := float64(s.params.SampleRate)
	vol := s.params.Volume

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range out[0] {
		var sample float64
		sample, s.voices = mix(s.voices, rate)
		v := float32(sample * vol)
		out[0][i] = v
		out[1][i] = v
	}
}
