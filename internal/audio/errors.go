package audio

import "errors"

var (
	// ErrUnavailable indicates no usable output device.
	ErrUnavailable = errors.New("audio: output unavailable")

	// ErrUnknownWave indicates a waveform name that is not supported.
	ErrUnknownWave = errors.New("audio: unknown waveform")
)
