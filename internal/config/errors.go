package config

import "errors"

var (
	ErrInvalidSize   = errors.New("size must be at least 2")
	ErrInvalidSpeed  = errors.New("speed must be positive")
	ErrInvalidFPS    = errors.New("fps must be positive")
	ErrInvalidVolume = errors.New("volume must be within [0, 1]")
	ErrUnknownLayout = errors.New("unknown layout")
	ErrUnknownPreset = errors.New("unknown preset")
)
