package audio

import (
	"errors"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrClosed         = errors.New("audio: sound manager closed")
)
