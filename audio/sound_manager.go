// Package audio plays synthesized cue effects and music loops through the beep speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/log"
)

const cueBufferSize = 64

// SoundManager turns cues into sounds on a background goroutine
// Notify never blocks; cues are dropped when the buffer is full or playback is not running
type SoundManager struct {
	cfg   *AudioConfig
	mixer *beep.Mixer

	// Owned by the worker goroutine
	music    *beep.Ctrl
	musicCue core.Cue

	cues chan core.Cue
	done chan struct{}
	wg   sync.WaitGroup

	// Guards the mixer against the playback callback; speaker.Lock in production
	lock   func()
	unlock func()

	mu          sync.Mutex // Serializes Initialize and Close
	running     atomic.Bool
	closed      atomic.Bool
	dropped     atomic.Int64
	initialized bool
}

// NewSoundManager creates an idle sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		cues:   make(chan core.Cue, cueBufferSize),
		done:   make(chan struct{}),
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker and starts the cue worker
// A disabled config leaves the manager silent and returns nil
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.closed.Load() {
		return ErrClosed
	}
	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.initialized = true
	sm.start()
	log.Info("audio initialized", "sample_rate", sm.cfg.SampleRate, "volume", sm.cfg.MasterVolume)
	return nil
}

// start launches the worker without touching the speaker
func (sm *SoundManager) start() {
	sm.running.Store(true)
	sm.wg.Add(1)
	core.Go(func() {
		defer sm.wg.Done()
		sm.loop()
	})
}

func (sm *SoundManager) loop() {
	for {
		select {
		case <-sm.done:
			return
		case cue := <-sm.cues:
			sm.apply(cue)
		}
	}
}

// Notify implements core.Notifier
func (sm *SoundManager) Notify(cue core.Cue) {
	if !sm.running.Load() {
		return
	}
	select {
	case sm.cues <- cue:
	default:
		sm.dropped.Add(1)
	}
}

// Dropped returns the number of cues discarded because the buffer was full
func (sm *SoundManager) Dropped() int64 {
	return sm.dropped.Load()
}

func (sm *SoundManager) apply(cue core.Cue) {
	switch cue {
	case core.CueMusicMenu, core.CueMusicPlaying:
		sm.playMusic(cue)
	case core.CueMusicStop:
		sm.stopMusic()
	default:
		effect := GetSoundEffect(cue, sm.cfg)
		if effect == nil {
			return
		}
		sm.lock()
		sm.mixer.Add(effect)
		sm.unlock()
	}
}

// playMusic switches the loop, leaving a matching loop untouched
func (sm *SoundManager) playMusic(cue core.Cue) {
	if sm.music != nil && sm.musicCue == cue {
		return
	}
	sm.stopMusic()

	loop := GetMusic(cue, sm.cfg)
	if loop == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: loop}

	sm.lock()
	sm.mixer.Add(ctrl)
	sm.unlock()

	sm.music = ctrl
	sm.musicCue = cue
}

// stopMusic detaches the current loop; a nil streamer drains out of the mixer
func (sm *SoundManager) stopMusic() {
	if sm.music == nil {
		return
	}
	sm.lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	sm.unlock()
	sm.music = nil
}

// Close stops the worker and silences the mixer; safe to call more than once
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.closed.CompareAndSwap(false, true) {
		return
	}
	sm.running.Store(false)
	close(sm.done)
	sm.wg.Wait()

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	sm.music = nil

	if sm.initialized {
		// beep keeps the device open; clearing the speaker stops all output
		speaker.Clear()
		sm.initialized = false
	}
}
