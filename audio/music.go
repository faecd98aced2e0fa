package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
)

// Note frequencies used by the music loops
var (
	menuNotes = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63} // Am7 arpeggio
	bassNotes = []float64{55.00, 55.00, 65.41, 49.00}                     // A1 A1 C2 G1
)

// arpeggio loops a note sequence forever with a per-note envelope
type arpeggio struct {
	rate    beep.SampleRate
	notes   []float64
	wave    WaveType
	step    int
	attack  int
	release int
	pos     int
	phase   float64
}

func newArpeggio(rate beep.SampleRate, notes []float64, wave WaveType) *arpeggio {
	return &arpeggio{
		rate:    rate,
		notes:   notes,
		wave:    wave,
		step:    rate.N(constants.MusicNoteDuration),
		attack:  rate.N(constants.MusicNoteAttack),
		release: rate.N(constants.MusicNoteRelease),
	}
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (a.pos / a.step) % len(a.notes)
		within := a.pos % a.step
		if within == 0 {
			a.phase = 0
		}

		val := 0.5 * waveSample(a.wave, a.phase, nil)
		val *= envelopeGain(within, a.step, a.attack, a.release)

		samples[i][0] = val
		samples[i][1] = val

		a.phase += a.notes[idx] / float64(a.rate)
		a.phase -= math.Floor(a.phase)
		a.pos++
	}
	return len(samples), true
}

func (a *arpeggio) Err() error { return nil }

// pulseBeat is a kick on every beat over the bass loop
type pulseBeat struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

func newPulseBeat(sr beep.SampleRate) *pulseBeat {
	return &pulseBeat{
		sr:      sr,
		samples: sr.N(2 * constants.MusicNoteDuration),
		kick:    sr.N(100 * time.Millisecond),
	}
}

func (g *pulseBeat) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		sample := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			freq := 60 * (1 + 2*env)
			sample = 0.6 * env * math.Sin(2*math.Pi*freq*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pulseBeat) Err() error { return nil }

// CreateMenuMusic is a slow sine arpeggio, it never drains
func CreateMenuMusic(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(newArpeggio(rate, menuNotes, WaveSine), cfg.volume(core.CueMusicMenu))
}

// CreateBattleMusic layers a kick over a saw bass line, it never drains
func CreateBattleMusic(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	mixed := beep.Mix(
		newVolume(newPulseBeat(rate), 0.7),
		newVolume(newArpeggio(rate, bassNotes, WaveSaw), 0.4),
	)
	return newVolume(mixed, cfg.volume(core.CueMusicPlaying))
}

// GetMusic returns the loop for a music cue, nil for everything else
func GetMusic(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueMusicMenu:
		return CreateMenuMusic(cfg)
	case core.CueMusicPlaying:
		return CreateBattleMusic(cfg)
	default:
		return nil
	}
}
