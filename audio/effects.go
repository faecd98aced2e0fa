package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/vmath"
)

// oscillator generates a single finite wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator; freq is ignored for WaveNoise
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 0x9e3779b9),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		val := waveSample(o.wave, o.phase, o.noise)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one wave shape at phase in [0, 1)
func waveSample(wave WaveType, phase float64, noise *vmath.FastRand) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return noise.Float64()*2 - 1
	}
	return 0
}

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, true
		}
		vol := envelopeGain(e.position, e.totalSamples, e.attackSamples, e.releaseSamples)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// envelopeGain returns the linear attack/release gain at pos within a note of total samples
func envelopeGain(pos, total, attack, release int) float64 {
	vol := 1.0
	if attack > 0 && pos < attack {
		vol = float64(pos) / float64(attack)
	}
	releaseStart := total - release
	if release > 0 && pos >= releaseStart {
		vol = min(vol, float64(total-pos)/float64(release))
	}
	return max(vol, 0)
}

// newVolume scales s linearly; math.Log2(0) is -Inf so zero becomes Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound is a sharp noise crack over a low saw thump
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := NewEnvelope(NewOscillator(0, constants.ShotSoundDuration, WaveNoise, rate),
		constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)
	thump := NewEnvelope(NewOscillator(90, constants.ShotSoundDuration, WaveSaw, rate),
		constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	mixed := beep.Mix(newVolume(crack, 0.7), newVolume(thump, 0.3))
	return newVolume(mixed, cfg.volume(core.CueShotFired))
}

// CreateEnemyShotSound is a duller, lower report than the player's shot
func CreateEnemyShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := NewEnvelope(NewOscillator(0, constants.EnemyShotSoundDuration, WaveNoise, rate),
		constants.EnemyShotSoundDuration, constants.EnemyShotSoundAttack, constants.EnemyShotSoundRelease, rate)
	body := NewEnvelope(NewOscillator(180, constants.EnemyShotSoundDuration, WaveSquare, rate),
		constants.EnemyShotSoundDuration, constants.EnemyShotSoundAttack, constants.EnemyShotSoundRelease, rate)

	mixed := beep.Mix(newVolume(crack, 0.4), newVolume(body, 0.4))
	return newVolume(mixed, cfg.volume(core.CueEnemyFired))
}

// CreateKillSound is a rising two-note chime
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewEnvelope(NewOscillator(659.25, constants.KillSoundNote1Duration, WaveSquare, rate),
		constants.KillSoundNote1Duration, constants.KillSoundAttack, constants.KillSoundNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(880.0, constants.KillSoundNote2Duration, WaveSquare, rate),
		constants.KillSoundNote2Duration, constants.KillSoundAttack, constants.KillSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(core.CueEnemyKilled)*0.5)
}

// CreateHurtSound is a short harsh buzz
func CreateHurtSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, constants.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.HurtSoundDuration, constants.HurtSoundAttack, constants.HurtSoundRelease, rate)
	return newVolume(shaped, cfg.volume(core.CuePlayerDamaged))
}

// GetSoundEffect returns a one-shot streamer for the cue, nil for music and unknown cues
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueShotFired:
		return CreateShotSound(cfg)
	case core.CueEnemyFired:
		return CreateEnemyShotSound(cfg)
	case core.CueEnemyKilled:
		return CreateKillSound(cfg)
	case core.CuePlayerDamaged:
		return CreateHurtSound(cfg)
	default:
		return nil
	}
}
