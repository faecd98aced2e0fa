package engine

import (
	"time"

	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/vmath"
)

// Phrases is the stock combat banter
var Phrases = []string{
	"This town ain't big enough for both of us!",
	"Draw, you varmint!",
	"You picked the wrong cowboy, partner!",
	"Say your prayers, outlaw!",
	"Time to meet your maker!",
	"I'm gonna send you to Boot Hill!",
	"Your days of thievin' are over!",
}

// BanterLine is the subtitle visible at one instant
type BanterLine struct {
	Text  string
	Alpha float64 // 1 while shown, falling to 0 over the fade window
}

// Banter schedules combat subtitles on game time
// Accessed only under the world lock
type Banter struct {
	clock   interface{ Now() time.Time }
	rng     *vmath.FastRand
	enabled bool

	text    string
	shownAt time.Time
	lastAt  time.Time
}

// NewBanter creates a banter source reading time from clock
func NewBanter(clock interface{ Now() time.Time }, rng *vmath.FastRand, enabled bool) *Banter {
	return &Banter{clock: clock, rng: rng, enabled: enabled}
}

// OnShot rolls for a phrase after a player shot
func (b *Banter) OnShot() bool {
	if !b.enabled || !b.ready() {
		return false
	}
	if b.rng.Float64() >= constants.BanterShotChance {
		return false
	}
	b.show()
	return true
}

// OnKill shows a phrase unless one was shown within the cooldown
func (b *Banter) OnKill() bool {
	if !b.enabled || !b.ready() {
		return false
	}
	b.show()
	return true
}

func (b *Banter) ready() bool {
	return b.lastAt.IsZero() || b.clock.Now().Sub(b.lastAt) >= constants.BanterCooldown
}

func (b *Banter) show() {
	now := b.clock.Now()
	b.text = Phrases[b.rng.Intn(len(Phrases))]
	b.shownAt = now
	b.lastAt = now
}

// Current returns the visible line, empty once expired
func (b *Banter) Current() BanterLine {
	if b.text == "" {
		return BanterLine{}
	}
	elapsed := b.clock.Now().Sub(b.shownAt)
	if elapsed > constants.BanterDuration {
		b.text = ""
		return BanterLine{}
	}

	line := BanterLine{Text: b.text, Alpha: 1}
	if remaining := constants.BanterDuration - elapsed; remaining < constants.BanterFade {
		line.Alpha = float64(remaining) / float64(constants.BanterFade)
	}
	return line
}

// Clear drops the visible line and the cooldown
func (b *Banter) Clear() {
	b.text = ""
	b.shownAt = time.Time{}
	b.lastAt = time.Time{}
}
