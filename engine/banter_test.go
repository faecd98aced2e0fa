package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/gunslinger/vmath"
)

func newTestBanter(enabled bool) (*Banter, *fakeTime, *PausableClock) {
	mock := newFakeTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWithProvider(mock)
	return NewBanter(clock, vmath.NewFastRand(99), enabled), mock, clock
}

func TestBanterKillRespectsCooldown(t *testing.T) {
	b, mock, _ := newTestBanter(true)

	if !b.OnKill() {
		t.Fatal("first kill should show a phrase")
	}
	line := b.Current()
	if line.Text == "" || line.Alpha != 1 {
		t.Fatalf("unexpected line %+v", line)
	}

	mock.Advance(4 * time.Second)
	if b.OnKill() {
		t.Error("phrase shown inside cooldown")
	}

	mock.Advance(time.Second)
	if !b.OnKill() {
		t.Error("phrase suppressed after cooldown")
	}
}

func TestBanterFadeAndExpiry(t *testing.T) {
	b, mock, _ := newTestBanter(true)
	b.OnKill()

	mock.Advance(2750 * time.Millisecond)
	if line := b.Current(); line.Alpha < 0.49 || line.Alpha > 0.51 {
		t.Errorf("alpha during fade = %v, want 0.5", line.Alpha)
	}

	mock.Advance(time.Second)
	if line := b.Current(); line.Text != "" {
		t.Errorf("expired line still visible: %q", line.Text)
	}
}

func TestBanterFreezesWhilePaused(t *testing.T) {
	b, mock, clock := newTestBanter(true)
	b.OnKill()

	clock.Pause()
	mock.Advance(time.Minute)
	if b.Current().Text == "" {
		t.Error("line expired during pause")
	}
}

func TestBanterShotChance(t *testing.T) {
	b, mock, _ := newTestBanter(true)

	shown := 0
	for i := 0; i < 200; i++ {
		mock.Advance(6 * time.Second)
		if b.OnShot() {
			shown++
		}
	}
	if shown < 20 || shown > 100 {
		t.Errorf("shot banter shown %d/200 times, expected about 60", shown)
	}
}

func TestBanterDisabledAndClear(t *testing.T) {
	off, _, _ := newTestBanter(false)
	if off.OnKill() || off.OnShot() {
		t.Error("disabled banter produced a phrase")
	}

	b, _, _ := newTestBanter(true)
	b.OnKill()
	b.Clear()
	if b.Current().Text != "" {
		t.Error("Clear left a visible line")
	}
	if !b.OnKill() {
		t.Error("Clear should reset the cooldown")
	}
}
