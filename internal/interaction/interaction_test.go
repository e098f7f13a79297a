package interaction

import (
	"errors"
	"strings"
	"testing"

	"video-gallery/internal/logger"
)

type fakePlayback struct {
	name          string
	playing, mute bool
	playErr       error
	plays, pauses int
}

func (f *fakePlayback) Play() error {
	f.plays++
	f.playing = true
	return f.playErr
}

func (f *fakePlayback) Pause()          { f.pauses++; f.playing = false }
func (f *fakePlayback) SetMuted(m bool) { f.mute = m }
func (f *fakePlayback) Paused() bool    { return !f.playing }
func (f *fakePlayback) Muted() bool     { return f.mute }
func (f *fakePlayback) Name() string    { return f.name }

type countingLock struct{ unlocks int }

func (c *countingLock) Unlock() { c.unlocks++ }

func TestOnSurfaceClickedTransitions(t *testing.T) {
	tests := []struct {
		name                   string
		playing, muted         bool
		wantPlaying, wantMuted bool
		wantPlays, wantPauses  int
	}{
		{name: "paused muted", playing: false, muted: true, wantPlaying: true, wantMuted: false, wantPlays: 1},
		{name: "paused audible", playing: false, muted: false, wantPlaying: true, wantMuted: false, wantPlays: 1},
		{name: "playing audible", playing: true, muted: false, wantPlaying: false, wantMuted: true, wantPauses: 1},
		{name: "playing muted gains sound", playing: true, muted: true, wantPlaying: true, wantMuted: false, wantPlays: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakePlayback{name: "v", playing: tt.playing, mute: tt.muted}
			lock := &countingLock{}
			New(lock, logger.New("")).OnSurfaceClicked(h)

			if h.playing != tt.wantPlaying || h.mute != tt.wantMuted {
				t.Errorf("state = (playing=%v, muted=%v), want (%v, %v)", h.playing, h.mute, tt.wantPlaying, tt.wantMuted)
			}
			if h.plays != tt.wantPlays || h.pauses != tt.wantPauses {
				t.Errorf("plays=%d pauses=%d, want %d and %d", h.plays, h.pauses, tt.wantPlays, tt.wantPauses)
			}
			if lock.unlocks != 1 {
				t.Errorf("pointer released %d times, want exactly 1", lock.unlocks)
			}
		})
	}
}

func TestDoubleClickTogglesTwice(t *testing.T) {
	h := &fakePlayback{playing: true, mute: false}
	lock := &countingLock{}
	d := New(lock, nil)
	d.OnSurfaceClicked(h)
	d.OnSurfaceClicked(h)
	if !h.playing || h.mute {
		t.Errorf("after two clicks (playing=%v, muted=%v), want back to playing audible", h.playing, h.mute)
	}
	if lock.unlocks != 2 {
		t.Errorf("unlocks = %d, want 2", lock.unlocks)
	}
}

func TestSurfacesAreIndependent(t *testing.T) {
	handles := []*fakePlayback{
		{name: "center", playing: true, mute: true},
		{name: "right", playing: true, mute: true},
		{name: "left", playing: true, mute: true},
	}
	d := New(&countingLock{}, nil)
	d.OnSurfaceClicked(handles[1])

	if handles[1].mute {
		t.Error("clicked surface is still muted")
	}
	for _, i := range []int{0, 2} {
		if !handles[i].playing || !handles[i].mute || handles[i].plays != 0 {
			t.Errorf("surface %s changed: %+v", handles[i].name, *handles[i])
		}
	}
}

func TestPlayErrorIsLoggedNotFatal(t *testing.T) {
	log := logger.New("")
	h := &fakePlayback{name: "broken", playErr: errors.New("decoder exited"), mute: true}
	New(nil, log).OnSurfaceClicked(h)

	if h.mute {
		t.Error("surface still muted after click with a play error")
	}
	joined := strings.Join(log.Lines(), "\n")
	if !strings.Contains(joined, "warn: play broken: decoder exited") {
		t.Errorf("log missing warning: %s", joined)
	}
	if !strings.Contains(joined, "video playing: broken") {
		t.Errorf("log missing transition: %s", joined)
	}
}

func TestLogsPause(t *testing.T) {
	log := logger.New("")
	New(nil, log).OnSurfaceClicked(&fakePlayback{name: "center", playing: true})
	lines := log.Lines()
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "video paused: center") {
		t.Errorf("log = %q", lines)
	}
}
