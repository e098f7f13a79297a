package interaction

import (
	"video-gallery/internal/logger"
	"video-gallery/internal/media"
)

// Unlocker releases pointer capture. *pointerlock.Control satisfies it.
type Unlocker interface {
	Unlock()
}

// Dispatcher is the single click handler shared by every video surface. It holds no
// per-surface state; each handle carries its own playing/muted flags.
type Dispatcher struct {
	lock Unlocker
	log  *logger.Logger
}

// New returns a dispatcher that releases lock on every click. lock may be nil.
func New(lock Unlocker, log *logger.Logger) *Dispatcher {
	return &Dispatcher{lock: lock, log: log}
}

// OnSurfaceClicked releases the pointer, then toggles h:
// paused or muted → play and unmute; playing and audible → pause and mute.
// A muted autoplaying video therefore gains sound without restarting.
// Playback errors are logged; they never stop the scene.
func (d *Dispatcher) OnSurfaceClicked(h media.Playback) {
	if d.lock != nil {
		d.lock.Unlock()
	}
	name := nameOf(h)
	if h.Paused() || h.Muted() {
		if err := h.Play(); err != nil {
			d.log.Warnf("play %s: %v", name, err)
		}
		h.SetMuted(false)
		d.log.Logf("video playing: %s", name)
		return
	}
	h.Pause()
	h.SetMuted(true)
	d.log.Logf("video paused: %s", name)
}

func nameOf(h media.Playback) string {
	if n, ok := h.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "video"
}
