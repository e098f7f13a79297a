// Package media holds the playback handles behind the video surfaces: an ffmpeg decoder for
// frames and a beep mixer for the soundtracks.
package media

import "image/color"

// Playback is the capability the click handler needs: start, stop, mute and query.
type Playback interface {
	Play() error
	Pause()
	SetMuted(muted bool)
	Paused() bool
	Muted() bool
}

// Handle is one video: its playback state plus the latest decoded frame for the texture sampler.
type Handle interface {
	Playback
	Name() string
	// Size is the decoded frame size in pixels.
	Size() (width, height int)
	// CopyFrame copies the latest frame into dst (len width*height) and reports whether it is
	// newer than the previous copy.
	CopyFrame(dst []color.RGBA) bool
	Close() error
}
