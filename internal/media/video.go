package media

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"video-gallery/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Options configures decoding for one video.
type Options struct {
	FFmpeg    string // ffmpeg binary; empty means "ffmpeg" on PATH
	Width     int
	Height    int
	FrameRate int
	Mixer     *Mixer // nil plays the video without sound
}

// Video is a looping video decoded by an ffmpeg child process. Frames are paced by the
// decoder goroutine at FrameRate; pausing stops reading, which stalls ffmpeg on a full pipe.
// A source that cannot be opened leaves a blank frame and is logged, never fatal.
type Video struct {
	name string
	url  string
	opts Options
	log  *logger.Logger

	mu     sync.Mutex
	paused bool
	muted  bool
	resume chan struct{} // closed by Play while the decoder waits
	frame  []color.RGBA
	seq    uint64
	copied uint64
	err    error

	ctrl   *beep.Ctrl
	volume *effects.Volume

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Open creates the handle and starts autoplay, muted. Decoding happens in the background.
func Open(name, url string, opts Options, log *logger.Logger) *Video {
	v := newVideo(name, url, opts, log)
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.wg.Add(1)
	go v.runVideo(ctx)
	if opts.Mixer != nil {
		v.wg.Add(1)
		go v.runAudio(ctx)
	}
	return v
}

func newVideo(name, url string, opts Options, log *logger.Logger) *Video {
	if opts.FFmpeg == "" {
		opts.FFmpeg = "ffmpeg"
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	return &Video{
		name:  name,
		url:   url,
		opts:  opts,
		log:   log,
		muted: true,
		frame: make([]color.RGBA, opts.Width*opts.Height),
	}
}

// Name is the configured label, used in log lines.
func (v *Video) Name() string { return v.name }

// Size is the decoded frame size in pixels.
func (v *Video) Size() (width, height int) { return v.opts.Width, v.opts.Height }

// Play resumes playback. The state changes even if decoding has failed; that failure is returned.
func (v *Video) Play() error {
	v.mu.Lock()
	if v.paused {
		v.paused = false
		close(v.resume)
	}
	err := v.err
	v.mu.Unlock()
	v.syncAudio()
	return err
}

// Pause stops frame decoding and silences audio until Play.
func (v *Video) Pause() {
	v.mu.Lock()
	if !v.paused {
		v.paused = true
		v.resume = make(chan struct{})
	}
	v.mu.Unlock()
	v.syncAudio()
}

// SetMuted toggles the audio track without affecting playback.
func (v *Video) SetMuted(muted bool) {
	v.mu.Lock()
	v.muted = muted
	v.mu.Unlock()
	v.syncAudio()
}

// Paused reports whether playback is paused.
func (v *Video) Paused() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paused
}

// Muted reports whether audio is silenced.
func (v *Video) Muted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.muted
}

// CopyFrame copies the latest frame into dst and reports whether it is new since the last copy.
func (v *Video) CopyFrame(dst []color.RGBA) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seq == v.copied {
		return false
	}
	copy(dst, v.frame)
	v.copied = v.seq
	return true
}

// Close stops both ffmpeg processes and waits for the decoder goroutines.
func (v *Video) Close() error {
	if v.cancel != nil {
		v.cancel()
	}
	v.wg.Wait()
	return nil
}

// syncAudio mirrors paused/muted onto the beep controls under the speaker lock.
func (v *Video) syncAudio() {
	v.mu.Lock()
	paused, muted := v.paused, v.muted
	ctrl, volume := v.ctrl, v.volume
	v.mu.Unlock()
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Paused = paused
	volume.Silent = muted
	speaker.Unlock()
}

func (v *Video) fail(err error) {
	v.mu.Lock()
	if v.err == nil {
		v.err = err
	}
	v.mu.Unlock()
	v.log.Warnf("video %s: %v", v.name, err)
}

func videoArgs(url string, width, height, fps int) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-stream_loop", "-1",
		"-i", url,
		"-an",
		"-vf", fmt.Sprintf("fps=%d,scale=%d:%d", fps, width, height),
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"pipe:1",
	}
}

func audioArgs(url string, sampleRate int) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-stream_loop", "-1",
		"-i", url,
		"-vn",
		"-ac", "2", "-ar", strconv.Itoa(sampleRate),
		"-f", "s16le",
		"pipe:1",
	}
}

func (v *Video) runVideo(ctx context.Context) {
	defer v.wg.Done()
	cmd := exec.CommandContext(ctx, v.opts.FFmpeg, videoArgs(v.url, v.opts.Width, v.opts.Height, v.opts.FrameRate)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		v.fail(fmt.Errorf("decoder pipe: %w", err))
		return
	}
	if err := cmd.Start(); err != nil {
		v.fail(fmt.Errorf("start decoder: %w", err))
		return
	}
	err = v.readFrames(ctx, stdout, time.Second/time.Duration(v.opts.FrameRate))
	if ctx.Err() == nil && err != nil {
		v.fail(fmt.Errorf("decode: %w", err))
	}
	_ = cmd.Wait()
}

// readFrames reads width*height RGBA frames from r, one per interval, until r ends or ctx is done.
func (v *Video) readFrames(ctx context.Context, r io.Reader, interval time.Duration) error {
	buf := make([]byte, len(v.frame)*4)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if !v.waitPlaying(ctx) {
			return ctx.Err()
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			return err
		}
		v.storeFrame(buf)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// waitPlaying blocks while paused. It returns false when ctx is done.
func (v *Video) waitPlaying(ctx context.Context) bool {
	for {
		v.mu.Lock()
		if !v.paused {
			v.mu.Unlock()
			return ctx.Err() == nil
		}
		resume := v.resume
		v.mu.Unlock()
		select {
		case <-ctx.Done():
			return false
		case <-resume:
		}
	}
}

func (v *Video) storeFrame(buf []byte) {
	v.mu.Lock()
	for i := range v.frame {
		p := buf[i*4 : i*4+4]
		v.frame[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	v.seq++
	v.mu.Unlock()
}

func (v *Video) runAudio(ctx context.Context) {
	defer v.wg.Done()
	mixer := v.opts.Mixer
	cmd := exec.CommandContext(ctx, v.opts.FFmpeg, audioArgs(v.url, mixer.SampleRate())...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		v.log.Warnf("audio %s: %v", v.name, err)
		return
	}
	if err := cmd.Start(); err != nil {
		v.log.Warnf("audio %s: start decoder: %v", v.name, err)
		return
	}
	pcm := newPCMStreamer()
	ctrl := &beep.Ctrl{Streamer: pcm}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}
	v.mu.Lock()
	v.ctrl, v.volume = ctrl, volume
	v.mu.Unlock()
	v.syncAudio()
	mixer.Add(volume)

	// The speaker pulls from pcm without touching the pipe; a stalled source only underruns.
	if err := pcm.fill(ctx, stdout); ctx.Err() == nil && err != nil && !errors.Is(err, io.EOF) {
		v.log.Warnf("audio %s: %v", v.name, err)
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
	_ = cmd.Wait()
}
