package media

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate matches the rate ffmpeg is asked to resample to.
const DefaultSampleRate = 48000

// Mixer mixes every video soundtrack onto the speaker. One per process.
type Mixer struct {
	mixer *beep.Mixer
	rate  beep.SampleRate
}

// NewMixer opens the audio device. Without a device the caller runs the gallery silent.
func NewMixer(sampleRate int) (*Mixer, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	m := &Mixer{mixer: &beep.Mixer{}, rate: beep.SampleRate(sampleRate)}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	return m, nil
}

// SampleRate is the output rate in Hz.
func (m *Mixer) SampleRate() int {
	return int(m.rate)
}

// Add starts mixing s.
func (m *Mixer) Add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all tracks and releases the device.
func (m *Mixer) Close() {
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
