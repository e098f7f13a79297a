package media

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"sync"
)

const (
	bytesPerFrame = 4 // s16le stereo
	chunkFrames   = 512
	// bufferedChunks bounds decoded audio held ahead of the speaker (about 0.7s at 48kHz).
	bufferedChunks = 64
)

// pcmStreamer turns interleaved signed 16-bit little-endian stereo into beep samples.
// fill reads the pipe on the decoder goroutine; Stream runs under the speaker lock and
// never blocks, padding with silence when the decoder falls behind.
type pcmStreamer struct {
	chunks  chan [][2]float64
	pending [][2]float64

	mu  sync.Mutex
	err error
}

func newPCMStreamer() *pcmStreamer {
	return &pcmStreamer{chunks: make(chan [][2]float64, bufferedChunks)}
}

// fill decodes r until it ends or ctx is done. A full buffer blocks here, not in Stream.
func (p *pcmStreamer) fill(ctx context.Context, r io.Reader) error {
	defer close(p.chunks)
	buf := make([]byte, chunkFrames*bytesPerFrame)
	for {
		read, err := io.ReadFull(r, buf)
		if n := read / bytesPerFrame; n > 0 {
			select {
			case p.chunks <- decodePCM(buf[:n*bytesPerFrame]):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			return err
		}
	}
}

func decodePCM(buf []byte) [][2]float64 {
	out := make([][2]float64, len(buf)/bytesPerFrame)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(buf[i*bytesPerFrame:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*bytesPerFrame+2:]))
		out[i] = [2]float64{float64(l) / 32768, float64(r) / 32768}
	}
	return out
}

func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if len(p.pending) == 0 {
			select {
			case chunk, open := <-p.chunks:
				if !open {
					return n, n > 0
				}
				p.pending = chunk
			default:
				clear(samples[n:])
				return len(samples), true
			}
		}
		c := copy(samples[n:], p.pending)
		p.pending = p.pending[c:]
		n += c
	}
	return n, true
}

// Err is nil at a clean end of stream.
func (p *pcmStreamer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if errors.Is(p.err, io.EOF) {
		return nil
	}
	return p.err
}
