// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Clip is a fully decoded sequence of interleaved float32 samples in [-1, 1].
// It is immutable after construction and safe to share between tracks.
type Clip struct {
	samples    []float32
	sampleRate int
	channels   int
}

// NewClip wraps samples in a Clip. The slice is owned by the Clip after the
// call and must not be modified by the caller.
func NewClip(samples []float32, sampleRate, channels int) (*Clip, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if channels < 1 || len(samples)%channels != 0 {
		return nil, ErrNotFrameAligned
	}

	return &Clip{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// DecodeAll drains src to EOF and materializes every sample in memory.
// bufferSize controls the read chunk size; values <= 0 use a default.
// Decoding may allocate and block freely since it runs before playback starts.
func DecodeAll(src Source, bufferSize int) (*Clip, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	samples := make([]float32, 0, bufferSize*4)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return NewClip(samples, src.SampleRate(), src.Channels())
}

// SampleRate of the clip in Hz.
func (c *Clip) SampleRate() int { return c.sampleRate }

// Channels count of the interleaved data.
func (c *Clip) Channels() int { return c.channels }

// Len is the total number of samples (frames * channels).
func (c *Clip) Len() int { return len(c.samples) }

// Frames is the number of sample frames (one sample per channel).
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// At returns the sample at index i. i must be in [0, Len()).
func (c *Clip) At(i int) float32 { return c.samples[i] }

// Remix returns a clip with the requested channel count.
//
// Supported conversions: same count (returns the receiver), any count down
// to mono by averaging each frame, and mono up to any count by duplicating
// each sample. Anything else returns ErrChannelMismatch. Remix runs off the
// real-time path and may allocate.
func (c *Clip) Remix(channels int) (*Clip, error) {
	switch {
	case channels == c.channels:
		return c, nil
	case channels == 1:
		return c.downmix(), nil
	case c.channels == 1 && channels > 1:
		return c.upmix(channels), nil
	default:
		return nil, ErrChannelMismatch
	}
}

func (c *Clip) downmix() *Clip {
	frames := c.Frames()
	out := make([]float32, frames)

	switch c.channels {
	case 2:
		for f := 0; f < frames; f++ {
			idx := f << 1
			out[f] = (c.samples[idx] + c.samples[idx+1]) * 0.5
		}
	case 4:
		for f := 0; f < frames; f++ {
			idx := f << 2
			sum := c.samples[idx] + c.samples[idx+1] + c.samples[idx+2] + c.samples[idx+3]
			out[f] = sum * 0.25
		}
	default:
		invChannels := float32(1.0) / float32(c.channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			baseIdx := f * c.channels
			for ch := 0; ch < c.channels; ch++ {
				sum += c.samples[baseIdx+ch]
			}
			out[f] = sum * invChannels
		}
	}

	return &Clip{samples: out, sampleRate: c.sampleRate, channels: 1}
}

func (c *Clip) upmix(channels int) *Clip {
	out := make([]float32, len(c.samples)*channels)
	for i, s := range c.samples {
		baseIdx := i * channels
		for ch := 0; ch < channels; ch++ {
			out[baseIdx+ch] = s
		}
	}

	return &Clip{samples: out, sampleRate: c.sampleRate, channels: channels}
}
