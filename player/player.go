// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/playmix/audio"
)

// Config describes the fixed output format negotiated with the audio
// device before playback starts.
type Config struct {
	// SampleRate of the output stream in Hz (e.g. 44100, 48000).
	SampleRate int
	// Channels is the output channel count; every clip in the mix must
	// already match it (see audio.Clip.Remix).
	Channels int
	// BufferSize is the hardware buffer duration. Zero lets the driver
	// pick its platform default. Smaller buffers lower latency but make
	// underruns more likely.
	BufferSize time.Duration
}

// Player owns the output stream. The underlying driver runs its own
// playback goroutine which pulls mixed blocks once per hardware period;
// that goroutine is the mixer's single producer, so nothing else may call
// Fill on the mixer while the player is open.
//
// The audio context is process-global: open at most one Player per process.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// Open initializes the output device for cfg and binds mixer to it.
// Playback does not start until Play is called.
func Open(cfg Config, mixer *audio.Mixer) (*Player, error) {
	if mixer == nil {
		return nil, ErrNoMixer
	}
	if cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cfg.Channels <= 0 {
		return nil, ErrInvalidChannels
	}

	op := &oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   cfg.BufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}
	<-ready

	// Preallocate the mix block for roughly one period of audio so the
	// first Read does not grow it.
	blockSize := cfg.SampleRate * cfg.Channels / 10

	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(newBlockReader(mixer, blockSize)),
	}

	return p, nil
}

// Play starts (or resumes) pulling blocks from the mixer.
func (p *Player) Play() {
	p.player.Play()
}

// Pause stops pulling blocks; the mixer's playheads stay where they are.
func (p *Player) Pause() {
	p.player.Pause()
}

// IsPlaying reports whether the stream is currently running.
func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

// Close tears the stream down. The mixer and its tracks stay valid and can
// be inspected afterwards.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing stream: %w", err)
	}

	return p.ctx.Suspend()
}
