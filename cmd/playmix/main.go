// SPDX-License-Identifier: EPL-2.0

// Command playmix mixes one or more audio files and plays them through
// the default output device.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/ik5/playmix"
	"github.com/ik5/playmix/audio"
	"github.com/ik5/playmix/player"
)

type args struct {
	Files      []string      `arg:"positional,required" help:"audio files to mix (wav, mp3, ogg, aiff)"`
	SampleRate int           `arg:"--rate" default:"44100" help:"output sample rate in Hz"`
	Channels   int           `arg:"--channels" default:"2" help:"output channel count"`
	Once       bool          `arg:"--once" help:"play each file once instead of looping"`
	Duration   time.Duration `arg:"--duration" help:"stop after this long (default: until interrupted)"`
}

func (args) Description() string {
	return "plays back one or more audio files, mixed together in real time"
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	mixer := audio.NewMixer()
	for _, path := range a.Files {
		track, err := playmix.LoadTrack(path, a.Channels, !a.Once)
		if err != nil {
			logger.Error("loading track", "path", path, "err", err)
			os.Exit(1)
		}

		if rate := track.Clip().SampleRate(); rate != a.SampleRate {
			// No resampling: the file will play at the wrong pitch
			logger.Warn("sample rate mismatch", "path", path, "file", rate, "output", a.SampleRate)
		}

		logger.Info("loaded", "path", path, "frames", track.Clip().Frames(), "loop", !a.Once)
		mixer.Add(track)
	}

	p, err := player.Open(player.Config{
		SampleRate: a.SampleRate,
		Channels:   a.Channels,
	}, mixer)
	if err != nil {
		logger.Error("opening output stream", "err", err)
		os.Exit(1)
	}

	p.Play()
	logger.Info("playing", "tracks", mixer.Len(), "rate", a.SampleRate, "channels", a.Channels)

	wait(a.Duration)

	if err := p.Close(); err != nil {
		logger.Error("closing output stream", "err", err)
		os.Exit(1)
	}
}

// wait blocks for the requested duration, or until SIGINT/SIGTERM when no
// duration was given.
func wait(d time.Duration) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	if d > 0 {
		select {
		case <-time.After(d):
		case <-sig:
		}
		return
	}

	<-sig
}
