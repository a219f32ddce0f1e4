package playmix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/playmix/audio"
	"github.com/ik5/playmix/formats/aiff"
	"github.com/ik5/playmix/formats/mp3"
	"github.com/ik5/playmix/formats/vorbis"
	"github.com/ik5/playmix/formats/wav"
)

// ErrUnknownFormat is returned when no decoder is registered for a file's
// extension.
var ErrUnknownFormat = errors.New("unknown audio format")

// DefaultRegistry returns a registry with all built-in decoders registered
// under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadClip opens the file at path, picks a decoder by extension and fully
// decodes it into memory. It runs before playback starts and may block and
// allocate freely; nothing is left streaming from the file afterwards.
func LoadClip(path string) (*audio.Clip, error) {
	return LoadClipFrom(DefaultRegistry(), path)
}

// LoadClipFrom is LoadClip with a caller-provided decoder registry.
func LoadClipFrom(reg *audio.Registry, path string) (*audio.Clip, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer src.Close()

	clip, err := audio.DecodeAll(src, 4096)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return clip, nil
}

// LoadTrack is a convenience wrapper: load a clip, adapt it to the given
// channel count and wrap it in a track. loop selects the playback policy.
func LoadTrack(path string, channels int, loop bool) (*audio.Track, error) {
	clip, err := LoadClip(path)
	if err != nil {
		return nil, err
	}

	clip, err = clip.Remix(channels)
	if err != nil {
		return nil, fmt.Errorf("adapting %q to %d channels: %w", path, channels, err)
	}

	if loop {
		return audio.NewLoopingTrack(clip), nil
	}

	return audio.NewTrack(clip), nil
}
