// SPDX-License-Identifier: EPL-2.0

// Package playmix plays pre-decoded audio clips through the system output
// device, mixing any number of them in real time.
//
// The pipeline is deliberately split in two halves. Setup, which may block
// and allocate: decode files into normalized float32 clips, adapt their
// channel layout, wrap them in tracks. Playback, which may not: once the
// stream is running, the driver's callback pulls mixed blocks from the
// Mixer on a hard deadline, and everything on that path is allocation-free
// and error-free by construction.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// Load files, build a mix and play it:
//
//	mixer := audio.NewMixer()
//	for _, path := range []string{"drums.wav", "bass.wav"} {
//	    track, err := playmix.LoadTrack(path, 2, true)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    mixer.Add(track)
//	}
//
//	p, err := player.Open(player.Config{SampleRate: 44100, Channels: 2}, mixer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	p.Play()
//	time.Sleep(10 * time.Second)
//
// A failed decode aborts setup before any sound is produced; the stream is
// never opened on top of a partially loaded track set.
//
// # Building Blocks
//
// For more control, use the audio subpackage directly:
//
//	clip, err := playmix.LoadClip("loop.wav")
//	track := audio.NewLoopingTrack(clip)
//	mixer := audio.NewMixer(track)
//
//	block := make([]float32, 512)
//	mixer.Fill(block) // one callback period worth of mixed samples
//
// Tracks come in two flavors: one-shot (silence after the clip ends) and
// looping (wrap-around, plays forever). The policy is fixed when the track
// is created.
//
// # Mixing Model
//
// The Mixer sums tracks sample by sample with no averaging and no
// limiter. Mixing N full-amplitude clips can exceed [-1, 1]; the player
// clamps only at the final 16-bit conversion. Keep input levels sensible.
//
// # Format Decoders
//
// Each format has its own decoder returning an audio.Source:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// Decoders are looked up by file extension through a Registry; see
// DefaultRegistry. All decoding happens up front — the real-time path
// never touches a file.
package playmix
