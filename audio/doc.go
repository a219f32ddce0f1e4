// SPDX-License-Identifier: EPL-2.0

// Package audio provides the playback core primitives.
//
// This package contains the building blocks for real-time mixing:
//   - Source interface for decoded audio input
//   - Clip for fully materialized sample data
//   - Track for per-clip playhead state and playback policy
//   - Mixer for summing tracks into output blocks
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is how format decoders hand samples to the core:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Sources stream; the playback core does not. DecodeAll drains a Source
// into a Clip before the output stream is opened, so nothing on the
// real-time path ever reads a file.
//
// # Clips and Tracks
//
// A Clip is an immutable, interleaved float32 sample sequence. A Track
// pairs a Clip with a playhead:
//
//	clip, err := audio.DecodeAll(src, 4096)
//	if err != nil {
//	    // Handle error
//	}
//	track := audio.NewLoopingTrack(clip)
//	s := track.Next() // one sample, playhead advanced
//
// One-shot tracks (NewTrack) yield silence forever once the clip ends;
// looping tracks (NewLoopingTrack) wrap around and never end.
//
// # Mixing
//
// The Mixer owns a fixed set of tracks and fills output blocks with their
// plain sum:
//
//	mixer := audio.NewMixer(trackA, trackB)
//	block := make([]float32, 512)
//	mixer.Fill(block)
//
// Summation is deliberately raw: no averaging, no limiter. Two tracks at
// full amplitude will exceed [-1, 1] and clip downstream. Keeping the mix
// untouched makes the output exactly reproducible, which matters more here
// than loudness safety.
//
// # Real-Time Constraints
//
// Fill and Next run inside the audio driver's callback, which has a hard
// deadline of one hardware period. They never allocate, block, perform I/O
// or return errors. Everything that can fail (decoding, channel remixing,
// seeking) happens before the stream starts and reports errors there.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Decoders normalize integer PCM exactly once (dividing by 32768 for
// 16-bit input); the mixer never rescales.
//
// # Concurrency
//
// There is exactly one producer of Fill calls per Mixer (the stream's
// callback goroutine), so the Mixer/Track pair carries no locks. The
// decoder Registry, which is used during setup from arbitrary goroutines,
// is the only synchronized type in the package.
//
// # Error Handling
//
// Setup-time functions return sentinel errors (ErrNoSamples,
// ErrNotFrameAligned, ErrSeekOutOfRange, ErrChannelMismatch) that can be
// matched with errors.Is. The playback path has no error returns at all;
// its invariants are established at construction time.
package audio
