// SPDX-License-Identifier: EPL-2.0

// Package player drives an audio.Mixer through the operating system's
// output device.
//
// It is a thin layer over github.com/ebitengine/oto/v3. The driver side
// owns the schedule: once per hardware period it asks for a block of
// bytes, the mixer fills the matching float32 block, and the floats are
// packed as 16-bit little-endian PCM. The block length is the driver's
// choice and can vary between calls.
//
// # Usage
//
//	mixer := audio.NewMixer(audio.NewLoopingTrack(clip))
//	p, err := player.Open(player.Config{SampleRate: 44100, Channels: 2}, mixer)
//	if err != nil {
//	    // Handle error
//	}
//	defer p.Close()
//
//	p.Play()
//	time.Sleep(3 * time.Second)
//
// # Real-Time Contract
//
// The pull happens on a goroutine with a hard deadline of one hardware
// period; missing it is an audible underrun. Everything on that path
// (Mixer.Fill, Track.Next, the int16 packing) is allocation-free and
// lock-free in steady state. Decoding, channel remixing and track setup
// must happen before Open.
//
// A hardware or stream error ends the playback session; there is no
// retry. The process is expected to exit or tear the player down.
package player
