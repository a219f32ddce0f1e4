// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package wraps github.com/hajimehoshi/go-mp3 and exposes decoded
// audio through the audio.Source interface. go-mp3 always emits 16-bit
// stereo PCM, which this package normalizes to interleaved float32 in
// [-1.0, 1.0].
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("music.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The sample rate is read from the MP3 stream; the channel count is
// always 2.
//
// # Error Handling
//
// Decode fails synchronously when the input is not a parsable MP3 stream;
// it never returns a partial source.
package mp3
