// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package wraps github.com/jfreymuth/oggvorbis and exposes decoded
// audio through the audio.Source interface. Vorbis decodes natively to
// float32, so no normalization step is applied here.
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("music.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Sample rate and channel count come from the Vorbis stream headers;
// multi-channel audio stays interleaved.
//
// # Error Handling
//
// Decode fails synchronously when the input is not a parsable Ogg Vorbis
// stream; it never returns a partial source.
package vorbis
