// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package wraps github.com/go-audio/aiff and exposes decoded audio
// through the audio.Source interface. Only 16-bit integer PCM AIFF files
// are supported; other bit depths are rejected with
// ErrOnlyPCM16bitSupported.
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are normalized to float32 in [-1.0, 1.0] as raw/32768;
// multi-channel audio stays interleaved.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
package aiff
