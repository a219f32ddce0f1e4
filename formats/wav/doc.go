// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading WAV files in PCM 16-bit format and writing
// mono 16-bit PCM WAV files. It uses the github.com/go-audio library for
// robust WAV chunk handling.
//
// # Supported Formats
//
// Currently supported for decoding:
//   - PCM 16-bit integer (most common WAV format)
//   - Mono and multi-channel (samples stay interleaved)
//   - Any sample rate
//
// Anything else (8/24/32-bit, IEEE float, compressed codecs) is rejected
// with a sentinel error rather than misread.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], normalized as raw/32768.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: Only 16-bit integer PCM is supported
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// Decode errors surface synchronously, before any playback starts; a
// failed decode never returns a partial source.
package wav
