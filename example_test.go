// SPDX-License-Identifier: EPL-2.0

package playmix_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/playmix"
	"github.com/ik5/playmix/audio"
	"github.com/ik5/playmix/formats/wav"
)

// Example_loadAndMix demonstrates the full setup path: write a WAV file,
// load it into a clip, and mix it as a looping track.
func Example_loadAndMix() {
	dir, err := os.MkdirTemp("", "playmix")
	if err != nil {
		fmt.Println("tempdir:", err)
		return
	}
	defer os.RemoveAll(dir)

	// A two-sample file: full amplitude, then half negative
	path := filepath.Join(dir, "blip.wav")
	f, _ := os.Create(path)
	wav.WriteWAV16(f, 44100, []int16{-32768, 16384})
	f.Close()

	clip, err := playmix.LoadClip(path)
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	mixer := audio.NewMixer(audio.NewLoopingTrack(clip))

	block := make([]float32, 4)
	mixer.Fill(block)

	fmt.Printf("%.1f %.1f %.1f %.1f\n", block[0], block[1], block[2], block[3])
	// Output: -1.0 0.5 -1.0 0.5
}

// ExampleLoadClip demonstrates failing fast on unsupported input.
func ExampleLoadClip() {
	_, err := playmix.LoadClip("track.xyz")
	fmt.Println(err)
	// Output: "track.xyz": unknown audio format
}
