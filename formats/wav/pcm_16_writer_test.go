// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriteWAV16_HeaderLayout(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("output length = %d, want %d", len(data), 44+len(samples)*2)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}

	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}

	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}

	if got := binary.LittleEndian.Uint32(data[24:28]); got != 8000 {
		t.Errorf("sample rate = %d, want 8000", got)
	}

	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}

	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", got, len(samples)*2)
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != 44 {
		t.Errorf("output length = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_RoundTripThroughDecoder(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}

	out := make([]float32, len(samples))
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, raw := range samples {
		if want := float32(raw) / 32768.0; out[i] != want {
			t.Errorf("sample %d = %v, want %v", i, out[i], want)
		}
	}
}

func TestWriteWAV16_LargeFileChunking(t *testing.T) {
	t.Parallel()

	// More than one 8192-sample chunk
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i % 512)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("output length = %d, want %d", len(data), 44+len(samples)*2)
	}

	// Verify a sample past the first chunk boundary
	idx := 44 + 10000*2
	if got := int16(binary.LittleEndian.Uint16(data[idx : idx+2])); got != int16(10000%512) {
		t.Errorf("sample 10000 = %d, want %d", got, 10000%512)
	}
}

// failWriter fails after a given number of writes
type failWriter struct {
	allowed int
	err     error
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.allowed <= 0 {
		return 0, f.err
	}
	f.allowed--
	return len(p), nil
}

func TestWriteWAV16_WriterErrors(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")

	// Header write fails
	err := WriteWAV16(&failWriter{allowed: 0, err: writeErr}, 8000, []int16{1, 2, 3})
	if !errors.Is(err, writeErr) {
		t.Errorf("WriteWAV16() error = %v, want wrapped %v", err, writeErr)
	}

	// Data write fails
	err = WriteWAV16(&failWriter{allowed: 1, err: writeErr}, 8000, []int16{1, 2, 3})
	if !errors.Is(err, writeErr) {
		t.Errorf("WriteWAV16() error = %v, want wrapped %v", err, writeErr)
	}
}
