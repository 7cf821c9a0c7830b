package media

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes an integer PCM buffer as a WAV stream. The buffer's
// format (sample rate, channel count) must be set.
func WriteWAV(ws io.WriteSeeker, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("audio buffer has no format")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	enc := wav.NewEncoder(ws, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
