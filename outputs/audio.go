package outputs

import (
	"os"

	"github.com/go-audio/audio"

	"github.com/easelkit/easel/component"
	"github.com/easelkit/easel/media"
)

// Audio type discriminators.
const (
	AudioAuto  = "auto"
	AudioNumpy = "numpy"
	AudioFile  = "file"
)

var audioTypes = []string{AudioAuto, AudioNumpy, AudioFile}

// AudioOptions configures an Audio component.
type AudioOptions struct {
	Label string
	Type  string // "auto" when empty
}

// Audio renders audio output: PCM sample buffers are written out as WAV and
// base64-encoded; file paths and URLs are encoded directly. Both carry an
// audio/wav data-URI header.
type Audio struct {
	component.Base
	typ string
}

// NewAudio creates an audio component.
func NewAudio(opts AudioOptions) (*Audio, error) {
	typ := opts.Type
	if typ == "" {
		typ = AudioAuto
	}
	switch typ {
	case AudioAuto, AudioNumpy, AudioFile:
	default:
		return nil, &component.TypeError{Component: "audio", Declared: typ, Valid: audioTypes}
	}
	return &Audio{Base: component.NewBase("audio", opts.Label), typ: typ}, nil
}

// Postprocess encodes the value as an audio/wav base64 data URI.
func (c *Audio) Postprocess(value interface{}) (interface{}, error) {
	typ := c.typ
	if typ == AudioAuto {
		switch value.(type) {
		case *audio.IntBuffer:
			typ = AudioNumpy
		case string:
			typ = AudioFile
		default:
			return nil, c.shapeError(value)
		}
	}

	switch typ {
	case AudioNumpy:
		buf, ok := value.(*audio.IntBuffer)
		if !ok {
			return nil, c.shapeError(value)
		}
		return encodeBuffer(buf)
	case AudioFile:
		path, ok := value.(string)
		if !ok {
			return nil, c.shapeError(value)
		}
		if media.IsURL(path) {
			return media.EncodeURLToBase64(path, media.WithMIME("audio/wav"))
		}
		return media.EncodeFileToBase64(path, media.WithMIME("audio/wav"))
	default:
		return nil, &component.TypeError{Component: "audio", Declared: typ, Valid: audioTypes}
	}
}

// encodeBuffer writes the buffer to a scoped temporary WAV file and encodes
// it. The temp file is removed on every exit path.
func encodeBuffer(buf *audio.IntBuffer) (string, error) {
	tmp, err := os.CreateTemp("", "easel-audio-*.wav")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := media.WriteWAV(tmp, buf); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	return media.EncodeFileToBase64(tmp.Name(), media.WithMIME("audio/wav"))
}

func (c *Audio) shapeError(value interface{}) error {
	return &component.ShapeError{
		Component: "audio",
		Value:     value,
		Accepted:  []string{"PCM sample buffer", "file path or URL"},
	}
}

func newAudioFromProps(props map[string]interface{}) (component.Component, error) {
	var opts AudioOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("audio", k, v)
		case "type":
			opts.Type, err = propString("audio", k, v)
		default:
			err = errUnknownProp("audio", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewAudio(opts)
}
