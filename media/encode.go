package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// FileOption adjusts how EncodeFileToBase64 builds its output.
type FileOption func(*fileOptions)

type fileOptions struct {
	mime     string
	noHeader bool
}

// WithMIME forces the data-URI header to the given MIME type instead of
// detecting it from the file contents.
func WithMIME(mime string) FileOption {
	return func(o *fileOptions) { o.mime = mime }
}

// WithoutHeader emits raw base64 with no data-URI prefix.
func WithoutHeader() FileOption {
	return func(o *fileOptions) { o.noHeader = true }
}

// EncodeArrayToBase64 encodes a pixel array as a PNG data URI.
func EncodeArrayToBase64(a *Array) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.Image()); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeFileToBase64 reads a file and encodes it as base64. By default the
// output carries a data-URI header with the detected MIME type.
func EncodeFileToBase64(path string, opts ...FileOption) (string, error) {
	var o fileOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return encodeBytes(data, o), nil
}

// EncodePlotToBase64 renders a plot to PNG and encodes it as a data URI.
func EncodePlotToBase64(p *plot.Plot) (string, error) {
	w, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBase64ToImage decodes a base64 raster payload into an image.
// A data-URI prefix, when present, is stripped before decoding.
func DecodeBase64ToImage(encoded string) (image.Image, error) {
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("undecodable image payload: %w", err)
	}
	return img, nil
}

func encodeBytes(data []byte, o fileOptions) string {
	payload := base64.StdEncoding.EncodeToString(data)
	if o.noHeader {
		return payload
	}
	mime := o.mime
	if mime == "" {
		mime = mimetype.Detect(data).String()
	}
	return "data:" + mime + ";base64," + payload
}
