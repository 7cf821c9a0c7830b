package outputs

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/plot"

	"github.com/easelkit/easel/component"
	"github.com/easelkit/easel/media"
)

// Image type discriminators.
const (
	ImageAuto  = "auto"
	ImageNumpy = "numpy"
	ImagePIL   = "pil"
	ImageFile  = "file"
	ImagePlot  = "plot"
)

var imageTypes = []string{ImageAuto, ImageNumpy, ImagePIL, ImageFile, ImagePlot}

// rebuildTimestampLayout is second-granular; two rebuilds within the same
// second collide unless a filename token is configured.
const rebuildTimestampLayout = "2006-01-02-15-04-05"

// UUIDToken returns a filename token suitable for ImageOptions.FilenameToken
// when rebuild callers need same-second uniqueness.
func UUIDToken() string {
	return uuid.NewString()
}

// ImageOptions configures an Image component.
type ImageOptions struct {
	Label string
	Type  string // "auto" when empty

	// Plot is the deprecated alias for Type "plot". When set it forces the
	// type after logging a deprecation warning.
	Plot bool

	// FilenameToken, when non-nil, supplies a unique suffix appended to
	// rebuild filenames (see UUIDToken).
	FilenameToken func() string
}

// Image renders raster output: pixel arrays, decoded images, image files or
// URLs, and rendered plots, all encoded as base64 data URIs.
type Image struct {
	component.Base
	typ   string
	token func() string
}

// NewImage creates an image component. Configuration is normalized here:
// after construction the type discriminator is the single source of truth.
func NewImage(opts ImageOptions) (*Image, error) {
	typ := opts.Type
	if opts.Plot {
		logger.Warn(`the plot flag is deprecated, declare type "plot" instead`)
		typ = ImagePlot
	}
	if typ == "" {
		typ = ImageAuto
	}
	switch typ {
	case ImageAuto, ImageNumpy, ImagePIL, ImageFile, ImagePlot:
	default:
		return nil, &component.TypeError{Component: "image", Declared: typ, Valid: imageTypes}
	}
	return &Image{
		Base:  component.NewBase("image", opts.Label),
		typ:   typ,
		token: opts.FilenameToken,
	}, nil
}

// Postprocess encodes the value as a base64 data URI. Under "auto" the
// representation is resolved in order: pixel array, decoded image, file path
// or URL, plot handle.
func (c *Image) Postprocess(value interface{}) (interface{}, error) {
	typ := c.typ
	if typ == ImageAuto {
		switch value.(type) {
		case *media.Array:
			typ = ImageNumpy
		case image.Image:
			typ = ImagePIL
		case string:
			typ = ImageFile
		case *plot.Plot:
			typ = ImagePlot
		default:
			return nil, c.shapeError(value)
		}
	}

	switch typ {
	case ImageNumpy:
		arr, ok := value.(*media.Array)
		if !ok {
			return nil, c.shapeError(value)
		}
		return media.EncodeArrayToBase64(arr)
	case ImagePIL:
		img, ok := value.(image.Image)
		if !ok {
			return nil, c.shapeError(value)
		}
		return media.EncodeArrayToBase64(media.ArrayFromImage(img))
	case ImageFile:
		path, ok := value.(string)
		if !ok {
			return nil, c.shapeError(value)
		}
		if media.IsURL(path) {
			return media.EncodeURLToBase64(path)
		}
		return media.EncodeFileToBase64(path)
	case ImagePlot:
		p, ok := value.(*plot.Plot)
		if !ok {
			return nil, c.shapeError(value)
		}
		return media.EncodePlotToBase64(p)
	default:
		return nil, &component.TypeError{Component: "image", Declared: typ, Valid: imageTypes}
	}
}

// Rebuild decodes a base64 raster payload and persists it as a PNG under
// dir, returning the filename (not the full path). Filenames embed the
// current timestamp to second precision, so concurrent same-second rebuilds
// overwrite each other unless a FilenameToken is configured.
func (c *Image) Rebuild(dir string, data interface{}) (interface{}, error) {
	encoded, ok := data.(string)
	if !ok {
		return nil, &component.ShapeError{Component: "image", Value: data, Accepted: []string{"base64 string"}}
	}

	img, err := media.DecodeBase64ToImage(encoded)
	if err != nil {
		return nil, err
	}

	name := "output_" + time.Now().Format(rebuildTimestampLayout)
	if c.token != nil {
		name += "_" + c.token()
	}
	name += ".png"

	// Encode fully before creating the file so a failed rebuild leaves no
	// partial artifact in the caller's directory.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		os.Remove(path)
		return nil, err
	}
	return name, nil
}

func (c *Image) shapeError(value interface{}) error {
	return &component.ShapeError{
		Component: "image",
		Value:     value,
		Accepted:  []string{"pixel array", "image", "file path or URL", "plot"},
	}
}

func newImageFromProps(props map[string]interface{}) (component.Component, error) {
	var opts ImageOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("image", k, v)
		case "type":
			opts.Type, err = propString("image", k, v)
		case "plot":
			opts.Plot, err = propBool("image", k, v)
		default:
			err = errUnknownProp("image", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewImage(opts)
}
