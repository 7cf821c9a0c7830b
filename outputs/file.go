package outputs

import (
	"os"
	"path/filepath"

	"github.com/easelkit/easel/component"
	"github.com/easelkit/easel/media"
)

// FileValue is the wire value emitted by the File component. Data is raw
// base64 with no data-URI header.
type FileValue struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

// FileOptions configures a File component.
type FileOptions struct {
	Label string
}

// File renders an arbitrary local file as a downloadable wire value.
// Remote URLs are not accepted: the wire value requires a stat-able size.
type File struct {
	component.Base
}

// NewFile creates a file component.
func NewFile(opts FileOptions) (*File, error) {
	return &File{Base: component.NewBase("file", opts.Label)}, nil
}

// Postprocess reads the file at the given path and emits its name, byte
// size and raw base64 contents. Filesystem errors propagate unmodified.
func (c *File) Postprocess(value interface{}) (interface{}, error) {
	path, ok := value.(string)
	if !ok {
		return nil, &component.ShapeError{Component: "file", Value: value, Accepted: []string{"file path"}}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	data, err := media.EncodeFileToBase64(path, media.WithoutHeader())
	if err != nil {
		return nil, err
	}

	return &FileValue{
		Name: filepath.Base(path),
		Size: info.Size(),
		Data: data,
	}, nil
}

func newFileFromProps(props map[string]interface{}) (component.Component, error) {
	var opts FileOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("file", k, v)
		default:
			err = errUnknownProp("file", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewFile(opts)
}
