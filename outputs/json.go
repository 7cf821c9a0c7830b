package outputs

import (
	"github.com/bytedance/sonic"

	"github.com/easelkit/easel/component"
)

// JSONOptions configures a JSON component.
type JSONOptions struct {
	Label string
}

// JSON renders a JSON string or a JSON-serializable value. String input is
// re-encoded as a JSON string literal; anything else passes through and
// serialization failures surface from the caller's serialization layer.
type JSON struct {
	component.Base
}

// NewJSON creates a JSON component.
func NewJSON(opts JSONOptions) (*JSON, error) {
	return &JSON{Base: component.NewBase("json", opts.Label)}, nil
}

// Postprocess double-encodes string input and passes everything else
// through unchanged.
func (c *JSON) Postprocess(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		return sonic.MarshalString(s)
	}
	return value, nil
}

func newJSONFromProps(props map[string]interface{}) (component.Component, error) {
	var opts JSONOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("json", k, v)
		default:
			err = errUnknownProp("json", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewJSON(opts)
}
