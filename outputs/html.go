package outputs

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/easelkit/easel/component"
)

// HTMLOptions configures an HTML component.
type HTMLOptions struct {
	Label string

	// Sanitize runs the markup through a UGC sanitization policy before
	// emitting it. Off by default: the raw string is the wire value and
	// validity is the caller's responsibility.
	Sanitize bool
}

// HTML renders raw markup.
type HTML struct {
	component.Base
	policy *bluemonday.Policy
}

// NewHTML creates an HTML component.
func NewHTML(opts HTMLOptions) (*HTML, error) {
	c := &HTML{Base: component.NewBase("html", opts.Label)}
	if opts.Sanitize {
		c.policy = bluemonday.UGCPolicy()
	}
	return c, nil
}

// Postprocess passes the markup through, sanitized when configured.
func (c *HTML) Postprocess(value interface{}) (interface{}, error) {
	if c.policy == nil {
		return value, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, &component.ShapeError{Component: "html", Value: value, Accepted: []string{"markup string"}}
	}
	return c.policy.Sanitize(s), nil
}

func newHTMLFromProps(props map[string]interface{}) (component.Component, error) {
	var opts HTMLOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("html", k, v)
		case "sanitize":
			opts.Sanitize, err = propBool("html", k, v)
		default:
			err = errUnknownProp("html", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewHTML(opts)
}
