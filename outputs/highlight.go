package outputs

import (
	"github.com/bytedance/sonic"

	"github.com/easelkit/easel/component"
)

// Span is one highlighted text segment: the text plus its category or
// score. It marshals as a two-element JSON array.
type Span struct {
	Text     string
	Category interface{}
}

// MarshalJSON encodes the span as [text, category].
func (s Span) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([]interface{}{s.Text, s.Category})
}

// HighlightedTextOptions configures a HighlightedText component.
type HighlightedTextOptions struct {
	Label string

	// ColorMap maps categories to color strings for the renderer. It is
	// exported via the template context only.
	ColorMap map[string]string
}

// HighlightedText renders pre-segmented text spans. Postprocess is identity:
// the value must already be a span sequence and is not validated here.
type HighlightedText struct {
	component.Base
	colorMap map[string]string
}

// NewHighlightedText creates a highlighted-text component.
func NewHighlightedText(opts HighlightedTextOptions) (*HighlightedText, error) {
	return &HighlightedText{
		Base:     component.NewBase("highlight", opts.Label),
		colorMap: opts.ColorMap,
	}, nil
}

// Postprocess passes the span sequence through unchanged.
func (c *HighlightedText) Postprocess(value interface{}) (interface{}, error) {
	return value, nil
}

// TemplateContext extends the base context with the color map.
func (c *HighlightedText) TemplateContext() map[string]interface{} {
	ctx := c.Base.TemplateContext()
	ctx["color_map"] = c.colorMap
	return ctx
}

func newHighlightedTextFromProps(props map[string]interface{}) (component.Component, error) {
	var opts HighlightedTextOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("highlight", k, v)
		case "color_map":
			opts.ColorMap, err = propStringMap("highlight", k, v)
		default:
			err = errUnknownProp("highlight", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewHighlightedText(opts)
}
