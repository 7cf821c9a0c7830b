package outputs

import (
	"github.com/easelkit/easel/component"
)

// Textbox type discriminators.
const (
	TextAuto   = "auto"
	TextString = "str"
	TextNumber = "number"
)

var textboxTypes = []string{TextAuto, TextString, TextNumber}

// TextboxOptions configures a Textbox component.
type TextboxOptions struct {
	Label string
	Type  string // "auto" when empty
}

// Textbox renders string or numeric output as text.
type Textbox struct {
	component.Base
	typ string
}

// NewTextbox creates a textbox component.
func NewTextbox(opts TextboxOptions) (*Textbox, error) {
	typ := opts.Type
	if typ == "" {
		typ = TextAuto
	}
	switch typ {
	case TextAuto, TextString, TextNumber:
	default:
		return nil, &component.TypeError{Component: "textbox", Declared: typ, Valid: textboxTypes}
	}
	return &Textbox{Base: component.NewBase("textbox", opts.Label), typ: typ}, nil
}

// Postprocess passes strings through unchanged and renders numbers in
// decimal string form.
func (t *Textbox) Postprocess(value interface{}) (interface{}, error) {
	switch t.typ {
	case TextAuto, TextString:
		return value, nil
	case TextNumber:
		s, ok := formatNumber(value)
		if !ok {
			return nil, &component.ShapeError{Component: "textbox", Value: value, Accepted: []string{"number"}}
		}
		return s, nil
	default:
		return nil, &component.TypeError{Component: "textbox", Declared: t.typ, Valid: textboxTypes}
	}
}

func newTextboxFromProps(props map[string]interface{}) (component.Component, error) {
	var opts TextboxOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("textbox", k, v)
		case "type":
			opts.Type, err = propString("textbox", k, v)
		default:
			err = errUnknownProp("textbox", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewTextbox(opts)
}
