package outputs

import (
	"reflect"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"github.com/easelkit/easel/component"
)

// Dataframe type discriminators.
const (
	FrameAuto   = "auto"
	FramePandas = "pandas"
	FrameNumpy  = "numpy"
	FrameArray  = "array"
)

var frameTypes = []string{FrameAuto, FramePandas, FrameNumpy, FrameArray}

// TableValue is the wire value emitted by the Dataframe component. Headers
// is present only for the tabular-frame representation.
type TableValue struct {
	Headers []string        `json:"headers,omitempty"`
	Data    [][]interface{} `json:"data"`
}

// DataframeOptions configures a Dataframe component.
type DataframeOptions struct {
	Label string
	Type  string // "auto" when empty

	// Headers are column names for the renderer, exported via the template
	// context for representations that carry none of their own.
	Headers []string
}

// Dataframe renders tabular output: data frames, numeric matrices, or
// nested lists. Flat 1D input is normalized into a single-row table.
type Dataframe struct {
	component.Base
	typ     string
	headers []string
}

// NewDataframe creates a dataframe component.
func NewDataframe(opts DataframeOptions) (*Dataframe, error) {
	typ := opts.Type
	if typ == "" {
		typ = FrameAuto
	}
	switch typ {
	case FrameAuto, FramePandas, FrameNumpy, FrameArray:
	default:
		return nil, &component.TypeError{Component: "dataframe", Declared: typ, Valid: frameTypes}
	}
	return &Dataframe{
		Base:    component.NewBase("dataframe", opts.Label),
		typ:     typ,
		headers: opts.Headers,
	}, nil
}

// TemplateContext extends the base context with the configured headers.
func (c *Dataframe) TemplateContext() map[string]interface{} {
	ctx := c.Base.TemplateContext()
	ctx["headers"] = c.headers
	return ctx
}

// Postprocess converts the value into a table wire value. Under "auto" the
// representation is resolved in order: data frame, matrix, slice.
func (c *Dataframe) Postprocess(value interface{}) (interface{}, error) {
	typ := c.typ
	if typ == FrameAuto {
		switch {
		case isFrame(value):
			typ = FramePandas
		case isMatrix(value):
			typ = FrameNumpy
		case isSlice(value):
			typ = FrameArray
		default:
			return nil, c.shapeError(value)
		}
	}

	switch typ {
	case FramePandas:
		df, ok := value.(dataframe.DataFrame)
		if !ok {
			return nil, c.shapeError(value)
		}
		return frameToTable(df), nil
	case FrameNumpy:
		m, ok := value.(mat.Matrix)
		if !ok {
			return nil, c.shapeError(value)
		}
		return &TableValue{Data: matrixToRows(m)}, nil
	case FrameArray:
		if !isSlice(value) {
			return nil, c.shapeError(value)
		}
		rows, err := sliceToRows(value)
		if err != nil {
			return nil, err
		}
		return &TableValue{Data: rows}, nil
	default:
		return nil, &component.TypeError{Component: "dataframe", Declared: typ, Valid: frameTypes}
	}
}

func isFrame(value interface{}) bool {
	_, ok := value.(dataframe.DataFrame)
	return ok
}

func isMatrix(value interface{}) bool {
	_, ok := value.(mat.Matrix)
	return ok
}

func isSlice(value interface{}) bool {
	k := reflect.ValueOf(value).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func frameToTable(df dataframe.DataFrame) *TableValue {
	headers := df.Names()
	rows := make([][]interface{}, df.Nrow())
	for r := 0; r < df.Nrow(); r++ {
		row := make([]interface{}, df.Ncol())
		for col := 0; col < df.Ncol(); col++ {
			row[col] = df.Elem(r, col).Val()
		}
		rows[r] = row
	}
	return &TableValue{Headers: headers, Data: rows}
}

func matrixToRows(m mat.Matrix) [][]interface{} {
	nrows, ncols := m.Dims()
	rows := make([][]interface{}, nrows)
	for r := 0; r < nrows; r++ {
		row := make([]interface{}, ncols)
		for col := 0; col < ncols; col++ {
			row[col] = m.At(r, col)
		}
		rows[r] = row
	}
	return rows
}

// sliceToRows normalizes list input. A flat sequence (empty, or whose first
// element is not itself a sequence) is wrapped as a single row. A nested
// sequence must be a list of row lists throughout; a ragged element is a
// shape error rather than a crash.
func sliceToRows(value interface{}) ([][]interface{}, error) {
	v := reflect.ValueOf(value)
	n := v.Len()

	flat := n == 0 || !isSliceValue(v.Index(0))
	if flat {
		row := make([]interface{}, n)
		for i := 0; i < n; i++ {
			row[i] = v.Index(i).Interface()
		}
		return [][]interface{}{row}, nil
	}

	rows := make([][]interface{}, n)
	for i := 0; i < n; i++ {
		if !isSliceValue(v.Index(i)) {
			return nil, &component.ShapeError{
				Component: "dataframe",
				Value:     v.Index(i).Interface(),
				Accepted:  []string{"flat list", "list of row lists"},
			}
		}
		elem := reflect.ValueOf(v.Index(i).Interface())
		row := make([]interface{}, elem.Len())
		for j := 0; j < elem.Len(); j++ {
			row[j] = elem.Index(j).Interface()
		}
		rows[i] = row
	}
	return rows, nil
}

func isSliceValue(v reflect.Value) bool {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func (c *Dataframe) shapeError(value interface{}) error {
	return &component.ShapeError{
		Component: "dataframe",
		Value:     value,
		Accepted:  []string{"data frame", "matrix", "list"},
	}
}

func newDataframeFromProps(props map[string]interface{}) (component.Component, error) {
	var opts DataframeOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("dataframe", k, v)
		case "type":
			opts.Type, err = propString("dataframe", k, v)
		case "headers":
			opts.Headers, err = propStringSlice("dataframe", k, v)
		default:
			err = errUnknownProp("dataframe", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewDataframe(opts)
}
