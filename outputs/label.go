package outputs

import (
	"sort"

	"github.com/easelkit/easel/component"
)

// Label type discriminators.
const (
	LabelAuto        = "auto"
	LabelPlain       = "label"
	LabelConfidences = "confidences"
)

var labelTypes = []string{LabelAuto, LabelPlain, LabelConfidences}

// LabelValue is the wire value emitted by the Label component.
type LabelValue struct {
	Label       string       `json:"label"`
	Confidences []Confidence `json:"confidences,omitempty"`
}

// Confidence is one scored category in a Label wire value.
type Confidence struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// LabelOptions configures a Label component.
type LabelOptions struct {
	Label         string
	Type          string // "auto" when empty
	NumTopClasses int    // cap on emitted confidences, 0 means unbounded
}

// Label renders a classification result: either a single category name or a
// category-to-score mapping sorted by descending confidence.
type Label struct {
	component.Base
	typ           string
	numTopClasses int
}

// NewLabel creates a label component.
func NewLabel(opts LabelOptions) (*Label, error) {
	typ := opts.Type
	if typ == "" {
		typ = LabelAuto
	}
	switch typ {
	case LabelAuto, LabelPlain, LabelConfidences:
	default:
		return nil, &component.TypeError{Component: "label", Declared: typ, Valid: labelTypes}
	}
	return &Label{
		Base:          component.NewBase("label", opts.Label),
		typ:           typ,
		numTopClasses: opts.NumTopClasses,
	}, nil
}

// Postprocess converts a scalar category or a score mapping into a wire
// value. Score mappings are sorted by descending confidence; equal scores
// order by category name so the output is deterministic.
func (l *Label) Postprocess(value interface{}) (interface{}, error) {
	if l.typ == LabelAuto || l.typ == LabelPlain {
		if s, ok := value.(string); ok {
			return &LabelValue{Label: s}, nil
		}
		if s, ok := formatNumber(value); ok {
			return &LabelValue{Label: s}, nil
		}
	}

	if l.typ == LabelAuto || l.typ == LabelConfidences {
		if scores, ok := toScoreMap(value); ok {
			return l.rank(scores), nil
		}
	}

	return nil, &component.ShapeError{
		Component: "label",
		Value:     value,
		Accepted:  []string{"string", "number", "map of category to score"},
	}
}

// Rebuild passes the wire value through unchanged; no decoding is needed.
func (l *Label) Rebuild(dir string, data interface{}) (interface{}, error) {
	return data, nil
}

func (l *Label) rank(scores map[string]float64) *LabelValue {
	ranked := make([]Confidence, 0, len(scores))
	for category, score := range scores {
		ranked = append(ranked, Confidence{Label: category, Confidence: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Label < ranked[j].Label
	})

	if l.numTopClasses > 0 && len(ranked) > l.numTopClasses {
		ranked = ranked[:l.numTopClasses]
	}
	return &LabelValue{Label: ranked[0].Label, Confidences: ranked}
}

func toScoreMap(value interface{}) (map[string]float64, bool) {
	switch m := value.(type) {
	case map[string]float64:
		if len(m) == 0 {
			return nil, false
		}
		return m, true
	case map[string]interface{}:
		if len(m) == 0 {
			return nil, false
		}
		out := make(map[string]float64, len(m))
		for k, v := range m {
			f, ok := asFloat(v)
			if !ok {
				return nil, false
			}
			out[k] = f
		}
		return out, true
	default:
		return nil, false
	}
}

func newLabelFromProps(props map[string]interface{}) (component.Component, error) {
	var opts LabelOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("label", k, v)
		case "type":
			opts.Type, err = propString("label", k, v)
		case "num_top_classes":
			opts.NumTopClasses, err = propInt("label", k, v)
		default:
			err = errUnknownProp("label", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewLabel(opts)
}
