package outputs

import (
	"reflect"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/easelkit/easel/component"
)

// Pair is one key/value row in a KeyValues wire value. It marshals as a
// two-element JSON array.
type Pair struct {
	Key   string
	Value interface{}
}

// MarshalJSON encodes the pair as [key, value].
func (p Pair) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([]interface{}{p.Key, p.Value})
}

// KeyValuesOptions configures a KeyValues component.
type KeyValuesOptions struct {
	Label string
}

// KeyValues renders a mapping or pair list as key/value rows.
type KeyValues struct {
	component.Base
}

// NewKeyValues creates a key-values component.
func NewKeyValues(opts KeyValuesOptions) (*KeyValues, error) {
	return &KeyValues{Base: component.NewBase("key_values", opts.Label)}, nil
}

// Postprocess converts a mapping into a pair list ordered by key; pair and
// plain lists pass through unchanged.
func (c *KeyValues) Postprocess(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case []Pair:
		return v, nil
	case []interface{}:
		return v, nil
	}

	if pairs, ok := mapToPairs(value); ok {
		return pairs, nil
	}

	return nil, &component.ShapeError{
		Component: "key_values",
		Value:     value,
		Accepted:  []string{"map", "list of pairs"},
	}
}

// mapToPairs converts any string-keyed map into key-ordered pairs.
func mapToPairs(value interface{}) ([]Pair, bool) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: v.MapIndex(reflect.ValueOf(k)).Interface()})
	}
	return pairs, true
}

func newKeyValuesFromProps(props map[string]interface{}) (component.Component, error) {
	var opts KeyValuesOptions
	var err error
	for k, v := range props {
		switch k {
		case "label":
			opts.Label, err = propString("key_values", k, v)
		default:
			err = errUnknownProp("key_values", k)
		}
		if err != nil {
			return nil, err
		}
	}
	return NewKeyValues(opts)
}
