package outputs

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// logger receives library-level warnings (currently only the deprecation
// warning for the legacy plot flag). Components never log during
// transformation.
var logger = zap.NewNop()

// SetLogger installs the logger used for construction-time warnings.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func errUnknownProp(kind, key string) error {
	return fmt.Errorf("%s: unknown property %q", kind, key)
}

func propString(kind, key string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: property %q must be a string, got %T", kind, key, v)
	}
	return s, nil
}

func propInt(kind, key string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s: property %q must be an integer, got %T", kind, key, v)
	}
}

func propBool(kind, key string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: property %q must be a boolean, got %T", kind, key, v)
	}
	return b, nil
}

func propStringMap(kind, key string, v interface{}) (map[string]string, error) {
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("%s: property %q values must be strings, got %T", kind, key, val)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: property %q must be a string map, got %T", kind, key, v)
	}
}

func propStringSlice(kind, key string, v interface{}) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s: property %q entries must be strings, got %T", kind, key, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: property %q must be a string list, got %T", kind, key, v)
	}
}

// formatNumber renders a numeric value in its decimal string form.
func formatNumber(v interface{}) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}

// asFloat coerces the numeric types a score mapping may carry.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
