package options

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NormalizeFieldValue flattens one raw field value into its display
// string. The second return is false when the record must be skipped
// (null or empty-string values). Precedence: skip, sequence, named
// object, scalar.
func NormalizeFieldValue(v any) (string, bool) {
	switch fv := v.(type) {
	case nil:
		return "", false
	case string:
		if fv == "" {
			return "", false
		}
		return fv, true
	case []any:
		parts := make([]string, 0, len(fv))
		for _, element := range fv {
			parts = append(parts, elementString(element))
		}
		return strings.Join(parts, ", "), true
	case map[string]any:
		if name, ok := fv["name"]; ok && name != nil {
			return stringify(name), true
		}
		return stringify(fv), true
	default:
		return stringify(fv), true
	}
}

// elementString renders one sequence element: named objects contribute
// their name, everything else its natural string form.
func elementString(element any) string {
	if obj, ok := element.(map[string]any); ok {
		if name, ok := obj["name"]; ok && name != nil {
			return stringify(name)
		}
	}
	return stringify(element)
}

// stringify renders a decoded JSON value as a flat string: strings as
// themselves, numbers by their literal, booleans as true/false, anything
// else by its compact JSON encoding.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
