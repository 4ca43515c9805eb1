// Package rawjson provides type-guarded accessors over JSON documents decoded
// into interface values. Scanner reports arrive in loosely specified shapes,
// so every accessor returns a usable default instead of failing when a field
// is missing or carries an unexpected type.
package rawjson

import (
	"encoding/json"
	"strconv"
)

// Object returns v as a JSON object when it is one.
func Object(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Array returns v as a JSON array when it is one.
func Array(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// ObjectField returns obj[key] as an object, or an empty map when the field
// is missing or not an object.
func ObjectField(obj map[string]any, key string) map[string]any {
	if nested, ok := obj[key].(map[string]any); ok {
		return nested
	}
	return map[string]any{}
}

// ArrayField returns obj[key] as an array, or nil when the field is missing
// or not an array.
func ArrayField(obj map[string]any, key string) []any {
	arr, _ := obj[key].([]any)
	return arr
}

// StringField returns obj[key] as a string, falling back to def when the
// field is missing, empty, or not a string.
func StringField(obj map[string]any, key, def string) string {
	if s, ok := obj[key].(string); ok && s != "" {
		return s
	}
	return def
}

// IntField returns obj[key] as an int. JSON numbers decode as float64; other
// types report absence.
func IntField(obj map[string]any, key string) (int, bool) {
	switch v := obj[key].(type) {
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// ScalarString renders obj[key] as a string regardless of whether the source
// emitted it quoted or bare (ZAP risk codes appear both ways). Non-scalar and
// missing values render as "".
func ScalarString(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
