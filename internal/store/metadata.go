package store

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MetaString returns metadata[key] as a string. Select-dropdown values
// ({key, value}) resolve to their key, references to their id.
func MetaString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return Stringify(v)
}

// MetaInt returns metadata[key] as an int. ok is false when the value is
// missing, not numeric, or not a whole number.
func MetaInt(m map[string]interface{}, key string) (int, bool) {
	v, exists := m[key]
	if !exists || v == nil {
		return 0, false
	}

	var f float64
	switch val := v.(type) {
	case int:
		return val, true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case float64:
		f = val
	case float32:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// MetaObject returns metadata[key] when it is an expanded object.
func MetaObject(m map[string]interface{}, key string) (map[string]interface{}, bool) {
	v, ok := m[key].(map[string]interface{})
	return v, ok
}

// MetaList returns metadata[key] when it is a list.
func MetaList(m map[string]interface{}, key string) []interface{} {
	v, _ := m[key].([]interface{})
	return v
}
