package attrs

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Scalar coercion helpers. Each accepts the common raw forms an input map may
// carry (string, numeric, bool, json.Number) and reports ok == false when the
// value cannot be interpreted as the target kind. They never error and never
// keep the raw value.

// CoerceString coerces a raw value to a string.
func CoerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// CoerceInt coerces a raw value to an int. Fractional floats do not coerce.
func CoerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
		return 0, false
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
		if iv, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return iv, true
		}
		return 0, false
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// CoerceInt64 coerces a raw value to an int64.
func CoerceInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
		return 0, false
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
		if iv, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return iv, true
		}
		return 0, false
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// CoerceFloat coerces a raw value to a float64.
func CoerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
		return 0, false
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// CoerceBool coerces a raw value to a bool. Strings follow strconv.ParseBool.
func CoerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b, true
		}
		return false, false
	case int:
		if t == 0 || t == 1 {
			return t == 1, true
		}
		return false, false
	default:
		return false, false
	}
}

// CoerceTime coerces a raw value to a time.Time. Strings are parsed as
// RFC 3339 or as a bare date; time.Time values pass through.
func CoerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return ts, true
		}
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			return ts, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// CoerceDuration coerces a raw value to a time.Duration. Strings accept Go
// syntax ("1h30m", "90s", "2d") and human syntax ("5 minutes", "1 hour");
// numeric values are interpreted as time.Duration units directly.
func CoerceDuration(v any) (time.Duration, bool) {
	switch t := v.(type) {
	case time.Duration:
		return t, true
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
		if d, err := ParseHumanDuration(t); err == nil {
			return d, true
		}
		return 0, false
	case int:
		return time.Duration(t), true
	case int64:
		return time.Duration(t), true
	case float64:
		return time.Duration(int64(t)), true
	default:
		return 0, false
	}
}

var durationUnits = map[string]string{
	"nanosecond":   "ns",
	"nanoseconds":  "ns",
	"microsecond":  "us",
	"microseconds": "us",
	"millisecond":  "ms",
	"milliseconds": "ms",
	"second":       "s",
	"seconds":      "s",
	"minute":       "m",
	"minutes":      "m",
	"hour":         "h",
	"hours":        "h",
	"day":          "d",
	"days":         "d",
	"week":         "w",
	"weeks":        "w",
}

// ParseHumanDuration parses a duration in Go syntax or in "N unit" word form
// ("30 minutes", "1 hour"). Word units compose ("1 hour 30 minutes").
func ParseHumanDuration(s string) (time.Duration, error) {
	compact := strings.Builder{}
	for _, field := range strings.Fields(s) {
		if unit, ok := durationUnits[strings.ToLower(field)]; ok {
			compact.WriteString(unit)
			continue
		}
		compact.WriteString(field)
	}
	return str2duration.ParseDuration(compact.String())
}
