package coerce

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts lists the timestamp formats accepted by DateOr, most specific
// first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// NumberOr returns v as a float64, or fallback when v is missing or cannot be
// parsed. NaN and infinities are treated as unparseable.
func NumberOr(v any, fallback float64) float64 {
	if n, ok := number(v); ok {
		return n
	}
	return fallback
}

// IntOr returns v as an int when it holds an integral number, otherwise
// fallback.
func IntOr(v any, fallback int) int {
	n, ok := number(v)
	if !ok || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return fallback
	}
	return int(n)
}

// ID extracts a positive integer identity.
func ID(v any) (int, bool) {
	n, ok := number(v)
	if !ok || n <= 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// DateOr parses v as a timestamp. The boolean is false when v is missing or no
// known layout matches; callers never receive a zero time as a valid value.
func DateOr(v any) (time.Time, bool) {
	switch value := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return value, !value.IsZero()
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, trimmed); err == nil {
				return ts, true
			}
		}
		if secs, err := strconv.ParseInt(trimmed, 10, 64); err == nil && secs > 0 {
			return time.Unix(secs, 0).UTC(), true
		}
		return time.Time{}, false
	}
	if n, ok := number(v); ok && n > 0 {
		return time.Unix(int64(n), 0).UTC(), true
	}
	return time.Time{}, false
}

// Enum returns v when it is one of allowed, otherwise fallback.
func Enum[T ~string](v any, allowed []T, fallback T) T {
	candidate := T(strings.TrimSpace(String(v)))
	if candidate == "" {
		return fallback
	}
	if slices.Contains(allowed, candidate) {
		return candidate
	}
	return fallback
}

// String renders scalars as text. Missing values, objects and lists yield "".
func String(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return formatFloat(value)
	case float32:
		return formatFloat(float64(value))
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	default:
		return ""
	}
}

// Bool reports whether v holds a truthy flag. Servers send hide flags as
// booleans, numbers and strings interchangeably.
func Bool(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	}
	if n, ok := number(v); ok {
		return n != 0
	}
	return false
}

// Decimal parses monetary values without going through float64 when the
// payload carries them as strings.
func Decimal(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return value, true
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(value.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	if n, ok := number(v); ok {
		return decimal.NewFromFloat(n), true
	}
	return decimal.Zero, false
}

// Record returns v as a string keyed object.
func Record(v any) (map[string]any, bool) {
	switch value := v.(type) {
	case map[string]any:
		return value, value != nil
	case map[any]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			name := String(key)
			if name == "" {
				continue
			}
			out[name] = item
		}
		return out, true
	default:
		return nil, false
	}
}

// List returns v as a slice. Non-list values yield nil.
func List(v any) []any {
	switch value := v.(type) {
	case []any:
		return value
	case []map[string]any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out
	default:
		return nil
	}
}

// First returns the value stored under the first key present with a non-nil
// value. Servers alias identity fields (ID, id, term_id) across endpoints.
func First(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	var n float64
	switch value := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case int32:
		n = float64(value)
	case uint64:
		n = float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
