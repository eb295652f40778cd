// Package normalize converts heterogeneous backend JSON records into the
// canonical domain entities. The backend has gone through several field
// naming conventions (snake_case, camelCase, nested sub-objects); this
// package tolerates all of them and never fails — missing or malformed
// values degrade to plausible defaults instead of errors.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Raw is an arbitrarily-shaped backend record as decoded from JSON.
type Raw map[string]any

// first returns the first non-nil value among the named keys.
func (r Raw) first(keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// str returns the first non-empty string value among the named keys.
func (r Raw) str(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// sub returns a nested record, or nil when the key holds anything else.
func (r Raw) sub(key string) Raw {
	if m, ok := r[key].(map[string]any); ok {
		return Raw(m)
	}
	return nil
}

// ID coerces a raw identifier value to a non-empty string: non-empty
// strings pass through, numbers are stringified, anything else yields
// the fallback.
func ID(v any, fallback string) string {
	id, ok := stringID(v)
	if !ok {
		return fallback
	}
	return id
}

func stringID(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t, true
		}
	case float64:
		// JSON numbers decode as float64; keep integral ids integral.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

// FallbackID synthesizes a temporary identifier, unique within a run, for
// records the backend returned without one.
func FallbackID() string {
	return fmt.Sprintf("temp-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// instantLayouts are the formats the backend has been observed emitting,
// plus the datetime-local shape the console form produces.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Instant parses a raw time value. Strings are tried against the known
// layouts; numbers are treated as unix seconds (or milliseconds when the
// magnitude says so). The zero time and false are returned when nothing
// parses.
func Instant(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range instantLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
	case float64:
		if t <= 0 {
			return time.Time{}, false
		}
		if t > 1e12 { // milliseconds
			return time.UnixMilli(int64(t)).UTC(), true
		}
		return time.Unix(int64(t), 0).UTC(), true
	}
	return time.Time{}, false
}

// number coerces a raw value to a float64, accepting numeric strings.
func number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// minutes coerces a raw duration value to whole positive minutes.
func minutes(v any) (int, bool) {
	f, ok := number(v)
	if !ok || f <= 0 {
		return 0, false
	}
	return int(f), true
}
