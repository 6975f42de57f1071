package resource

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Record is one element of an upstream collection, kept verbatim.
// Values are whatever encoding/json produced with UseNumber enabled.
type Record map[string]any

// Placeholders shared by the renderers.
const (
	NotAvailable = "N/A"
	Zero         = "0"
	InvalidDate  = "Invalid Date"
)

// DateLayout matches the en-US short date the dashboard has always shown.
const DateLayout = "1/2/2006"

// maxDateMs bounds epoch-millisecond dates to what a browser Date can hold.
const maxDateMs = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Text returns the first truthy, displayable value among keys, or fallback.
// PRE: none
// POST: never returns the empty string unless fallback is empty
func (r Record) Text(fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := Display(r[k]); ok {
			return s
		}
	}
	return fallback
}

// Count is Text with the numeric placeholder "0".
func (r Record) Count(keys ...string) string {
	return r.Text(Zero, keys...)
}

// Date formats the value under key as a short date.
// Strings are ISO 8601 dates or timestamps, with the offset written as Z, +hh:mm
// or +hhmm, or no offset at all. Numbers are epoch milliseconds within ±8.64e15.
// Falsy values render N/A; anything else renders "Invalid Date".
func (r Record) Date(key string) string {
	v := r[key]
	if !Truthy(v) {
		return NotAvailable
	}
	switch val := v.(type) {
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t.Format(DateLayout)
			}
		}
	case json.Number:
		if ms, err := val.Float64(); err == nil && math.Abs(ms) <= maxDateMs {
			return time.UnixMilli(int64(ms)).UTC().Format(DateLayout)
		}
	}
	return InvalidDate
}

// Key returns a stable identifier for the record, preferring id then _id.
func (r Record) Key() string {
	return r.Text("", "id", "_id")
}

// Truthy mirrors JavaScript truthiness for decoded JSON values.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	default:
		return true
	}
}

// Display returns the text form of a truthy scalar.
// Objects and arrays are truthy but have no text form, so ok is false for them.
func Display(v any) (string, bool) {
	if !Truthy(v) {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return "true", true
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return formatNumber(f), true
		}
		return val.String(), true
	case float64:
		return formatNumber(val), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
