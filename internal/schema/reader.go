package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/validation"
)

const (
	reasonRequired  = "field required"
	reasonNull      = "must not be null"
	reasonString    = "must be a string"
	reasonInteger   = "must be an integer"
	reasonNumber    = "must be a number"
	reasonList      = "must be a list"
	reasonObject    = "must be an object"
	reasonTimestamp = "must be an ISO 8601 timestamp"
	reasonDate      = "must be a date in YYYY-MM-DD format"
)

// Raw is an untyped payload, typically a decoded JSON object
type Raw map[string]any

// reader pulls typed fields out of a Raw, recording a violation for every
// missing or mistyped field instead of stopping at the first one.
type reader struct {
	raw    Raw
	prefix string
	result *validation.Result
}

func newReader(raw Raw, result *validation.Result) *reader {
	return &reader{raw: raw, result: result}
}

func (r *reader) path(field string) string {
	if r.prefix == "" {
		return field
	}
	return r.prefix + "." + field
}

func (r *reader) fail(field, reason string) {
	r.result.Add(r.path(field), reason)
}

// required returns the value of a field that must be present and non-null
func (r *reader) required(field string) (any, bool) {
	v, ok := r.raw[field]
	if !ok {
		r.fail(field, reasonRequired)
		return nil, false
	}
	if v == nil {
		r.fail(field, reasonNull)
		return nil, false
	}
	return v, true
}

func (r *reader) str(field string) string {
	v, ok := r.required(field)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, reasonString)
	}
	return s
}

// optStr returns nil when the field is absent or null
func (r *reader) optStr(field string) *string {
	v := r.raw[field]
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, reasonString)
		return nil
	}
	return &s
}

// strOr substitutes def only when the field is absent. Null reads as "".
func (r *reader) strOr(field, def string) string {
	v, ok := r.raw[field]
	if !ok {
		return def
	}
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, reasonString)
	}
	return s
}

func (r *reader) integer(field string) int {
	v, ok := r.required(field)
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		r.fail(field, reasonInteger)
	}
	return n
}

func (r *reader) number(field string) float64 {
	v, ok := r.required(field)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		r.fail(field, reasonNumber)
	}
	return f
}

func (r *reader) timestamp(field string) time.Time {
	v, ok := r.required(field)
	if !ok {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, ok := parseTimestamp(t); ok {
			return parsed
		}
	}
	r.fail(field, reasonTimestamp)
	return time.Time{}
}

// timestampLayouts are tried in order. Layouts without an offset read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r *reader) date(field string) string {
	v, ok := r.required(field)
	if !ok {
		return ""
	}
	d, ok := toDate(v)
	if !ok {
		r.fail(field, reasonDate)
	}
	return d
}

func (r *reader) optDate(field string) *string {
	v := r.raw[field]
	if v == nil {
		return nil
	}
	d, ok := toDate(v)
	if !ok {
		r.fail(field, reasonDate)
		return nil
	}
	return &d
}

// weekdays reads an integer list. Absent or null yields a fresh empty slice.
// Non-integer entries are reported by index and kept as 0 so that later
// range checks line up with the original positions.
func (r *reader) weekdays(field string) []int {
	v := r.raw[field]
	if v == nil {
		return []int{}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		r.fail(field, reasonList)
		return []int{}
	}

	days := make([]int, rv.Len())
	for i := range days {
		n, ok := toInt(rv.Index(i).Interface())
		if !ok {
			r.result.Add(r.path(field)+indexSuffix(i), reasonInteger)
			continue
		}
		days[i] = n
	}
	return days
}

// object returns a reader over a nested object, or nil if it is missing or
// not an object.
func (r *reader) object(field string) *reader {
	v, ok := r.required(field)
	if !ok {
		return nil
	}
	var nested Raw
	switch m := v.(type) {
	case Raw:
		nested = m
	case map[string]any:
		nested = m
	default:
		r.fail(field, reasonObject)
		return nil
	}
	return &reader{raw: nested, prefix: r.path(field), result: r.result}
}

func indexSuffix(i int) string {
	return fmt.Sprintf("[%d]", i)
}

// toInt accepts whole numbers within the 32-bit range, whatever their Go type.
func toInt(v any) (int, bool) {
	var i int64
	switch n := v.(type) {
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		i = int64(n)
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}
		i = parsed
	default:
		return 0, false
	}
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, false
	}
	return int(i), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toDate(v any) (string, bool) {
	switch d := v.(type) {
	case time.Time:
		return d.Format(constants.DateFormat), true
	case string:
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return "", false
		}
		return d, true
	}
	return "", false
}
