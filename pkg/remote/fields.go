package remote

import (
	"time"

	"github.com/buger/jsonparser"
	"github.com/spf13/cast"
)

// Payloads from the sync service differ per endpoint: the entity may sit at
// the root, under "data", or under "data.<name>", and field names vary.
// The helpers below let each entity adapter describe its aliases once.

// Unwrap returns the first object found at paths for which isEntity is true.
// An empty path means the root.
func Unwrap(raw []byte, isEntity func(obj []byte) bool, paths ...[]string) ([]byte, bool) {
	for _, p := range paths {
		v, t, _, err := jsonparser.Get(raw, p...)
		if err != nil || t != jsonparser.Object {
			continue
		}
		if isEntity(v) {
			return v, true
		}
	}
	return nil, false
}

// UnwrapArray returns the first array found at paths.
func UnwrapArray(raw []byte, paths ...[]string) ([]byte, bool) {
	for _, p := range paths {
		v, t, _, err := jsonparser.Get(raw, p...)
		if err == nil && t == jsonparser.Array {
			return v, true
		}
	}
	return nil, false
}

// EachObject calls fn for every object element of arr.
func EachObject(arr []byte, fn func(obj []byte)) {
	jsonparser.ArrayEach(arr, func(v []byte, t jsonparser.ValueType, _ int, err error) {
		if err == nil && t == jsonparser.Object {
			fn(v)
		}
	})
}

// Lookup returns the first key of obj that is present and not null.
func Lookup(obj []byte, keys ...string) (any, bool) {
	for _, k := range keys {
		v, t, _, err := jsonparser.Get(obj, k)
		if err != nil {
			continue
		}
		switch t {
		case jsonparser.String:
			s, err := jsonparser.ParseString(v)
			if err != nil {
				continue
			}
			return s, true
		case jsonparser.Number:
			return string(v), true
		case jsonparser.Boolean:
			b, err := jsonparser.ParseBoolean(v)
			if err != nil {
				continue
			}
			return b, true
		case jsonparser.Object, jsonparser.Array:
			return v, true
		}
	}
	return nil, false
}

// String reads a string-like field. Numeric ids come back as their literal.
func String(obj []byte, keys ...string) string {
	v, ok := Lookup(obj, keys...)
	if !ok {
		return ""
	}
	if _, raw := v.([]byte); raw {
		return ""
	}
	return cast.ToString(v)
}

// Bool reads a boolean that may be encoded as true, "true" or 1.
func Bool(obj []byte, keys ...string) (bool, bool) {
	v, ok := Lookup(obj, keys...)
	if !ok {
		return false, false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Number reads a number that may be encoded as a JSON number or a string.
func Number(obj []byte, keys ...string) (float64, bool) {
	v, ok := Lookup(obj, keys...)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Time reads a date or timestamp string, interpreting zone-less values in loc.
func Time(obj []byte, loc *time.Location, keys ...string) (time.Time, bool) {
	s := String(obj, keys...)
	if s == "" {
		return time.Time{}, false
	}
	t, err := cast.ToTimeInDefaultLocationE(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Raw returns the raw object or array stored under the first present key.
func Raw(obj []byte, keys ...string) ([]byte, bool) {
	v, ok := Lookup(obj, keys...)
	if !ok {
		return nil, false
	}
	b, isRaw := v.([]byte)
	return b, isRaw
}
