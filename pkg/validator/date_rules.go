package validator

import (
	"errors"
	"fmt"
	"time"
)

// errNoLayout is returned when a date or time rule is constructed with
// neither a layout nor ISO mode.
var errNoLayout = errors.New("validator: either a layout or ISO mode is required")

type dateRule struct {
	layout string
	iso    bool
}

// NewDate builds a validator that checks a value parses as a calendar
// date. Exactly one mode must be chosen: a Go time layout (which wins
// when both are supplied), or ISO mode which accepts ISO-8601 dates
// (2006-01-02). The parsed time.Time is returned as the replacement
// value; callers that only want the parseability check can ignore it.
func NewDate(layout string, iso bool) (Validator, error) {
	if layout == "" && !iso {
		return nil, errNoLayout
	}
	if layout != "" {
		iso = false
	}
	return dateRule{layout: layout, iso: iso}, nil
}

// MustDate is NewDate that panics on a construction error.
func MustDate(layout string, iso bool) Validator {
	v, err := NewDate(layout, iso)
	if err != nil {
		panic(err)
	}
	return v
}

func (r dateRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	if r.iso {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return reject(r, key, value, "invalid value for ISO date format")
		}
		return t, nil
	}

	t, err := time.Parse(r.layout, s)
	if err != nil {
		return reject(r, key, value, fmt.Sprintf("invalid value for layout %q", r.layout))
	}
	return t, nil
}

func (r dateRule) Populate(name string) map[string]any {
	return map[string]any{"format": r.layout, "iso": r.iso}
}

type timeRule struct {
	layout string
	iso    bool
}

// NewTime builds a validator that checks a value parses as a time of
// day. It shares the layout/ISO contract of NewDate; ISO mode accepts
// 15:04:05 (with optional fractional seconds) and the short 15:04 form.
func NewTime(layout string, iso bool) (Validator, error) {
	if layout == "" && !iso {
		return nil, errNoLayout
	}
	if layout != "" {
		iso = false
	}
	return timeRule{layout: layout, iso: iso}, nil
}

// MustTime is NewTime that panics on a construction error.
func MustTime(layout string, iso bool) Validator {
	v, err := NewTime(layout, iso)
	if err != nil {
		panic(err)
	}
	return v
}

func (r timeRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	if r.iso {
		for _, layout := range []string{time.TimeOnly, "15:04"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return reject(r, key, value, "invalid value for ISO time format")
	}

	t, err := time.Parse(r.layout, s)
	if err != nil {
		return reject(r, key, value, fmt.Sprintf("invalid value for layout %q", r.layout))
	}
	return t, nil
}

func (r timeRule) Populate(name string) map[string]any {
	return map[string]any{"format": r.layout, "iso": r.iso}
}
