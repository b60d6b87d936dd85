package validator

import (
	"fmt"
	"unicode/utf8"
)

type existsRule struct{}

// Exists accepts any value. It is used to assert that a field is
// present in the submitted data without constraining its content; the
// presence check itself happens in the structural layer.
func Exists() Validator { return existsRule{} }

func (existsRule) Validate(key string, value any) (any, error) { return nil, nil }

func (existsRule) Populate(name string) map[string]any { return map[string]any{} }

type lengthRule struct {
	min, max int
}

// Length bounds the size of a value: rune count for strings, element
// count for lists and maps. Bounds are inclusive; pass a negative
// bound to leave that side open. The minimum is checked first.
func Length(min, max int) Validator {
	return lengthRule{min: min, max: max}
}

func (r lengthRule) Validate(key string, value any) (any, error) {
	var length int
	switch v := value.(type) {
	case string:
		length = utf8.RuneCountInString(v)
	case []any:
		length = len(v)
	case map[string]any:
		length = len(v)
	default:
		return reject(r, key, value, "value has no length")
	}

	if r.min >= 0 && length < r.min {
		return reject(r, key, value, fmt.Sprintf("value too short (%d < %d)", length, r.min))
	}
	if r.max >= 0 && length > r.max {
		return reject(r, key, value, fmt.Sprintf("value too long (%d > %d)", length, r.max))
	}
	return nil, nil
}

func (r lengthRule) Populate(name string) map[string]any {
	out := map[string]any{"min": any(nil), "max": any(nil)}
	if r.min >= 0 {
		out["min"] = r.min
	}
	if r.max >= 0 {
		out["max"] = r.max
	}
	return out
}
