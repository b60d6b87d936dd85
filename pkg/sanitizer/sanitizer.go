// Package sanitizer provides small, composable value transforms meant
// to run ahead of validation, typically adapted into a validator chain
// through validator.LambdaMap.
package sanitizer

import (
	"strings"
	"unicode"
)

// Apply runs value through the transforms in order and returns the
// final result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the transforms. Preferred
// over repeated Apply calls when the same chain serves many fields.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts the string to lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts the string to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces every run of whitespace with a single
// space and trims the ends.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
