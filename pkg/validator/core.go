package validator

// Validator is the contract implemented by every validation rule. A
// Validator is immutable configuration built once at route-registration
// time and shared across requests, so Validate and Populate must not
// mutate the receiver.
type Validator interface {
	// Validate checks value under the given key path. It returns a
	// non-nil replacement value when the rule transforms its input
	// (e.g. string to bool), nil when the value passes unchanged, or an
	// error when the value is rejected. A single call never returns
	// both a replacement and an error.
	Validate(key string, value any) (any, error)

	// Populate returns descriptive metadata about the rule (allowed
	// options, pattern text, bounds, layout) keyed for UI rendering.
	// It never affects validation outcome.
	Populate(name string) map[string]any
}

// Set is an ordered sequence of validators applied left to right.
// Constructors across the package take variadic validators so a single
// rule and a chain of rules share one call shape.
type Set []Validator

// With builds a Set from one or more validators.
func With(validators ...Validator) Set {
	return Set(validators)
}

// Apply runs every validator in the set against value, in order. Each
// replacement value returned by a validator becomes the input of the
// next one. The first error aborts the chain and is returned unchanged.
// The boolean result reports whether any validator replaced the value,
// so callers know to write the result back into their own structures.
func Apply(set Set, key string, value any) (any, bool, error) {
	current := value
	changed := false

	for _, v := range set {
		out, err := v.Validate(key, current)
		if err != nil {
			return nil, false, err
		}
		if out != nil {
			current = out
			changed = true
		}
	}

	return current, changed, nil
}
