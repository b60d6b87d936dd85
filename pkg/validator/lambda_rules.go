package validator

import "fmt"

type lambdaMapRule struct {
	fn func(any) (any, error)
}

// LambdaMap wraps an arbitrary transform function into a validator. The
// function's return value replaces the field value; an error or panic
// from the function is converted into a rejection carrying the cause,
// so one misbehaving callback cannot take down the request.
func LambdaMap(fn func(any) (any, error)) Validator {
	return lambdaMapRule{fn: fn}
}

func (r lambdaMapRule) Validate(key string, value any) (out any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = rejectCause(r, key, value, fmt.Errorf("panic in transform: %v", rec))
		}
	}()

	out, ferr := r.fn(value)
	if ferr != nil {
		return rejectCause(r, key, value, ferr)
	}
	return out, nil
}

func (lambdaMapRule) Populate(name string) map[string]any { return map[string]any{} }

// Match targets for LambdaFilter.
type matchTarget int

const (
	// Truthy accepts any output that is "truthy": non-nil, non-zero,
	// non-empty, or boolean true.
	Truthy matchTarget = iota
	// Falsy accepts the complement of Truthy.
	Falsy
	// Nil accepts only a nil output.
	Nil
	// NotNil accepts any non-nil output.
	NotNil
)

func (m matchTarget) String() string {
	switch m {
	case Truthy:
		return "truthy"
	case Falsy:
		return "falsy"
	case Nil:
		return "nil"
	case NotNil:
		return "not nil"
	}
	return "unknown"
}

type lambdaFilterRule struct {
	fn      func(any) any
	matches any
}

// LambdaFilter wraps an arbitrary predicate function into a validator.
// The function's output is compared against matches: one of the Truthy,
// Falsy, Nil or NotNil targets, or any other value for an exact
// comparison. The field value is never transformed.
func LambdaFilter(fn func(any) any, matches any) Validator {
	return lambdaFilterRule{fn: fn, matches: matches}
}

func (r lambdaFilterRule) Validate(key string, value any) (any, error) {
	out := r.fn(value)

	switch r.matches {
	case Nil:
		if out == nil {
			return nil, nil
		}
	case NotNil:
		if out != nil {
			return nil, nil
		}
	case Truthy:
		if truthy(out) {
			return nil, nil
		}
	case Falsy:
		if !truthy(out) {
			return nil, nil
		}
	default:
		if out == r.matches {
			return nil, nil
		}
	}
	return reject(r, key, value, fmt.Sprintf("failed to match %v", r.matches))
}

func (lambdaFilterRule) Populate(name string) map[string]any { return map[string]any{} }

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
