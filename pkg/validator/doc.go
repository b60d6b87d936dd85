// Package validator provides composable, declarative validation of
// submitted form values for HTTP request handlers.
//
// A route declares a set of rules per field; each rule is a Validator,
// an immutable value constructed once at registration time and shared
// across requests. Validators check a single value, may replace it with
// a transformed representation (a parsed bool, date or time), and
// reject bad input with a structured error carrying the exact key path
// of the offending value.
//
// # Architecture
//
// Every rule implements the two-method Validator interface: Validate
// performs the check and Populate exposes descriptive metadata (option
// lists, patterns, bounds) for rendering form UI hints. Rules are
// grouped by family per source file (`string_rules.go`,
// `format_rules.go`, `collection_rules.go`, ...). There is no hidden
// state anywhere: a validation pass is a plain synchronous recursion
// over the in-memory value tree, so the package is goroutine-safe by
// construction.
//
// Structural rules (List, Dict, Map) recurse through the shared Apply
// runner and extend the key path as they descend: `key[3]` for list
// indices, `key.field` for dict fields, `key[mapkey]` for map entries.
// They never mutate the container they are given; transformed children
// surface through a rebuilt copy returned to the caller.
//
// # Usage
//
//	rules := validator.With(
//	    validator.Length(6, 30),
//	    validator.Regex("^[a-z0-9]+$"),
//	)
//	out, changed, err := validator.Apply(rules, "username", raw)
//	if err != nil {
//	    // err matches validator.ErrForm via errors.Is
//	}
//
// Custom rules plug in by implementing Validator; see LambdaMap and
// LambdaFilter for adapting plain functions without a named type.
//
// # Error Handling
//
// All rejections belong to one family rooted at ErrForm: ValidationError
// for a failed check, FormKeyError for a missing required key, and the
// ErrInvalidSession marker used by the HTTP layer. A chain is fail-fast
// per field: the first failing rule stops that field's remaining rules.
package validator
