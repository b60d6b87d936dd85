package validator

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

type listRule struct {
	children Set
}

// List checks that a value is a list and applies the child validators
// to every element, reporting failures at key[index]. When a child
// transforms an element the result is a rebuilt slice; the input is
// never mutated, so shared request data stays safe to alias. To accept
// a list with arbitrary content, use List(Exists()).
func List(children ...Validator) Validator {
	return listRule{children: Set(children)}
}

func (r listRule) Validate(key string, value any) (any, error) {
	items, ok := value.([]any)
	if !ok {
		return reject(r, key, value, "form field is not a list")
	}

	var out []any
	for i, item := range items {
		res, changed, err := Apply(r.children, fmt.Sprintf("%s[%d]", key, i), item)
		if err != nil {
			return nil, err
		}
		if changed {
			if out == nil {
				out = slices.Clone(items)
			}
			out[i] = res
		}
	}
	if out != nil {
		return out, nil
	}
	return nil, nil
}

func (r listRule) Populate(name string) map[string]any {
	validators := make([]map[string]any, len(r.children))
	for i, child := range r.children {
		validators[i] = child.Populate(name + "[]")
	}
	return map[string]any{"validators": validators}
}

type dictRule struct {
	fields map[string]Set
}

// Dict checks that a value is a key/value mapping and applies a
// per-field validator chain to each configured key, reporting failures
// at key.field. A configured key absent from the value is a
// FormKeyError. Keys present in the value but not configured are
// ignored; Dict constrains what it knows about and nothing else. For a
// uniform per-value rule, see Map.
func Dict(fields map[string]Set) Validator {
	return dictRule{fields: fields}
}

func (r dictRule) Validate(key string, value any) (any, error) {
	entries, ok := value.(map[string]any)
	if !ok {
		return reject(r, key, value, "form field is not a dict")
	}

	var out map[string]any
	// Sorted field order keeps the first reported error deterministic.
	for _, field := range sortedKeys(r.fields) {
		path := key + "." + field
		entry, present := entries[field]
		if !present {
			return nil, &FormKeyError{Key: path}
		}
		res, changed, err := Apply(r.fields[field], path, entry)
		if err != nil {
			return nil, err
		}
		if changed {
			if out == nil {
				out = maps.Clone(entries)
			}
			out[field] = res
		}
	}
	if out != nil {
		return out, nil
	}
	return nil, nil
}

func (r dictRule) Populate(name string) map[string]any {
	out := make(map[string]any, len(r.fields))
	for field, children := range r.fields {
		fieldMeta := make([]map[string]any, len(children))
		for i, child := range children {
			fieldMeta[i] = child.Populate(name + "." + field)
		}
		out[field] = fieldMeta
	}
	return out
}

type mapRule struct {
	children Set
}

// Map checks that a value is a key/value mapping and applies the same
// child validators to every value regardless of key, reporting failures
// at key[mapkey]. For per-key rules, see Dict.
func Map(children ...Validator) Validator {
	return mapRule{children: Set(children)}
}

func (r mapRule) Validate(key string, value any) (any, error) {
	entries, ok := value.(map[string]any)
	if !ok {
		return reject(r, key, value, "form field is not a dict")
	}

	var out map[string]any
	for _, mapKey := range sortedKeys(entries) {
		res, changed, err := Apply(r.children, fmt.Sprintf("%s[%s]", key, mapKey), entries[mapKey])
		if err != nil {
			return nil, err
		}
		if changed {
			if out == nil {
				out = maps.Clone(entries)
			}
			out[mapKey] = res
		}
	}
	if out != nil {
		return out, nil
	}
	return nil, nil
}

func (r mapRule) Populate(name string) map[string]any {
	validators := make([]map[string]any, len(r.children))
	for i, child := range r.children {
		validators[i] = child.Populate(name + "{}")
	}
	return map[string]any{"validators": validators}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
