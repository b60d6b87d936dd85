package validator

import "sort"

type selectRule struct {
	options map[string]struct{}
}

// Select checks that a value is one of a fixed set of options,
// mirroring an HTML select element. Populate reports the options in
// sorted order so rendered choices are deterministic.
func Select(options ...string) Validator {
	set := make(map[string]struct{}, len(options))
	for _, opt := range options {
		set[opt] = struct{}{}
	}
	return selectRule{options: set}
}

func (r selectRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}
	if _, ok := r.options[s]; !ok {
		return reject(r, key, value, "not a valid option")
	}
	return nil, nil
}

func (r selectRule) Populate(name string) map[string]any {
	options := make([]string, 0, len(r.options))
	for opt := range r.options {
		options = append(options, opt)
	}
	sort.Strings(options)
	return map[string]any{"options": options}
}
