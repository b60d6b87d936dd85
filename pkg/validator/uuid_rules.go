package validator

import "github.com/google/uuid"

type uuidRule struct{}

// UUID checks that a value parses as an RFC 4122 UUID. No transform is
// applied; the raw string is kept so callers decide on representation.
func UUID() Validator { return uuidRule{} }

func (r uuidRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	// Cheap shape check before parsing, canonical form only.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return reject(r, key, value, "must be a valid UUID")
	}
	if _, err := uuid.Parse(s); err != nil {
		return rejectCause(r, key, value, err)
	}
	return nil, nil
}

func (uuidRule) Populate(name string) map[string]any { return map[string]any{} }
