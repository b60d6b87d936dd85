package validator

import "regexp"

type regexRule struct {
	source  string
	pattern *regexp.Regexp
}

// Regex matches the value against an uncompiled pattern anchored at the
// start of the string. To require a full match, anchor the pattern with
// ^ and $. Regex panics on an invalid pattern, consistent with
// compiling patterns at route-registration time.
//
// Stick to the common subset of regex syntax when the pattern is also
// rendered into HTML input constraints.
func Regex(pattern string) Validator {
	return regexRule{
		source: pattern,
		// \A pins the match to the start without affecting ^/$ inside.
		pattern: regexp.MustCompile(`\A(?:` + pattern + `)`),
	}
}

func (r regexRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}
	if !r.pattern.MatchString(s) {
		return reject(r, key, value, "does not match pattern "+r.source)
	}
	return nil, nil
}

func (r regexRule) Populate(name string) map[string]any {
	return map[string]any{"pattern": r.source}
}
