package validator

import (
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/text/cases"
)

type boolRule struct{}

// Bool matches textual boolean representations, ignoring case:
// yes/true/on become true, no/false/off become false. The matched value
// is replaced with the parsed bool. To keep the raw string, use Select
// with the same options instead.
func Bool() Validator { return boolRule{} }

func (r boolRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	switch cases.Fold().String(s) {
	case "yes", "true", "on":
		return true, nil
	case "no", "false", "off":
		return false, nil
	}
	return reject(r, key, value, "value does not appear to be a bool")
}

func (boolRule) Populate(name string) map[string]any { return map[string]any{} }

type emailRule struct {
	domain string
}

// Email checks that a value has the shape of an email address: exactly
// one "@" with non-empty local and domain parts. A non-empty domain
// restricts the address to that exact domain. This is a shape check
// only; deliverability is out of scope.
func Email(domain string) Validator {
	return emailRule{domain: domain}
}

func (r emailRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return reject(r, key, value, "invalid email")
	}
	local, domain := s[:at], s[at+1:]
	if strings.Contains(local, "@") || local == "" || domain == "" {
		return reject(r, key, value, "invalid email")
	}
	if r.domain != "" && domain != r.domain {
		return reject(r, key, value, fmt.Sprintf("invalid domain (%q)", r.domain))
	}
	return nil, nil
}

func (r emailRule) Populate(name string) map[string]any {
	return map[string]any{"domain": r.domain}
}

// Address families accepted by IPAddress.
const (
	IPv4 = "ipv4"
	IPv6 = "ipv6"
)

type ipRule struct {
	families []string
}

// IPAddress checks that a value parses as an IP address in one of the
// requested families (IPv4 and IPv6 constants; default IPv4 only).
// Families are tried in IPv4-then-IPv6 order and the value passes as
// soon as any requested family matches. When every requested family
// fails, the error from the last family tried is reported.
func IPAddress(families ...string) Validator {
	if len(families) == 0 {
		families = []string{IPv4}
	}
	return ipRule{families: families}
}

func (r ipRule) has(family string) bool {
	for _, f := range r.families {
		if f == family {
			return true
		}
	}
	return false
}

func (r ipRule) Validate(key string, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return reject(r, key, value, "value is not a string")
	}

	dirty := true
	var cause error
	if r.has(IPv4) {
		if err := parseFamily(s, IPv4); err != nil {
			cause = err
		} else {
			dirty = false
		}
	}
	if r.has(IPv6) {
		if err := parseFamily(s, IPv6); err != nil {
			// Only a relevant failure while no earlier family matched.
			if dirty {
				cause = err
			}
		} else {
			dirty = false
		}
	}
	if dirty {
		return rejectCause(r, key, value, cause)
	}
	return nil, nil
}

func (r ipRule) Populate(name string) map[string]any {
	return map[string]any{"type": r.families}
}

func parseFamily(s, family string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return err
	}
	switch family {
	case IPv4:
		if !addr.Is4() {
			return fmt.Errorf("%q is not an IPv4 address", s)
		}
	case IPv6:
		if !addr.Is6() || addr.Is4() {
			return fmt.Errorf("%q is not an IPv6 address", s)
		}
	default:
		return fmt.Errorf("unknown address family %q", family)
	}
	return nil
}
