package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Requirement parsing errors. Each parse failure wraps one of these so
// callers can classify without string matching.
var (
	// ErrMalformedRequirement is returned for a requirement segment that is
	// not of the form key=value.
	ErrMalformedRequirement = errors.New("malformed requirement")

	// ErrInvalidRequirementValue is returned when a requirement value is not
	// in the recognized boolean vocabulary.
	ErrInvalidRequirementValue = errors.New("invalid requirement value")
)

// Requirements is a parsed requirement expression: a conjunction of
// canonical feature key -> wanted boolean predicates. An empty map matches
// every household.
type Requirements map[string]bool

// ParseRequirements parses a compact requirement expression of
// semicolon-separated key=value pairs (e.g. "has_hvac=true;has_pets=false")
// into a predicate map.
//
// Segments are trimmed and empty segments dropped. A segment without '=' is
// recorded as a parse error naming the offending text, and parsing
// continues. Keys are passed through FeatureKeyAliases; keys not on the
// allow-list are silently dropped so catalogs may reference future keys.
// Values use the ParseBool vocabulary; unrecognized values are parse errors
// naming the bad value.
//
// Callers must treat a template whose expression produced any error as
// non-matching, even if other pairs parsed cleanly: an ambiguous catalog row
// must never silently activate.
func ParseRequirements(s string) (Requirements, []error) {
	req := Requirements{}
	var errs []error
	if strings.TrimSpace(s) == "" {
		return req, nil
	}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			errs = append(errs, fmt.Errorf("%w: %q (expected key=value)", ErrMalformedRequirement, part))
			continue
		}
		key = strings.TrimSpace(key)
		if canonical, ok := FeatureKeyAliases[key]; ok {
			key = canonical
		}
		if !AllowedFeatureKeys[key] {
			// Unknown keys are ignored, not errors: catalogs may reference
			// keys this deployment does not know yet.
			continue
		}
		value = strings.TrimSpace(value)
		b, ok := ParseBool(value)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q for key %q", ErrInvalidRequirementValue, value, key))
			continue
		}
		req[key] = b
	}
	return req, errs
}

// MatchedBy reports whether every predicate in the requirement map holds for
// the given household. Features absent from the household are false. The
// has_carpet key is evaluated against the three-valued carpet answer rather
// than the boolean flag map.
func (r Requirements) MatchedBy(fs FeatureSet) bool {
	for key, wanted := range r {
		if key == "has_carpet" {
			if fs.Carpet.HasCarpet() != wanted {
				return false
			}
			continue
		}
		if fs.Has(key) != wanted {
			return false
		}
	}
	return true
}
