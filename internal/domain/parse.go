package domain

import (
	"strconv"
	"strings"
)

// ParseBool interprets catalog-style boolean text using a small
// case-insensitive vocabulary. It returns the parsed value and whether the
// text was recognized. Catalogs arrive as tabular imports, so values like
// "Yes" or "1" must be accepted alongside "true".
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, true
	case "false", "0", "no", "n":
		return false, true
	default:
		return false, false
	}
}

// ParseInt interprets catalog-style integer text. Blank or malformed text
// returns ok=false rather than an error, mirroring how tolerant tabular
// imports treat optional numeric columns.
func ParseInt(s string) (value int, ok bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
