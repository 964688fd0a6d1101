// Package redact strips sensitive information from strings before they are
// logged or returned in error responses: connection strings, credentials,
// tokens, file paths, email addresses, record identifiers, and the value
// portions of SQL statements that surface in database errors.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedUUIDPlaceholder       = "[REDACTED_UUID]"
)

// sqlRules rewrite SQL statements so their shape stays readable while every
// value is removed. They run before the generic rules so that emails, UUIDs,
// and credentials embedded in a statement are covered by a single placeholder.
var sqlRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{
		// INSERT keeps its table and column list; the VALUES tuple goes.
		regexp.MustCompile(`(?i)\b(INSERT\s+INTO\s+\w+\s*\([^)]*\)\s*VALUES)\s*.*`),
		"$1 [SQL_VALUES_REDACTED]",
	},
	{
		// UPDATE keeps its table; assignments and conditions go.
		regexp.MustCompile(`(?i)\b(UPDATE\s+\w+\s+SET)\s+.*`),
		"$1 [SQL_VALUES_REDACTED]",
	},
	{
		// DELETE keeps its table; the WHERE clause goes.
		regexp.MustCompile(`(?i)\b(DELETE\s+FROM\s+\w+)\s+WHERE\s+.*`),
		"$1 [SQL_WHERE_REDACTED]",
	},
	{
		// SELECT reveals the most (projections, joins, filters), so the
		// whole statement collapses.
		regexp.MustCompile(`(?i)\bSELECT\b.*`),
		"SELECT FROM... [SQL_VALUES_REDACTED]",
	},
}

// rules are applied in order; earlier rules get first claim on overlapping
// text (credentials before host names, emails before host names).
var rules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	// Database connection strings up to the credential separator
	{regexp.MustCompile(`(?i)(postgres|mysql|mongodb|db|database|connection)://[^@]+@`), RedactedCredentialPlaceholder},

	// Credentials and tokens
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},

	// Record identifiers
	{regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`), RedactedUUIDPlaceholder},

	// File paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), "[REDACTED_EMAIL]"},

	// Error detail that reveals code or schema structure
	{regexp.MustCompile(`(?:at )?line ?\d+`), "[REDACTED_LINE_NUMBER]"},
	{regexp.MustCompile(`(?i)syntax error|syntax problem|parse error`), "[REDACTED_SYNTAX_ERROR]"},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), "[REDACTED_HOST]"},
	{regexp.MustCompile(`(?i)(?:no such file|file not found|can't open|cannot open|file error)`), "[REDACTED_FILE_ERROR]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range sqlRules {
		result = rule.re.ReplaceAllString(result, rule.replacement)
	}
	for _, rule := range rules {
		result = rule.re.ReplaceAllString(result, rule.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
