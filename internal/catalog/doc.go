// Package catalog loads and normalizes task-template catalogs. Catalogs
// arrive as flat tabular rows (a stored template table or CSV import) with
// every field as text; this package maps those rows into domain templates,
// tolerating blank or malformed optional fields, and provides the built-in
// fallback catalog used when no stored catalog exists.
package catalog
