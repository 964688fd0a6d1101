package catalog

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	t.Run("basic catalog", func(t *testing.T) {
		input := "title,frequency_days,priority\n" +
			"Replace HVAC filter,90,medium\n" +
			"Clean gutters,180,\n"

		headers, rows, err := ReadCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if len(headers) != 3 {
			t.Fatalf("got %d headers, want 3", len(headers))
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0][ColTitle] != "Replace HVAC filter" {
			t.Errorf("row 0 title = %q", rows[0][ColTitle])
		}
		if rows[1][ColFrequencyDays] != "180" {
			t.Errorf("row 1 frequency = %q", rows[1][ColFrequencyDays])
		}
	})

	t.Run("BOM is stripped from the first header", func(t *testing.T) {
		input := "\xEF\xBB\xBFtitle,priority\nClean gutters,low\n"

		headers, rows, err := ReadCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if headers[0] != "title" {
			t.Errorf("first header = %q, want %q", headers[0], "title")
		}
		if rows[0][ColTitle] != "Clean gutters" {
			t.Errorf("row 0 title = %q", rows[0][ColTitle])
		}
	})

	t.Run("short records read missing fields as blank", func(t *testing.T) {
		input := "title,frequency_days,priority\nClean gutters\n"

		_, rows, err := ReadCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if rows[0][ColTitle] != "Clean gutters" {
			t.Errorf("row 0 title = %q", rows[0][ColTitle])
		}
		if rows[0][ColFrequencyDays] != "" {
			t.Errorf("missing field = %q, want blank", rows[0][ColFrequencyDays])
		}
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		headers, rows, err := ReadCSV(strings.NewReader(""))
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if headers != nil || rows != nil {
			t.Errorf("ReadCSV(empty) = %v, %v, want nil, nil", headers, rows)
		}
	})

	t.Run("quoted fields with commas", func(t *testing.T) {
		input := "title,notes\n\"Inspect roof, flashing and vents\",check after storms\n"

		_, rows, err := ReadCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadCSV() error = %v", err)
		}
		if rows[0][ColTitle] != "Inspect roof, flashing and vents" {
			t.Errorf("row 0 title = %q", rows[0][ColTitle])
		}
	})
}
