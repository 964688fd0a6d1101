package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("reads templates from a CSV file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		content := "title,frequency_days,feature_requirements\n" +
			"Replace HVAC filter,90,has_hvac=true\n" +
			",30,\n" + // invalid: no title, dropped
			"Clean gutters,180,has_gutters=true\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		source := NewFileSource(path)
		templates, err := source.ListTemplates(context.Background())
		if err != nil {
			t.Fatalf("ListTemplates() error = %v", err)
		}
		if len(templates) != 2 {
			t.Fatalf("got %d templates, want 2", len(templates))
		}
		if templates[0].Title != "Replace HVAC filter" {
			t.Errorf("first template = %q", templates[0].Title)
		}
	})

	t.Run("missing file yields an empty catalog", func(t *testing.T) {
		source := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"))
		templates, err := source.ListTemplates(context.Background())
		if err != nil {
			t.Fatalf("ListTemplates() error = %v", err)
		}
		if len(templates) != 0 {
			t.Errorf("got %d templates from a missing file", len(templates))
		}
	})

	t.Run("empty path yields an empty catalog", func(t *testing.T) {
		source := NewFileSource("")
		templates, err := source.ListTemplates(context.Background())
		if err != nil {
			t.Fatalf("ListTemplates() error = %v", err)
		}
		if len(templates) != 0 {
			t.Errorf("got %d templates from an empty path", len(templates))
		}
	})

	t.Run("name", func(t *testing.T) {
		if got := NewFileSource("x").Name(); got != SourceNameCSV {
			t.Errorf("Name() = %q, want %q", got, SourceNameCSV)
		}
	})
}

func TestBuiltinSource(t *testing.T) {
	t.Parallel()

	source := NewBuiltinSource()
	if got := source.Name(); got != SourceNameBuiltin {
		t.Errorf("Name() = %q, want %q", got, SourceNameBuiltin)
	}

	templates, err := source.ListTemplates(context.Background())
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}
	if len(templates) != len(BuiltinTemplates()) {
		t.Errorf("got %d templates, want %d", len(templates), len(BuiltinTemplates()))
	}
}
