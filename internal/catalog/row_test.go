package catalog

import (
	"testing"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

func TestTemplateFromRow(t *testing.T) {
	t.Parallel()

	t.Run("full row maps every field", func(t *testing.T) {
		row := Row{
			ColTaskKey:             "hvac_filter",
			ColTitle:               "  Replace HVAC filter  ",
			ColDescription:         "Swap the return air filter",
			ColFrequencyDays:       "90",
			ColCategory:            "hvac",
			ColPriority:            "Medium",
			ColFeatureRequirements: "has_hvac=true",
			ColStartOffsetDays:     "14",
			ColSeasonal:            "no",
			ColSeasonalAnchorType:  "Fixed_Date",
			ColSeasonCode:          "Autumn",
			ColSeasonAnchorMonth:   "10",
			ColSeasonAnchorDay:     "15",
			ColOverlapGroup:        "filters",
			ColVariantRank:         "2",
			ColEstimatedMinutes:    "15",
			ColNotes:               "use MERV 11",
		}

		got := TemplateFromRow(row)

		if got.Key != "hvac_filter" {
			t.Errorf("Key = %q", got.Key)
		}
		if got.Title != "Replace HVAC filter" {
			t.Errorf("Title = %q, want trimmed", got.Title)
		}
		if got.FrequencyDays != 90 {
			t.Errorf("FrequencyDays = %d", got.FrequencyDays)
		}
		if got.Priority != domain.PriorityMedium {
			t.Errorf("Priority = %q", got.Priority)
		}
		if got.Seasonal == nil || *got.Seasonal {
			t.Errorf("Seasonal = %v, want explicit false", got.Seasonal)
		}
		if got.SeasonalAnchorType != domain.AnchorFixedDate {
			t.Errorf("SeasonalAnchorType = %q, want lowercased fixed_date", got.SeasonalAnchorType)
		}
		if got.SeasonCode != domain.SeasonAutumn {
			t.Errorf("SeasonCode = %q", got.SeasonCode)
		}
		if got.AnchorMonth != 10 || got.AnchorDay != 15 {
			t.Errorf("anchor = %d/%d", got.AnchorMonth, got.AnchorDay)
		}
		if got.VariantRank != 2 {
			t.Errorf("VariantRank = %d", got.VariantRank)
		}
		if got.StartOffsetDays == nil || *got.StartOffsetDays != 14 {
			t.Errorf("StartOffsetDays = %v, want 14", got.StartOffsetDays)
		}
		if got.EstimatedMinutes != 15 {
			t.Errorf("EstimatedMinutes = %d", got.EstimatedMinutes)
		}
	})

	t.Run("blank optional fields stay unset", func(t *testing.T) {
		got := TemplateFromRow(Row{ColTitle: "Clean gutters"})

		if got.Seasonal != nil {
			t.Errorf("Seasonal = %v, want nil", got.Seasonal)
		}
		if got.SafetyCritical != nil {
			t.Errorf("SafetyCritical = %v, want nil", got.SafetyCritical)
		}
		if got.StartOffsetDays != nil {
			t.Errorf("StartOffsetDays = %v, want nil", got.StartOffsetDays)
		}
		if got.FrequencyDays != 0 {
			t.Errorf("FrequencyDays = %d, want 0 for later resolution", got.FrequencyDays)
		}
	})

	t.Run("malformed optionals are tolerated", func(t *testing.T) {
		got := TemplateFromRow(Row{
			ColTitle:         "Clean gutters",
			ColFrequencyDays: "quarterly",
			ColSeasonal:      "kinda",
			ColVariantRank:   "first",
			ColPriority:      "urgent",
		})

		if got.FrequencyDays != 0 || got.Seasonal != nil || got.VariantRank != 0 {
			t.Errorf("malformed optionals leaked into template: %+v", got)
		}
		if got.Priority != "" {
			t.Errorf("Priority = %q, want empty for unknown vocabulary", got.Priority)
		}
	})

	t.Run("zero frequency treated as blank", func(t *testing.T) {
		got := TemplateFromRow(Row{ColTitle: "Clean gutters", ColFrequencyDays: "0"})
		if got.FrequencyDays != 0 {
			t.Errorf("FrequencyDays = %d, want 0", got.FrequencyDays)
		}
	})
}

func TestTemplatesFromRows(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ColTitle: "Replace HVAC filter", ColFrequencyDays: "90"},
		{ColTitle: ""}, // dropped: no title
		{ColTitle: "Clean gutters"},
	}

	templates, rowErrs := TemplatesFromRows(rows)

	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(templates))
	}
	if len(rowErrs) != 1 {
		t.Fatalf("got %d row errors, want 1", len(rowErrs))
	}
	if rowErrs[0].Line != 2 {
		t.Errorf("row error line = %d, want 2", rowErrs[0].Line)
	}
}
