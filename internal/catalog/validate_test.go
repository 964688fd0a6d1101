package catalog

import (
	"errors"
	"testing"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

func TestValidateRow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		row        Row
		wantErrs   int
		wantField  string
		wantTarget error
	}{
		{
			name: "clean row",
			row: Row{
				ColTitle:         "Replace HVAC filter",
				ColFrequencyDays: "90",
				ColPriority:      "medium",
			},
			wantErrs: 0,
		},
		{
			name:      "missing title",
			row:       Row{ColFrequencyDays: "90"},
			wantErrs:  1,
			wantField: "Title",
		},
		{
			name: "priority outside vocabulary",
			row: Row{
				ColTitle:    "Clean gutters",
				ColPriority: "urgent",
			},
			wantErrs:  1,
			wantField: "Priority",
		},
		{
			name: "non-numeric frequency",
			row: Row{
				ColTitle:         "Clean gutters",
				ColFrequencyDays: "quarterly",
			},
			wantErrs:  1,
			wantField: "FrequencyDays",
		},
		{
			name: "unknown anchor type",
			row: Row{
				ColTitle:              "Winterize faucets",
				ColSeasonalAnchorType: "solstice",
			},
			wantErrs:  1,
			wantField: "SeasonalAnchor",
		},
		{
			name: "anchor month without day",
			row: Row{
				ColTitle:             "Winterize faucets",
				ColSeasonAnchorMonth: "11",
			},
			wantErrs:   1,
			wantField:  ColSeasonAnchorMonth,
			wantTarget: ErrInvalidAnchorDate,
		},
		{
			name: "impossible anchor date",
			row: Row{
				ColTitle:             "Winterize faucets",
				ColSeasonAnchorMonth: "4",
				ColSeasonAnchorDay:   "31",
			},
			wantErrs:   1,
			wantField:  ColSeasonAnchorMonth,
			wantTarget: ErrInvalidAnchorDate,
		},
		{
			name: "feb 29 anchor is accepted",
			row: Row{
				ColTitle:             "Leap day check",
				ColSeasonAnchorMonth: "2",
				ColSeasonAnchorDay:   "29",
			},
			wantErrs: 0,
		},
		{
			name: "malformed requirement expression",
			row: Row{
				ColTitle:               "Clean gutters",
				ColFeatureRequirements: "has_gutters",
			},
			wantErrs:   1,
			wantField:  ColFeatureRequirements,
			wantTarget: domain.ErrMalformedRequirement,
		},
		{
			name: "every problem is reported",
			row: Row{
				ColPriority:            "urgent",
				ColFeatureRequirements: "has_hvac=perhaps",
			},
			wantErrs: 3, // missing title, bad priority, bad requirement value
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateRow(4, tc.row)

			if len(errs) != tc.wantErrs {
				t.Fatalf("ValidateRow() returned %d errors, want %d: %v", len(errs), tc.wantErrs, errs)
			}
			if tc.wantErrs == 0 {
				return
			}
			if tc.wantField != "" && errs[0].Field != tc.wantField {
				t.Errorf("error field = %q, want %q", errs[0].Field, tc.wantField)
			}
			if tc.wantTarget != nil && !errors.Is(errs[0], tc.wantTarget) {
				t.Errorf("error %v does not wrap %v", errs[0], tc.wantTarget)
			}
			if errs[0].Line != 4 {
				t.Errorf("error line = %d, want 4", errs[0].Line)
			}
		})
	}
}
