package domain

import (
	"errors"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestTaskTemplateValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template TaskTemplate
		wantErr  error
	}{
		{
			name:     "minimal valid template",
			template: TaskTemplate{Title: "Replace HVAC filter"},
		},
		{
			name:     "empty title",
			template: TaskTemplate{Title: "   "},
			wantErr:  ErrTemplateTitleEmpty,
		},
		{
			name:     "negative frequency",
			template: TaskTemplate{Title: "Clean gutters", FrequencyDays: -30},
			wantErr:  ErrTemplateFrequencyInvalid,
		},
		{
			name:     "negative variant rank",
			template: TaskTemplate{Title: "Clean gutters", VariantRank: -1},
			wantErr:  ErrTemplateRankInvalid,
		},
		{
			name:     "zero frequency is left for resolution",
			template: TaskTemplate{Title: "Clean gutters", FrequencyDays: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.template.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestResolvedFrequencyDays(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template TaskTemplate
		expected int
	}{
		{
			name:     "explicit frequency kept",
			template: TaskTemplate{FrequencyDays: 90},
			expected: 90,
		},
		{
			name:     "blank non-seasonal defaults to 30",
			template: TaskTemplate{},
			expected: 30,
		},
		{
			name:     "blank seasonal defaults to 365",
			template: TaskTemplate{Seasonal: boolPtr(true)},
			expected: 365,
		},
		{
			name:     "explicit seasonal frequency kept",
			template: TaskTemplate{Seasonal: boolPtr(true), FrequencyDays: 180},
			expected: 180,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.template.ResolvedFrequencyDays(); got != tc.expected {
				t.Errorf("ResolvedFrequencyDays() = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected Priority
	}{
		{"high", PriorityHigh},
		{" Medium ", PriorityMedium},
		{"LOW", PriorityLow},
		{"urgent", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := ParsePriority(tc.input); got != tc.expected {
			t.Errorf("ParsePriority(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
