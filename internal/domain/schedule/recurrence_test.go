package schedule

import (
	"testing"
	"time"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestNextDueDateFixedAnchor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		today    time.Time
		expected time.Time
	}{
		{
			name: "upcoming anchor this year",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        10,
				AnchorDay:          15,
			},
			today:    date(2024, 6, 1),
			expected: date(2024, 10, 15),
		},
		{
			name: "anchor on today stays on today",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        6,
				AnchorDay:          1,
			},
			today:    date(2024, 6, 1),
			expected: date(2024, 6, 1),
		},
		{
			name: "past anchor rolls to next year",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        3,
				AnchorDay:          10,
			},
			today:    date(2024, 6, 1),
			expected: date(2025, 3, 10),
		},
		{
			name: "impossible february date falls back to feb 28",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        2,
				AnchorDay:          30,
			},
			today:    date(2024, 1, 15),
			expected: date(2024, 2, 28),
		},
		{
			name: "feb 29 in a leap year is kept",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        2,
				AnchorDay:          29,
			},
			today:    date(2024, 1, 15),
			expected: date(2024, 2, 29),
		},
		{
			name: "feb 29 outside a leap year falls back to feb 28",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        2,
				AnchorDay:          29,
			},
			today:    date(2025, 1, 15),
			expected: date(2025, 2, 28),
		},
		{
			name: "impossible february date already past rolls to next feb 28",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        2,
				AnchorDay:          30,
			},
			today:    date(2024, 6, 1),
			expected: date(2025, 2, 28),
		},
		{
			name: "feb 29 outside a leap year already past rolls to next feb 28",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        2,
				AnchorDay:          29,
			},
			today:    date(2025, 3, 15),
			expected: date(2026, 2, 28),
		},
		{
			name: "impossible non-february date falls back to today plus a year",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        4,
				AnchorDay:          31,
			},
			today:    date(2024, 6, 1),
			expected: date(2024, 6, 1).AddDate(0, 0, 365),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextDueDate(tc.template, tc.today)
			if !got.Equal(tc.expected) {
				t.Errorf("NextDueDate() = %s, want %s",
					got.Format(time.DateOnly), tc.expected.Format(time.DateOnly))
			}
		})
	}
}

func TestNextDueDateSeasonStart(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		season   domain.Season
		today    time.Time
		expected time.Time
	}{
		{
			name:     "winter before december",
			season:   domain.SeasonWinter,
			today:    date(2024, 11, 1),
			expected: date(2024, 12, 1),
		},
		{
			name:     "winter after its start rolls to next year",
			season:   domain.SeasonWinter,
			today:    date(2024, 12, 15),
			expected: date(2025, 12, 1),
		},
		{
			name:     "spring",
			season:   domain.SeasonSpring,
			today:    date(2024, 1, 10),
			expected: date(2024, 3, 1),
		},
		{
			name:     "summer",
			season:   domain.SeasonSummer,
			today:    date(2024, 6, 2),
			expected: date(2025, 6, 1),
		},
		{
			name:     "autumn on its start date",
			season:   domain.SeasonAutumn,
			today:    date(2024, 9, 1),
			expected: date(2024, 9, 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			template := domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorSeasonStart,
				SeasonCode:         tc.season,
			}
			got := NextDueDate(template, tc.today)
			if !got.Equal(tc.expected) {
				t.Errorf("NextDueDate() = %s, want %s",
					got.Format(time.DateOnly), tc.expected.Format(time.DateOnly))
			}
		})
	}
}

func TestNextDueDateFallbacks(t *testing.T) {
	t.Parallel()
	today := date(2024, 6, 1)

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		expected time.Time
	}{
		{
			name: "seasonal with unknown season code uses frequency",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorSeasonStart,
				SeasonCode:         "monsoon",
				FrequencyDays:      120,
			},
			expected: today.AddDate(0, 0, 120),
		},
		{
			name: "seasonal without anchor metadata defaults to a year",
			template: domain.TaskTemplate{
				Seasonal: boolPtr(true),
			},
			expected: today.AddDate(0, 0, 365),
		},
		{
			name: "seasonal fixed anchor missing day uses frequency path",
			template: domain.TaskTemplate{
				Seasonal:           boolPtr(true),
				SeasonalAnchorType: domain.AnchorFixedDate,
				AnchorMonth:        10,
				FrequencyDays:      200,
			},
			expected: today.AddDate(0, 0, 200),
		},
		{
			name: "non-seasonal manual offset wins over frequency",
			template: domain.TaskTemplate{
				FrequencyDays:   30,
				StartOffsetDays: intPtr(10),
			},
			expected: today.AddDate(0, 0, 10),
		},
		{
			name: "negative manual offset clamps to today",
			template: domain.TaskTemplate{
				StartOffsetDays: intPtr(-5),
			},
			expected: today,
		},
		{
			name: "zero manual offset means today",
			template: domain.TaskTemplate{
				FrequencyDays:   90,
				StartOffsetDays: intPtr(0),
			},
			expected: today,
		},
		{
			name:     "plain frequency",
			template: domain.TaskTemplate{FrequencyDays: 60},
			expected: today.AddDate(0, 0, 60),
		},
		{
			name:     "blank frequency defaults to 30",
			template: domain.TaskTemplate{},
			expected: today.AddDate(0, 0, 30),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextDueDate(tc.template, today)
			if !got.Equal(tc.expected) {
				t.Errorf("NextDueDate() = %s, want %s",
					got.Format(time.DateOnly), tc.expected.Format(time.DateOnly))
			}
		})
	}
}

func TestNextDueDateTruncatesTimeOfDay(t *testing.T) {
	t.Parallel()

	template := domain.TaskTemplate{FrequencyDays: 30}
	today := time.Date(2024, 6, 1, 16, 45, 12, 0, time.UTC)

	got := NextDueDate(template, today)
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("NextDueDate() = %s, want midnight boundary", got)
	}
	if !got.Equal(date(2024, 7, 1)) {
		t.Errorf("NextDueDate() = %s, want 2024-07-01", got.Format(time.DateOnly))
	}
}
