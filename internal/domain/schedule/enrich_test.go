package schedule

import (
	"testing"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

func TestEnrichDefaultsSafety(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		expected bool
	}{
		{
			name:     "surface plus action is safety-critical",
			template: domain.TaskTemplate{Title: "Test smoke detector batteries"},
			expected: true,
		},
		{
			name:     "surface without action is not",
			template: domain.TaskTemplate{Title: "Dust smoke detector covers"},
			expected: false,
		},
		{
			name:     "action without surface is not",
			template: domain.TaskTemplate{Title: "Check pantry inventory"},
			expected: false,
		},
		{
			name:     "inspect dryer vent",
			template: domain.TaskTemplate{Title: "Inspect dryer vent for lint buildup"},
			expected: true,
		},
		{
			name:     "explicit catalog flag is kept",
			template: domain.TaskTemplate{Title: "Test smoke detectors", SafetyCritical: boolPtr(false)},
			expected: false,
		},
		{
			name:     "explicit true on a mundane title is kept",
			template: domain.TaskTemplate{Title: "Wipe counters", SafetyCritical: boolPtr(true)},
			expected: true,
		},
		{
			name:     "replacing a fire extinguisher is never safety-critical",
			template: domain.TaskTemplate{Title: "Replace fire extinguisher", SafetyCritical: boolPtr(true)},
			expected: false,
		},
		{
			name:     "inspecting an extinguisher stays eligible",
			template: domain.TaskTemplate{Title: "Inspect fire extinguisher gauge", SafetyCritical: boolPtr(true)},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EnrichDefaults([]domain.TaskTemplate{tc.template})
			if got[0].IsSafetyCritical() != tc.expected {
				t.Errorf("IsSafetyCritical() = %v, want %v", got[0].IsSafetyCritical(), tc.expected)
			}
		})
	}
}

func TestEnrichDefaultsPriority(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		expected domain.Priority
	}{
		{
			name:     "safety-critical gets high",
			template: domain.TaskTemplate{Title: "Test carbon monoxide alarm"},
			expected: domain.PriorityHigh,
		},
		{
			name:     "filter task gets medium",
			template: domain.TaskTemplate{Title: "Replace HVAC filter"},
			expected: domain.PriorityMedium,
		},
		{
			name:     "gutters get medium",
			template: domain.TaskTemplate{Title: "Clean gutters and downspouts"},
			expected: domain.PriorityMedium,
		},
		{
			name:     "plain task keeps no priority",
			template: domain.TaskTemplate{Title: "Wash exterior windows"},
			expected: "",
		},
		{
			name:     "explicit priority kept",
			template: domain.TaskTemplate{Title: "Replace HVAC filter", Priority: domain.PriorityLow},
			expected: domain.PriorityLow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EnrichDefaults([]domain.TaskTemplate{tc.template})
			if got[0].Priority != tc.expected {
				t.Errorf("Priority = %q, want %q", got[0].Priority, tc.expected)
			}
		})
	}
}

func TestEnrichDefaultsCategory(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "hvac by filter keyword", title: "Replace furnace filter", expected: "hvac"},
		{name: "plumbing by water heater", title: "Flush water heater", expected: "plumbing"},
		{name: "kitchen by disposal", title: "Freshen garbage disposal", expected: "kitchen"},
		{name: "exterior by gutters", title: "Clean gutters", expected: "exterior"},
		{name: "safety by extinguisher", title: "Replace fire extinguisher", expected: "safety"},
		{name: "laundry by lint", title: "Clear lint trap duct", expected: "laundry"},
		{name: "earlier bucket wins on multiple matches", title: "Check sink filter", expected: "hvac"},
		{name: "no keyword leaves category empty", title: "Organize closets", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EnrichDefaults([]domain.TaskTemplate{{Title: tc.title}})
			if got[0].Category != tc.expected {
				t.Errorf("Category = %q, want %q", got[0].Category, tc.expected)
			}
		})
	}
}

func TestEnrichDefaultsSeasonal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		expected bool
	}{
		{
			name:     "season metadata implies seasonal",
			template: domain.TaskTemplate{Title: "Service AC", SeasonCode: domain.SeasonSummer},
			expected: true,
		},
		{
			name:     "winterize keyword implies seasonal",
			template: domain.TaskTemplate{Title: "Winterize outdoor faucets"},
			expected: true,
		},
		{
			name:     "fall keyword needs trailing space",
			template: domain.TaskTemplate{Title: "Pick up fallen branches"},
			expected: false,
		},
		{
			name:     "fall with following word matches",
			template: domain.TaskTemplate{Title: "Fall yard cleanup"},
			expected: true,
		},
		{
			name:     "explicit false survives season keyword",
			template: domain.TaskTemplate{Title: "Winterize outdoor faucets", Seasonal: boolPtr(false)},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EnrichDefaults([]domain.TaskTemplate{tc.template})
			if got[0].IsSeasonal() != tc.expected {
				t.Errorf("IsSeasonal() = %v, want %v", got[0].IsSeasonal(), tc.expected)
			}
		})
	}
}

func TestEnrichDefaultsEstimatedMinutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		template domain.TaskTemplate
		expected int
	}{
		{
			name:     "explicit estimate kept",
			template: domain.TaskTemplate{Title: "Clean gutters", EstimatedMinutes: 120},
			expected: 120,
		},
		{
			name:     "high priority baseline",
			template: domain.TaskTemplate{Title: "Service boiler", Priority: domain.PriorityHigh},
			expected: 45,
		},
		{
			name:     "medium priority baseline",
			template: domain.TaskTemplate{Title: "Mop floors", Priority: domain.PriorityMedium},
			expected: 30,
		},
		{
			name:     "unset priority baseline",
			template: domain.TaskTemplate{Title: "Organize closets"},
			expected: 20,
		},
		{
			name:     "exterior adds ten",
			template: domain.TaskTemplate{Title: "Clean gutters"},
			// gutters infer medium priority and the exterior category
			expected: 40,
		},
		{
			name:     "safety category subtracts ten from high baseline",
			template: domain.TaskTemplate{Title: "Test smoke detector"},
			// safety-critical infers high priority, smoke infers safety category
			expected: 35,
		},
		{
			name: "safety subtraction floors at ten",
			template: domain.TaskTemplate{
				Title:    "Restock first aid kit",
				Category: "safety",
			},
			expected: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EnrichDefaults([]domain.TaskTemplate{tc.template})
			if got[0].EstimatedMinutes != tc.expected {
				t.Errorf("EstimatedMinutes = %d, want %d", got[0].EstimatedMinutes, tc.expected)
			}
		})
	}
}
