package catalog

import (
	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// BuiltinTemplates returns the built-in fallback catalog, used when no
// stored template table or CSV catalog is available. Each entry carries a
// requirement expression tying it to the home feature it serves, so the
// normal matching pipeline applies unchanged.
func BuiltinTemplates() []domain.TaskTemplate {
	return []domain.TaskTemplate{
		{
			Title:               "Replace HVAC Filter",
			Description:         "Replace air filter for better air quality and efficiency",
			FrequencyDays:       30,
			FeatureRequirements: "has_hvac=true",
		},
		{
			Title:               "Vacuum out HVAC return grills",
			Description:         "Use vacuum brush attachment to clean out debris",
			FrequencyDays:       180,
			FeatureRequirements: "has_hvac=true",
		},
		{
			Title:               "Add vinegar to HVAC system",
			Description:         "Add 1/4 cup distilled white vinegar to drain pump in HVAC to prevent mold and bacteria",
			FrequencyDays:       30,
			FeatureRequirements: "has_hvac=true",
		},
		{
			Title:               "Clean Gutters",
			Description:         "Remove leaves and debris from gutters and downspouts",
			FrequencyDays:       90,
			FeatureRequirements: "has_gutters=true",
		},
		{
			Title:               "Inspect Gutters",
			Description:         "Check for damage, loose connections, or clogs",
			FrequencyDays:       180,
			FeatureRequirements: "has_gutters=true",
		},
		{
			Title:               "Clean Dishwasher Filter",
			Description:         "Remove and clean the dishwasher filter",
			FrequencyDays:       30,
			FeatureRequirements: "has_dishwasher=true",
		},
		{
			Title:               "Run Dishwasher Cleaning Cycle",
			Description:         "Use dishwasher cleaner or vinegar to clean the interior",
			FrequencyDays:       90,
			FeatureRequirements: "has_dishwasher=true",
		},
		{
			Title:               "Test Smoke Detectors",
			Description:         "Press test button on all smoke detectors",
			FrequencyDays:       30,
			FeatureRequirements: "has_smoke_detectors=true",
		},
		{
			Title:               "Replace Smoke Detector Batteries",
			Description:         "Replace batteries in all smoke detectors",
			FrequencyDays:       365,
			FeatureRequirements: "has_smoke_detectors=true",
		},
		{
			Title:               "Flush Water Heater",
			Description:         "Drain and flush water heater to remove sediment",
			FrequencyDays:       365,
			FeatureRequirements: "has_water_heater=true",
		},
		{
			Title:               "Check Water Heater Temperature",
			Description:         "Ensure water heater is set to 120°F (49°C)",
			FrequencyDays:       180,
			FeatureRequirements: "has_water_heater=true",
		},
		{
			Title:               "Insulate Outdoor Faucets",
			Description:         "Install/inspect faucet covers before freezing temps",
			FrequencyDays:       365,
			FeatureRequirements: "freezes=true",
		},
		{
			Title:               "Deep Clean Pet Areas",
			Description:         "Clean pet bedding and vacuum hair in corners",
			FrequencyDays:       30,
			FeatureRequirements: "has_pets=true",
		},
		{
			Title:               "Degrease Range Hood Filter",
			Description:         "Soak and clean the hood filter to improve airflow",
			FrequencyDays:       60,
			FeatureRequirements: "has_range_hood=true",
		},
	}
}
