package domain

// CarpetCoverage describes how much of a home is carpeted. It is the one
// household attribute that is not a plain boolean: partial coverage still
// counts as "has carpet" for matching purposes.
type CarpetCoverage string

// Possible carpet coverage values.
const (
	CarpetCoverageYes  CarpetCoverage = "yes"
	CarpetCoverageNo   CarpetCoverage = "no"
	CarpetCoverageSome CarpetCoverage = "some"
)

// HasCarpet reports whether the coverage counts as truthy for feature
// matching. Partial coverage counts.
func (c CarpetCoverage) HasCarpet() bool {
	return c == CarpetCoverageYes || c == CarpetCoverageSome
}

// FeatureSet is a household's profile of home features. It is supplied by
// the profile collaborator and never mutated by the engine.
type FeatureSet struct {
	// Flags maps canonical feature keys to whether the home has the feature.
	// Keys absent from the map are treated as false.
	Flags map[string]bool

	// Carpet is the legacy three-valued flooring answer, consulted only by
	// the has_carpet requirement key.
	Carpet CarpetCoverage
}

// Has reports whether the household has the given canonical feature.
// Absent keys are false.
func (f FeatureSet) Has(key string) bool {
	return f.Flags[key]
}

// FeatureKeyAliases maps deprecated or misspelled catalog keys to their
// canonical feature keys. Applied before the allow-list check so old
// catalogs keep matching.
var FeatureKeyAliases = map[string]string{
	"has_disposal":         "has_garbage_disposal",
	"has_washer":           "has_washer_dryer",
	"has_smoke_dectectors": "has_smoke_detectors", // typo variant
	"has_outdoor":          "has_yard",
	"has_deck":             "has_deck_patio",
}

// AllowedFeatureKeys is the fixed allow-list of canonical feature keys a
// catalog requirement may reference. Keys outside this set are silently
// ignored during requirement parsing so catalogs can mention future keys
// without breaking older deployments.
var AllowedFeatureKeys = map[string]bool{
	// Core features
	"has_hvac":             true,
	"has_gutters":          true,
	"has_dishwasher":       true,
	"has_smoke_detectors":  true,
	"has_water_heater":     true,
	"has_water_softener":   true,
	"has_garbage_disposal": true,
	"has_washer_dryer":     true,
	"has_sump_pump":        true,
	"has_well":             true,
	"has_fireplace":        true,
	"has_septic":           true,
	"has_garage":           true,
	// Extended boolean features added by the onboarding wizard
	"has_window_units":     true,
	"has_radiator_boiler":  true,
	"no_central_hvac":      true,
	"has_refrigerator_ice": true,
	"has_range_hood":       true,
	"has_deck_patio":       true,
	"has_pool_hot_tub":     true,
	"freezes":              true,
	"has_pets":             true,
	"pet_dog":              true,
	"pet_cat":              true,
	"pet_other":            true,
	"travel_often":         true,
	"has_yard":             true,
	// Aliased keys resolve to entries above; has_carpet is special-cased
	// against the three-valued carpet answer.
	"has_carpet": true,
}
