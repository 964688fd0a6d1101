package schedule

import (
	"strings"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// SafetySurfaceKeywords are title fragments naming a safety surface. A task
// is only considered safety-critical when its title also contains an action
// keyword: owning an alarm is not a safety task, testing one is.
var SafetySurfaceKeywords = []string{
	"smoke detector", "carbon monoxide", "co detector", "gfi", "gfci", "alarm",
	"natural gas", "leak", "dryer vent", "shutoff", "sump pump",
}

// SafetyActionKeywords are the verbs that make a safety-surface task an
// actual safety check.
var SafetyActionKeywords = []string{"test", "check", "inspect"}

// CategoryBucket is one entry of the ordered category inference table.
type CategoryBucket struct {
	Name     string
	Keywords []string
}

// CategoryBuckets is the ordered keyword table for category inference.
// The first bucket with a matching keyword wins, so order is part of the
// contract.
var CategoryBuckets = []CategoryBucket{
	{"hvac", []string{"filter", "furnace", "air handler", "ac ", "a/c", "condenser", "registers"}},
	{"plumbing", []string{"water heater", "sink", "toilet", "leak", "softener", "septic", "sump", "shutoff"}},
	{"kitchen", []string{"dishwasher", "range hood", "refrigerator", "garbage disposal"}},
	{"exterior", []string{"gutters", "downspout", "deck", "patio", "fence", "garage door", "roof", "masonry", "brick"}},
	{"safety", []string{"smoke", "co ", "carbon monoxide", "alarm", "extinguisher", "gfi", "gfci", "fire "}},
	{"laundry", []string{"dryer", "lint", "washer"}},
}

// seasonalTitleKeywords flag titles that imply a seasonal task even without
// season metadata. "fall " keeps its trailing space so "fallen branches"
// does not match.
var seasonalTitleKeywords = []string{"winterize", "spring", "fall ", "autumn"}

// EnrichDefaults fills in metadata the catalog left blank, using heuristics
// over each template's title: the safety-critical flag, priority, category,
// the seasonal flag, and an estimated duration. Fields the catalog set are
// left alone, with one exception: a title about replacing a fire
// extinguisher is never safety-critical, because replacement is stocking, not
// a safety check.
//
// The input slice is not modified; a new slice of enriched copies is
// returned.
func EnrichDefaults(templates []domain.TaskTemplate) []domain.TaskTemplate {
	out := make([]domain.TaskTemplate, len(templates))
	for i, t := range templates {
		out[i] = enrichTemplate(t)
	}
	return out
}

func enrichTemplate(t domain.TaskTemplate) domain.TaskTemplate {
	title := strings.ToLower(strings.TrimSpace(t.Title))

	if t.SafetyCritical == nil {
		v := containsAny(title, SafetySurfaceKeywords) && containsAny(title, SafetyActionKeywords)
		t.SafetyCritical = &v
	}
	if strings.Contains(title, "replace") && strings.Contains(title, "extinguisher") {
		f := false
		t.SafetyCritical = &f
	}

	if t.Priority == "" {
		switch {
		case t.IsSafetyCritical():
			t.Priority = domain.PriorityHigh
		case strings.Contains(title, "filter") || strings.Contains(title, "gutters"):
			t.Priority = domain.PriorityMedium
		}
	}

	if t.Category == "" {
		for _, bucket := range CategoryBuckets {
			if containsAny(title, bucket.Keywords) {
				t.Category = bucket.Name
				break
			}
		}
	}

	if t.Seasonal == nil {
		hasSeasonMeta := t.SeasonCode != "" || t.SeasonalAnchorType != ""
		if hasSeasonMeta || containsAny(title, seasonalTitleKeywords) {
			v := true
			t.Seasonal = &v
		}
	}

	if t.EstimatedMinutes <= 0 {
		t.EstimatedMinutes = estimateMinutes(t.Priority, t.Category)
	}
	return t
}

// estimateMinutes derives a duration estimate from a priority baseline
// adjusted by category.
func estimateMinutes(priority domain.Priority, category string) int {
	base := 20
	switch priority {
	case domain.PriorityHigh:
		base = 45
	case domain.PriorityMedium:
		base = 30
	}
	switch strings.ToLower(category) {
	case "exterior", "general house checks":
		base += 10
	case "safety", "logistics":
		base -= 10
		if base < 10 {
			base = 10
		}
	}
	return base
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
