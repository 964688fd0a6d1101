package schedule

import (
	"math"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// ResolveOverlaps collapses competing template variants that serve the same
// purpose: within each non-empty overlap group, only the variant with the
// lowest rank survives. A missing rank is treated as effectively infinite,
// so ranked variants always beat unranked ones. Ungrouped templates are kept
// independently and never collide with each other, even when titles repeat.
//
// Which variant survives an exact rank tie is unspecified; catalogs needing
// a deterministic winner must not assign equal ranks within a group.
//
// The input slice is not modified; a new slice is returned.
func ResolveOverlaps(templates []domain.TaskTemplate) []domain.TaskTemplate {
	out := make([]domain.TaskTemplate, 0, len(templates))
	// winner index in out, per overlap group
	winners := make(map[string]int)

	for _, t := range templates {
		if t.OverlapGroup == "" {
			out = append(out, t)
			continue
		}
		idx, seen := winners[t.OverlapGroup]
		if !seen {
			winners[t.OverlapGroup] = len(out)
			out = append(out, t)
			continue
		}
		if effectiveRank(t) < effectiveRank(out[idx]) {
			out[idx] = t
		}
	}
	return out
}

// effectiveRank orders variants within an overlap group. Unranked variants
// sort last.
func effectiveRank(t domain.TaskTemplate) int {
	if t.VariantRank < 1 {
		return math.MaxInt
	}
	return t.VariantRank
}
