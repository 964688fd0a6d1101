package schedule

import (
	"sort"
	"time"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// Long-interval thresholds used by the ramp. Annual-or-longer chores feel
// burdensome on day one, multi-year ones doubly so.
const (
	annualFrequencyDays    = 365
	multiYearFrequencyDays = 2 * 365

	// minAnnualDeferDays is the smallest activation offset an annual
	// non-safety task may keep on a first generation.
	minAnnualDeferDays = 90

	// minMultiYearDeferDays is the smallest activation offset a multi-year
	// non-safety task may keep on a first generation.
	minMultiYearDeferDays = 180
)

// scoredTask pairs a task index with its ramp score and natural due
// distance, used for ordering ramp placement.
type scoredTask struct {
	idx     int
	score   int
	daysOut int
}

// ApplyRamp spreads a new household's resolved tasks over time so the first
// day is not overwhelming. It decides which tasks activate immediately
// (day offsets 0-6, at most PerDayCap per day) and staggers the rest across
// StaggerWeeks, writing the results into StartOffsetDays. Offsets already
// present are never overwritten, with one exception: multi-year non-safety
// tasks are pushed out on a first generation regardless.
//
// Callers invoke this only during ramp mode (first generation, or within
// the onboarding recency window); outside ramp mode offsets pass through
// untouched. firstGeneration additionally gates the long-interval deferral
// rules, which only make sense when the household has no task history.
//
// The input slice is not modified; a new slice is returned.
func ApplyRamp(
	tasks []domain.ResolvedTask,
	today time.Time,
	params *Params,
	firstGeneration bool,
) []domain.ResolvedTask {
	out := make([]domain.ResolvedTask, len(tasks))
	copy(out, tasks)
	if !params.Enabled || len(out) == 0 {
		return out
	}
	today = truncateToDate(today)

	// Step 1: score and order. Safety dominates, then priority, then a
	// bonus for seasonal tasks whose natural due date is near. Ties break
	// by soonest natural due date; order among exact ties is unspecified.
	daysOut := make([]int, len(out))
	scores := make([]scoredTask, 0, len(out))
	for i, t := range out {
		nd := naturalDueDate(t, today)
		days := int(nd.Sub(today).Hours() / 24)
		daysOut[i] = days

		score := 0
		if t.SafetyCritical {
			score += 100
		}
		switch t.Priority {
		case domain.PriorityHigh:
			score += 20
		case domain.PriorityMedium:
			score += 10
		}
		if t.Seasonal && days <= params.NearTermDays {
			score += 15
		}
		scores = append(scores, scoredTask{idx: i, score: score, daysOut: days})
	}
	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].score != scores[b].score {
			return scores[a].score > scores[b].score
		}
		return scores[a].daysOut < scores[b].daysOut
	})

	// Step 2: safety-critical tasks are unconditionally immediate.
	var immediate, deferred []int
	inImmediate := make(map[int]bool)
	for _, s := range scores {
		if out[s.idx].SafetyCritical {
			immediate = append(immediate, s.idx)
			inImmediate[s.idx] = true
		} else {
			deferred = append(deferred, s.idx)
		}
	}

	// Step 3: near-term seasonal tasks move into the immediate set.
	deferred = moveMatching(deferred, &immediate, inImmediate, func(idx int) bool {
		return out[idx].Seasonal && daysOut[idx] <= params.NearTermDays
	})

	if firstGeneration {
		// Step 4a: multi-year chores never open the relationship. Push them
		// out of the immediate set with at least a 180-day offset.
		immediate = moveMatching(immediate, &deferred, nil, func(idx int) bool {
			t := &out[idx]
			if t.SafetyCritical || t.FrequencyDays < multiYearFrequencyDays {
				return false
			}
			offset := maxInt(t.StartOffset(), minMultiYearDeferDays)
			t.StartOffsetDays = &offset
			delete(inImmediate, idx)
			return true
		})

		// Step 4b: annual non-seasonal chores get at least a 90-day offset
		// if the catalog did not set one.
		for _, idx := range deferred {
			t := &out[idx]
			if t.FrequencyDays >= annualFrequencyDays && !t.Seasonal && !t.HasStartOffset() {
				offset := minAnnualDeferDays
				t.StartOffsetDays = &offset
			}
		}
	}

	// Step 5: fill the immediate set up to the cap in score order, skipping
	// long-interval candidates on a first generation.
	remaining := params.InitialCap - len(immediate)
	for _, s := range scores {
		if remaining <= 0 {
			break
		}
		if inImmediate[s.idx] {
			continue
		}
		t := out[s.idx]
		if firstGeneration && t.FrequencyDays >= annualFrequencyDays && !t.SafetyCritical {
			continue
		}
		deferred = removeIndex(deferred, s.idx)
		immediate = append(immediate, s.idx)
		inImmediate[s.idx] = true
		remaining--
	}

	// Step 6: stagger deferred tasks round-robin across the weeks after the
	// first, without clobbering offsets the catalog (or step 4) set.
	if params.StaggerWeeks > 0 {
		for pos, idx := range deferred {
			t := &out[idx]
			if t.HasStartOffset() {
				continue
			}
			week := 1 + pos%params.StaggerWeeks
			offset := 7 * week
			t.StartOffsetDays = &offset
		}
	}

	// Step 7: place immediate tasks across the first week, PerDayCap per
	// day, never past day 6.
	dayCursor, dailyCount := 0, 0
	for _, idx := range immediate {
		if params.PerDayCap > 0 && dailyCount >= params.PerDayCap {
			dayCursor++
			dailyCount = 0
		}
		t := &out[idx]
		if !t.HasStartOffset() {
			offset := minInt(6, dayCursor)
			t.StartOffsetDays = &offset
		}
		dailyCount++
	}

	// Step 8: safety net. No annual-or-longer non-safety task may sit
	// closer than 90 days out after all other placement.
	for _, idx := range deferred {
		t := &out[idx]
		if t.FrequencyDays >= annualFrequencyDays && !t.SafetyCritical {
			if !t.HasStartOffset() || t.StartOffset() < minAnnualDeferDays {
				offset := minAnnualDeferDays
				t.StartOffsetDays = &offset
			}
		}
	}

	return out
}

// naturalDueDate is a task's due date as the recurrence calculator would
// compute it with no manual offset. The ramp uses this to judge how soon a
// task naturally wants attention.
func naturalDueDate(t domain.ResolvedTask, today time.Time) time.Time {
	t.StartOffsetDays = nil
	return TaskDueDate(t, today)
}

// moveMatching moves every index satisfying match from src into dst,
// preserving relative order. inDst, when non-nil, is kept in sync for
// membership checks. Returns the filtered src.
func moveMatching(src []int, dst *[]int, inDst map[int]bool, match func(idx int) bool) []int {
	kept := src[:0]
	for _, idx := range src {
		if match(idx) {
			*dst = append(*dst, idx)
			if inDst != nil {
				inDst[idx] = true
			}
		} else {
			kept = append(kept, idx)
		}
	}
	return kept
}

func removeIndex(s []int, idx int) []int {
	for i, v := range s {
		if v == idx {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
