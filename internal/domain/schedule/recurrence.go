package schedule

import (
	"time"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// seasonStarts maps season codes to their meteorological start (month, day),
// Northern hemisphere. User-defined seasons would extend this table.
var seasonStarts = map[domain.Season][2]int{
	domain.SeasonWinter: {12, 1},
	domain.SeasonSpring: {3, 1},
	domain.SeasonSummer: {6, 1},
	domain.SeasonAutumn: {9, 1},
}

// NextDueDate computes a template's next due date relative to today.
//
// The fallback order is a contract relied on by the ramp scheduler, which
// derives natural due dates by calling this with the offset stripped:
//
//  1. seasonal + fixed_date anchor with a usable month/day: next occurrence
//     of that calendar date, rolling to next year if already past
//  2. seasonal + season_start anchor with a known season code: next
//     occurrence of the season's start date
//  3. seasonal with incomplete anchor metadata: today + max(1, frequency,
//     defaulting to 365)
//  4. non-seasonal with a manual start offset: today + max(0, offset)
//  5. otherwise: today + max(1, frequency, defaulting to 30)
//
// Today is caller-supplied so generation runs are deterministic and
// testable.
func NextDueDate(t domain.TaskTemplate, today time.Time) time.Time {
	today = truncateToDate(today)
	if t.IsSeasonal() {
		switch t.SeasonalAnchorType {
		case domain.AnchorFixedDate:
			if t.AnchorMonth > 0 && t.AnchorDay > 0 {
				return nextAnchorDate(t.AnchorMonth, t.AnchorDay, today)
			}
		case domain.AnchorSeasonStart:
			if start, ok := seasonStarts[t.SeasonCode]; ok {
				return nextAnchorDate(start[0], start[1], today)
			}
		}
		freq := t.FrequencyDays
		if freq < 1 {
			freq = 365
		}
		return today.AddDate(0, 0, freq)
	}
	if t.StartOffsetDays != nil {
		offset := *t.StartOffsetDays
		if offset < 0 {
			offset = 0
		}
		return today.AddDate(0, 0, offset)
	}
	freq := t.FrequencyDays
	if freq < 1 {
		freq = 30
	}
	return today.AddDate(0, 0, freq)
}

// TaskDueDate computes a resolved task's due date from its settled
// scheduling fields, applying the same fallback order as NextDueDate. The
// generation pipeline calls this after the ramp has assigned start offsets,
// so a task's due date reflects where the ramp placed it: an immediate task
// is due on its placement day and a deferred one on its offset day.
func TaskDueDate(t domain.ResolvedTask, today time.Time) time.Time {
	seasonal := t.Seasonal
	return NextDueDate(domain.TaskTemplate{
		FrequencyDays:      t.FrequencyDays,
		Seasonal:           &seasonal,
		SeasonalAnchorType: t.SeasonalAnchorType,
		SeasonCode:         t.SeasonCode,
		AnchorMonth:        t.AnchorMonth,
		AnchorDay:          t.AnchorDay,
		StartOffsetDays:    t.StartOffsetDays,
	}, today)
}

// nextAnchorDate returns the next occurrence of the month/day anchor on or
// after today. An anchor that is not a real calendar date in the relevant
// year (e.g. Feb 30, or Feb 29 outside leap years) falls back to the next
// Feb 28 on or after today for February anchors, or today + 365 days
// otherwise. The result is never in the past.
func nextAnchorDate(month, day int, today time.Time) time.Time {
	thisYear, ok := makeDate(today.Year(), month, day)
	if ok {
		if !thisYear.Before(today) {
			return thisYear
		}
		if next, ok := makeDate(today.Year()+1, month, day); ok {
			return next
		}
	}
	if month == 2 {
		feb := dateFor(today.Year(), 2, 28)
		if feb.Before(today) {
			feb = dateFor(today.Year()+1, 2, 28)
		}
		return feb
	}
	return today.AddDate(0, 0, 365)
}

// makeDate constructs the date if the month/day pair is a real calendar
// date in that year. time.Date normalizes overflow (Feb 30 becomes Mar 1),
// so validity is detected by round-tripping the components.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := dateFor(year, month, day)
	if int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func dateFor(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
