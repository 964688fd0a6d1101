package catalog

import (
	"strings"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// Column names of a catalog row, as they appear in the template table and
// CSV headers.
const (
	ColTaskKey             = "task_key"
	ColTitle               = "title"
	ColDescription         = "description"
	ColFrequencyDays       = "frequency_days"
	ColCategory            = "category"
	ColPriority            = "priority"
	ColFeatureRequirements = "feature_requirements"
	ColStartOffsetDays     = "start_offset_days"
	ColSeasonal            = "seasonal"
	ColSeasonalAnchorType  = "seasonal_anchor_type"
	ColSeasonCode          = "season_code"
	ColSeasonAnchorMonth   = "season_anchor_month"
	ColSeasonAnchorDay     = "season_anchor_day"
	ColOverlapGroup        = "overlap_group"
	ColVariantRank         = "variant_rank"
	ColSafetyCritical      = "safety_critical"
	ColEstimatedMinutes    = "estimated_minutes"
	ColNotes               = "notes"
)

// ExpectedColumns is the canonical column set of a catalog import, in
// header order.
var ExpectedColumns = []string{
	ColTaskKey, ColTitle, ColDescription, ColFrequencyDays, ColCategory,
	ColPriority, ColFeatureRequirements, ColStartOffsetDays, ColSeasonal,
	ColSeasonalAnchorType, ColSeasonCode, ColSeasonAnchorMonth,
	ColSeasonAnchorDay, ColOverlapGroup, ColVariantRank, ColSafetyCritical,
	ColNotes,
}

// Row is one catalog record as flat text fields, keyed by column name.
// Missing and blank columns are equivalent.
type Row map[string]string

// get returns the trimmed value for a column.
func (r Row) get(col string) string {
	return strings.TrimSpace(r[col])
}

// TemplateFromRow maps a tabular catalog row to a TaskTemplate, tolerating
// blank fields. Optional booleans and integers that fail to parse are left
// unset rather than erroring; structural problems (like a missing title)
// surface later through TaskTemplate.Validate. Priorities outside the fixed
// vocabulary collapse to no priority.
func TemplateFromRow(r Row) domain.TaskTemplate {
	t := domain.TaskTemplate{
		Key:                 r.get(ColTaskKey),
		Title:               r.get(ColTitle),
		Description:         r.get(ColDescription),
		Category:            r.get(ColCategory),
		Priority:            domain.ParsePriority(r.get(ColPriority)),
		FeatureRequirements: r.get(ColFeatureRequirements),
		SeasonalAnchorType:  domain.AnchorType(strings.ToLower(r.get(ColSeasonalAnchorType))),
		SeasonCode:          domain.Season(strings.ToLower(r.get(ColSeasonCode))),
		OverlapGroup:        r.get(ColOverlapGroup),
		Notes:               r.get(ColNotes),
	}

	if n, ok := domain.ParseInt(r.get(ColFrequencyDays)); ok && n > 0 {
		t.FrequencyDays = n
	}
	if n, ok := domain.ParseInt(r.get(ColSeasonAnchorMonth)); ok {
		t.AnchorMonth = n
	}
	if n, ok := domain.ParseInt(r.get(ColSeasonAnchorDay)); ok {
		t.AnchorDay = n
	}
	if n, ok := domain.ParseInt(r.get(ColVariantRank)); ok && n > 0 {
		t.VariantRank = n
	}
	if n, ok := domain.ParseInt(r.get(ColEstimatedMinutes)); ok && n > 0 {
		t.EstimatedMinutes = n
	}
	if b, ok := domain.ParseBool(r.get(ColSeasonal)); ok {
		t.Seasonal = &b
	}
	if b, ok := domain.ParseBool(r.get(ColSafetyCritical)); ok {
		t.SafetyCritical = &b
	}
	if n, ok := domain.ParseInt(r.get(ColStartOffsetDays)); ok {
		t.StartOffsetDays = &n
	}
	return t
}

// TemplatesFromRows maps every row, dropping rows that fail template
// validation (e.g. no title) and reporting them as row errors.
func TemplatesFromRows(rows []Row) ([]domain.TaskTemplate, []RowError) {
	templates := make([]domain.TaskTemplate, 0, len(rows))
	var rowErrs []RowError
	for i, r := range rows {
		t := TemplateFromRow(r)
		if err := t.Validate(); err != nil {
			rowErrs = append(rowErrs, RowError{Line: i + 1, Err: err})
			continue
		}
		templates = append(templates, t)
	}
	return templates, rowErrs
}
