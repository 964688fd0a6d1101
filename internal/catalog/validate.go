package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// ErrInvalidAnchorDate is returned when a row's seasonal anchor month/day is
// not a real calendar date. Validation uses a leap year so Feb 29 anchors
// are allowed.
var ErrInvalidAnchorDate = errors.New("invalid seasonal anchor date")

// RowError reports one problem with one catalog row. Row errors never abort
// an import; the offending row is dropped and counted.
type RowError struct {
	// Line is the 1-based row position within the import.
	Line  int
	Field string
	Err   error
}

func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// rowSpec is the validatable shape of a catalog row. Tag-level checks cover
// vocabulary and range constraints; anchor-date validity needs calendar
// logic and is checked separately.
type rowSpec struct {
	Title            string `validate:"required"`
	Priority         string `validate:"omitempty,oneof=low medium high"`
	FrequencyDays    string `validate:"omitempty,number"`
	SeasonalAnchor   string `validate:"omitempty,oneof=fixed_date season_start"`
	SeasonCode       string `validate:"omitempty,oneof=winter spring summer autumn"`
	VariantRank      string `validate:"omitempty,number"`
	EstimatedMinutes string `validate:"omitempty,number"`
}

var rowValidator = validator.New()

// ValidateRow checks one catalog row for import-time problems: a missing
// title, out-of-vocabulary enums, non-numeric numeric columns, an invalid
// anchor date, a malformed requirement expression. All problems found are
// returned; line is the row's 1-based position used in messages.
func ValidateRow(line int, r Row) []RowError {
	var errs []RowError

	spec := rowSpec{
		Title:            r.get(ColTitle),
		Priority:         r.get(ColPriority),
		FrequencyDays:    r.get(ColFrequencyDays),
		SeasonalAnchor:   r.get(ColSeasonalAnchorType),
		SeasonCode:       r.get(ColSeasonCode),
		VariantRank:      r.get(ColVariantRank),
		EstimatedMinutes: r.get(ColEstimatedMinutes),
	}
	if err := rowValidator.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, RowError{
					Line:  line,
					Field: fe.Field(),
					Err:   fmt.Errorf("failed %q validation", fe.Tag()),
				})
			}
		} else {
			errs = append(errs, RowError{Line: line, Err: err})
		}
	}

	if month, ok := domain.ParseInt(r.get(ColSeasonAnchorMonth)); ok {
		day, dayOK := domain.ParseInt(r.get(ColSeasonAnchorDay))
		if !dayOK || !validAnchorDate(month, day) {
			errs = append(errs, RowError{
				Line:  line,
				Field: ColSeasonAnchorMonth,
				Err:   fmt.Errorf("%w: month=%d day=%s", ErrInvalidAnchorDate, month, r.get(ColSeasonAnchorDay)),
			})
		}
	}

	if _, reqErrs := domain.ParseRequirements(r.get(ColFeatureRequirements)); len(reqErrs) > 0 {
		for _, err := range reqErrs {
			errs = append(errs, RowError{Line: line, Field: ColFeatureRequirements, Err: err})
		}
	}
	return errs
}

// validAnchorDate checks the month/day pair against a leap year, so Feb 29
// is accepted at import time even though non-leap years fall back to Feb 28
// at recurrence time.
func validAnchorDate(month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(2024, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(d.Month()) == month && d.Day() == day
}
