package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/validation"
)

// DailyStyle books a stay between two dates.
type DailyStyle struct {
	Base
	StartDate *time.Time
	EndDate   *time.Time
}

// Kind implements Style.
func (d *DailyStyle) Kind() Kind { return KindDaily }

// Params implements Style.
func (d *DailyStyle) Params() map[string]any {
	params := d.Base.params(KindDaily)
	if d.StartDate != nil {
		params[ParamStartDate] = formatDate(d.StartDate)
	}
	if d.EndDate != nil {
		params[ParamEndDate] = formatDate(d.EndDate)
	}
	return params
}

// Validate checks base fields, start date, end date, then their order.
func (d *DailyStyle) Validate() error {
	if err := d.Base.validate(); err != nil {
		return err
	}
	if d.StartDate == nil {
		return validation.CodePleaseSelectStartDate
	}
	if d.EndDate == nil {
		return validation.CodePleaseSelectEndDate
	}
	if !d.EndDate.After(*d.StartDate) {
		return validation.CodeInvalidEndDate
	}
	return nil
}

// Clone implements Style.
func (d *DailyStyle) Clone() Style {
	out := *d
	out.StartDate = cloneTime(d.StartDate)
	out.EndDate = cloneTime(d.EndDate)
	return &out
}

// Nights counts the calendar days between start and end, at least one once
// both dates are chosen.
func (d *DailyStyle) Nights() int {
	if d.StartDate == nil || d.EndDate == nil {
		return 0
	}
	start := truncateDay(*d.StartDate)
	end := truncateDay(*d.EndDate)
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// Total is the nightly price times the number of nights; before dates are
// chosen it is the nightly price.
func (d *DailyStyle) Total() decimal.Decimal {
	nights := d.Nights()
	if nights == 0 {
		return d.Price
	}
	return d.Price.Mul(decimal.NewFromInt(int64(nights)))
}

func truncateDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
