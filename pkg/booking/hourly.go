package booking

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/model"
	"github.com/goliatone/go-listing/pkg/validation"
)

// HourlyStyle books one time slot on a date.
type HourlyStyle struct {
	Base
	StartDate *time.Time
	Schedules []model.Schedule
	Selected  *model.Schedule
}

// Kind implements Style.
func (h *HourlyStyle) Kind() Kind { return KindHourly }

// Params sends the slot bounds as start_time and end_time.
func (h *HourlyStyle) Params() map[string]any {
	params := h.Base.params(KindHourly)
	if h.StartDate != nil {
		params[ParamStartDate] = formatDate(h.StartDate)
	}
	if h.Selected != nil {
		params[ParamStartTime] = h.Selected.Start
		params[ParamEndTime] = h.Selected.End
	}
	return params
}

// Validate checks base fields, the date, then the slot.
func (h *HourlyStyle) Validate() error {
	if err := h.Base.validate(); err != nil {
		return err
	}
	if h.StartDate == nil {
		return validation.CodePleaseSelectStartDate
	}
	if h.Selected == nil {
		return validation.CodePleaseSelectTime
	}
	return nil
}

// Clone implements Style.
func (h *HourlyStyle) Clone() Style {
	out := *h
	out.StartDate = cloneTime(h.StartDate)
	out.Schedules = slices.Clone(h.Schedules)
	if h.Selected != nil {
		selected := *h.Selected
		out.Selected = &selected
	}
	return &out
}

// Total is the slot price.
func (h *HourlyStyle) Total() decimal.Decimal {
	return h.Price
}

// Select picks the slot at idx from Schedules.
func (h *HourlyStyle) Select(idx int) bool {
	if idx < 0 || idx >= len(h.Schedules) {
		return false
	}
	slot := h.Schedules[idx]
	h.Selected = &slot
	return true
}
