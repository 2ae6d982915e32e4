package booking

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/validation"
)

// StandardStyle books a single start date and time.
type StandardStyle struct {
	Base
	StartDate *time.Time
	StartTime string
}

// Kind implements Style.
func (s *StandardStyle) Kind() Kind { return KindStandard }

// Params implements Style.
func (s *StandardStyle) Params() map[string]any {
	return s.params(KindStandard)
}

func (s *StandardStyle) params(kind Kind) map[string]any {
	params := s.Base.params(kind)
	if s.StartDate != nil {
		params[ParamStartDate] = formatDate(s.StartDate)
	}
	if s.StartTime != "" {
		params[ParamStartTime] = s.StartTime
	}
	return params
}

// Validate checks base fields, then start time, then start date.
func (s *StandardStyle) Validate() error {
	if err := s.Base.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.StartTime) == "" {
		return validation.CodePleaseSelectStartTime
	}
	if s.StartDate == nil {
		return validation.CodePleaseSelectStartDate
	}
	return nil
}

// Clone implements Style.
func (s *StandardStyle) Clone() Style {
	return s.clone()
}

func (s *StandardStyle) clone() *StandardStyle {
	out := *s
	out.StartDate = cloneTime(s.StartDate)
	return &out
}

// Total is the unit price per guest.
func (s *StandardStyle) Total() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(s.guests()))
}

// SetStart updates the selected date and time.
func (s *StandardStyle) SetStart(date time.Time, clock string) {
	s.StartDate = &date
	s.StartTime = strings.TrimSpace(clock)
}
