package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-listing/pkg/booking"
	"github.com/goliatone/go-listing/pkg/validation"
)

const defaultAttempts = 3

// Session walks the user through a booking draft and returns the submission
// payload.
type Session struct {
	Driver     Driver
	Translator validation.Translator
	Locale     string
	Logger     *slog.Logger
	// MaxAttempts bounds how many times an invalid draft is re-edited.
	MaxAttempts int
}

// Run edits a private copy of style until it validates, then asks for
// confirmation and submits it.
func (s *Session) Run(ctx context.Context, style booking.Style) (map[string]any, error) {
	if s.Driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}
	logger := s.logger()
	flow := booking.NewFlow()
	if err := flow.Start(style); err != nil {
		return nil, err
	}
	logger = logger.With("flow", flow.ID().String(), "style", string(style.Kind()))
	logger.Debug("booking draft started")

	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := s.collect(ctx, flow); err != nil {
			return nil, err
		}
		lastErr = flow.Validate()
		if lastErr == nil {
			break
		}
		code, ok := validation.AsCode(lastErr)
		if !ok {
			return nil, lastErr
		}
		logger.Info("booking draft invalid", "code", string(code), "attempt", attempt)
		if err := s.Driver.Info(ctx, validation.Message(s.Locale, code, s.Translator, nil)); err != nil {
			return nil, err
		}
		if attempt == attempts {
			break
		}
		retry, err := s.Driver.Confirm(ctx, ConfirmConfig{Message: "Edit the booking again?", Default: true})
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, ErrAborted
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	draft := flow.Draft()
	ok, err := s.Driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Submit booking (total %s)?", draft.Total().StringFixed(2)),
		Default: true,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAborted
	}

	params, err := flow.Submit()
	if err != nil {
		return nil, err
	}
	logger.Info("booking submitted")
	return params, nil
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *Session) collect(ctx context.Context, flow *booking.Flow) error {
	switch draft := flow.Draft().(type) {
	case *booking.TableStyle:
		if err := s.askStandard(ctx, &draft.StandardStyle); err != nil {
			return err
		}
		if err := s.askTables(ctx, draft); err != nil {
			return err
		}
		return booking.EditAs(flow, func(d *booking.TableStyle) { *d = *draft })
	case *booking.StandardStyle:
		if err := s.askStandard(ctx, draft); err != nil {
			return err
		}
		return booking.EditAs(flow, func(d *booking.StandardStyle) { *d = *draft })
	case *booking.DailyStyle:
		if err := s.askDaily(ctx, draft); err != nil {
			return err
		}
		return booking.EditAs(flow, func(d *booking.DailyStyle) { *d = *draft })
	case *booking.HourlyStyle:
		if err := s.askHourly(ctx, draft); err != nil {
			return err
		}
		return booking.EditAs(flow, func(d *booking.HourlyStyle) { *d = *draft })
	default:
		return fmt.Errorf("prompt: unsupported booking style %T", draft)
	}
}

func (s *Session) askBase(ctx context.Context, base *booking.Base) error {
	adult, err := s.askCount(ctx, "Adults", base.Adult)
	if err != nil {
		return err
	}
	children, err := s.askCount(ctx, "Children", base.Children)
	if err != nil {
		return err
	}
	base.Adult = adult
	base.Children = children
	return nil
}

func (s *Session) askStandard(ctx context.Context, style *booking.StandardStyle) error {
	if err := s.askBase(ctx, &style.Base); err != nil {
		return err
	}
	date, err := s.askDate(ctx, "Date (YYYY-MM-DD)", style.StartDate)
	if err != nil {
		return err
	}
	clock, err := s.Driver.Input(ctx, InputConfig{
		Message:   "Time (HH:MM)",
		Default:   style.StartTime,
		Validator: validateClock,
	})
	if err != nil {
		return err
	}
	style.StartDate = date
	style.StartTime = strings.TrimSpace(clock)
	return nil
}

func (s *Session) askTables(ctx context.Context, style *booking.TableStyle) error {
	if len(style.Options) == 0 {
		return s.Driver.Info(ctx, "No tables available")
	}
	options := make([]string, len(style.Options))
	var defaults []int
	for i, option := range style.Options {
		options[i] = option.Name
		for _, selected := range style.Selected {
			if selected.ID == option.ID {
				defaults = append(defaults, i)
			}
		}
	}
	picked, err := s.Driver.MultiSelect(ctx, SelectConfig{
		Message:  "Tables",
		Options:  options,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	style.Selected = style.Selected[:0]
	for _, idx := range picked {
		if idx >= 0 && idx < len(style.Options) {
			style.Selected = append(style.Selected, style.Options[idx])
		}
	}
	return nil
}

func (s *Session) askDaily(ctx context.Context, style *booking.DailyStyle) error {
	if err := s.askBase(ctx, &style.Base); err != nil {
		return err
	}
	start, err := s.askDate(ctx, "Check in (YYYY-MM-DD)", style.StartDate)
	if err != nil {
		return err
	}
	end, err := s.askDate(ctx, "Check out (YYYY-MM-DD)", style.EndDate)
	if err != nil {
		return err
	}
	style.StartDate = start
	style.EndDate = end
	return nil
}

func (s *Session) askHourly(ctx context.Context, style *booking.HourlyStyle) error {
	if err := s.askBase(ctx, &style.Base); err != nil {
		return err
	}
	date, err := s.askDate(ctx, "Date (YYYY-MM-DD)", style.StartDate)
	if err != nil {
		return err
	}
	style.StartDate = date
	if len(style.Schedules) == 0 {
		return s.Driver.Info(ctx, "No time slots available")
	}
	titles := make([]string, len(style.Schedules))
	current := -1
	for i, slot := range style.Schedules {
		titles[i] = slot.Title()
		if style.Selected != nil && *style.Selected == slot {
			current = i
		}
	}
	idx, err := s.Driver.Select(ctx, SelectConfig{
		Message:      "Time slot",
		Options:      titles,
		DefaultIndex: current,
	})
	if err != nil {
		return err
	}
	style.Select(idx)
	return nil
}

func (s *Session) askCount(ctx context.Context, message string, current int) (int, error) {
	answer, err := s.Driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   strconv.Itoa(current),
		Validator: validateCount,
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 0 {
		return current, nil
	}
	return n, nil
}

// askDate returns nil for a blank answer.
func (s *Session) askDate(ctx context.Context, message string, current *time.Time) (*time.Time, error) {
	var def string
	if current != nil {
		def = current.Format(booking.DateLayout)
	}
	answer, err := s.Driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   def,
		Validator: validateDate,
	})
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, nil
	}
	date, err := time.Parse(booking.DateLayout, answer)
	if err != nil {
		return current, nil
	}
	return &date, nil
}

func validateCount(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse(booking.DateLayout, value); err != nil {
		return fmt.Errorf("use the YYYY-MM-DD format")
	}
	return nil
}

func validateClock(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("use the HH:MM format")
	}
	return nil
}
