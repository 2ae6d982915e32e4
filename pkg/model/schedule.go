package model

import (
	"errors"
	"strings"

	"github.com/goliatone/go-listing/pkg/coerce"
)

// ErrEmptySchedule reports a schedule carrying neither start nor end.
var ErrEmptySchedule = errors.New("schedule has no start or end")

// Schedule is a time-of-day range. View, when set, overrides the computed
// range in Title (e.g. "All day").
type Schedule struct {
	View  string `json:"view,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Title returns View, or "start - end" when no override is present.
func (s Schedule) Title() string {
	if s.View != "" {
		return s.View
	}
	return s.Start + " - " + s.End
}

// OpenTime groups the schedules of one weekday.
type OpenTime struct {
	DayOfWeek int        `json:"dayOfWeek"`
	Key       string     `json:"key"`
	Schedules []Schedule `json:"schedules,omitempty"`
}

// Schedule decodes {start, end, format}. The server sends midnight as "0";
// it is normalised to "00:00".
func (d *Decoder) Schedule(raw Record) (Schedule, bool) {
	d = d.orDefault()
	return decode(d, "schedule", raw, decodeSchedule)
}

// Schedules decodes a list, dropping malformed entries.
func (d *Decoder) Schedules(raw any) []Schedule {
	d = d.orDefault()
	return decodeList(d, "schedule", raw, decodeSchedule)
}

// DecodeSchedule decodes raw with the Default decoder.
func DecodeSchedule(raw Record) (Schedule, bool) {
	return Default().Schedule(raw)
}

func decodeSchedule(raw Record) (Schedule, error) {
	start := clock(raw["start"])
	end := clock(raw["end"])
	if start == "" && end == "" {
		return Schedule{}, ErrEmptySchedule
	}
	return Schedule{
		View:  text(raw, "format", "view"),
		Start: start,
		End:   end,
	}, nil
}

// OpenTime decodes one weekday of opening hours.
func (d *Decoder) OpenTime(raw Record) (OpenTime, bool) {
	d = d.orDefault()
	return decode(d, "open_time", raw, d.decodeOpenTime)
}

// DecodeOpenTime decodes raw with the Default decoder.
func DecodeOpenTime(raw Record) (OpenTime, bool) {
	return Default().OpenTime(raw)
}

func (d *Decoder) decodeOpenTime(raw Record) (OpenTime, error) {
	key := text(raw, "key")
	day := coerce.IntOr(raw["day_of_week"], -1)
	if key == "" && day < 0 {
		return OpenTime{}, ErrMissingField
	}
	return OpenTime{
		DayOfWeek: day,
		Key:       key,
		Schedules: decodeList(d, "schedule", raw["schedule"], decodeSchedule),
	}, nil
}

func clock(v any) string {
	value := strings.TrimSpace(coerce.String(v))
	if value == "0" {
		return "00:00"
	}
	return value
}
