package model

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/coerce"
)

// Setting defaults applied when the payload omits a value.
const (
	DefaultPerPage      = 20
	DefaultListMode     = "list"
	DefaultStartHour    = "08:00"
	DefaultEndHour      = "18:00"
	DefaultBookingStyle = "standard"
)

// SortOption is one entry of the sort menu.
type SortOption struct {
	Title string `json:"title"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Setting is the application wide configuration the server sends at startup.
// Filters are created from it.
type Setting struct {
	Categories   []Category      `json:"categories,omitempty"`
	Features     []Category      `json:"features,omitempty"`
	Locations    []Location      `json:"locations,omitempty"`
	MinPrice     decimal.Decimal `json:"minPrice"`
	MaxPrice     decimal.Decimal `json:"maxPrice"`
	Colors       []string        `json:"colors,omitempty"`
	SortOptions  []SortOption    `json:"sortOptions,omitempty"`
	PerPage      int             `json:"perPage"`
	ListMode     string          `json:"listMode"`
	StartHour    string          `json:"startHour"`
	EndHour      string          `json:"endHour"`
	BookingStyle string          `json:"bookingStyle"`
}

// Setting decodes the settings payload. It never reports absent: every field
// has a default.
func (d *Decoder) Setting(raw Record) Setting {
	d = d.orDefault()
	setting, ok := decode(d, "setting", raw, d.decodeSetting)
	if !ok {
		return d.emptySetting()
	}
	return setting
}

// DecodeSetting decodes raw with the Default decoder.
func DecodeSetting(raw Record) Setting {
	return Default().Setting(raw)
}

func (d *Decoder) emptySetting() Setting {
	setting, _ := d.decodeSetting(Record{})
	return setting
}

func (d *Decoder) decodeSetting(raw Record) (Setting, error) {
	setting := Setting{
		Categories:   decodeList(d, "setting.category", raw["categories"], d.decodeCategory),
		Features:     decodeList(d, "setting.feature", raw["features"], d.decodeCategory),
		Locations:    decodeList(d, "setting.location", raw["locations"], d.decodeLocation),
		MinPrice:     money(raw["min_price"]),
		MaxPrice:     money(raw["max_price"]),
		SortOptions:  decodeList(d, "setting.sort", raw["sort"], decodeSortOption),
		PerPage:      coerce.IntOr(raw["per_page"], DefaultPerPage),
		ListMode:     orDefault(text(raw, "list_mode"), DefaultListMode),
		StartHour:    orDefault(clock(raw["start_hour"]), DefaultStartHour),
		EndHour:      orDefault(clock(raw["end_hour"]), DefaultEndHour),
		BookingStyle: orDefault(text(raw, "booking_style"), DefaultBookingStyle),
	}
	for _, color := range coerce.List(raw["color"]) {
		if value := strings.TrimSpace(coerce.String(color)); value != "" {
			setting.Colors = append(setting.Colors, value)
		}
	}
	if setting.PerPage <= 0 {
		setting.PerPage = DefaultPerPage
	}
	return setting, nil
}

func decodeSortOption(raw Record) (SortOption, error) {
	field := text(raw, "field")
	if field == "" {
		return SortOption{}, ErrMissingField
	}
	return SortOption{
		Title: text(raw, "lang_key", "title"),
		Field: field,
		Value: text(raw, "value"),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
