package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Filter holds the search criteria of the listing search screen. Create one
// with NewFilter, hand editors a Clone, and convert it with Params on search.
type Filter struct {
	Keyword    string
	Categories []Category
	Features   []Category
	Country    *Location
	State      *Location
	City       *Location
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Color      string
	Sort       *SortOption
	StartHour  string
	EndHour    string
	PerPage    int
	Page       int
}

// NewFilter returns a filter seeded from the setting baseline: full price
// range, opening hour window, page size and the first sort option.
func NewFilter(setting Setting) Filter {
	filter := Filter{
		MinPrice:  setting.MinPrice,
		MaxPrice:  setting.MaxPrice,
		StartHour: setting.StartHour,
		EndHour:   setting.EndHour,
		PerPage:   setting.PerPage,
		Page:      1,
	}
	if len(setting.SortOptions) > 0 {
		sort := setting.SortOptions[0]
		filter.Sort = &sort
	}
	if filter.PerPage <= 0 {
		filter.PerPage = DefaultPerPage
	}
	return filter
}

// Clone returns a copy whose selections can be edited without touching f.
func (f Filter) Clone() Filter {
	out := f
	out.Categories = slices.Clone(f.Categories)
	out.Features = slices.Clone(f.Features)
	out.Country = clonePtr(f.Country)
	out.State = clonePtr(f.State)
	out.City = clonePtr(f.City)
	out.Sort = clonePtr(f.Sort)
	return out
}

// Params converts the filter into search request parameters.
//
// Country, city and state all write the single "location" parameter, in that
// order, so when several are set the state wins, then the city.
func (f Filter) Params() map[string]any {
	params := map[string]any{
		"per_page": f.PerPage,
		"page":     f.Page,
	}
	if f.Keyword != "" {
		params["s"] = f.Keyword
	}
	if len(f.Categories) > 0 {
		params["category"] = categoryIDs(f.Categories)
	}
	if len(f.Features) > 0 {
		params["feature"] = categoryIDs(f.Features)
	}
	if f.Country != nil {
		params["location"] = f.Country.ID
	}
	if f.City != nil {
		params["location"] = f.City.ID
	}
	if f.State != nil {
		params["location"] = f.State.ID
	}
	if f.MaxPrice.IsPositive() {
		params["price_min"] = f.MinPrice.InexactFloat64()
		params["price_max"] = f.MaxPrice.InexactFloat64()
	}
	if f.Color != "" {
		params["color"] = f.Color
	}
	if f.Sort != nil {
		params["orderby"] = f.Sort.Field
		params["order"] = f.Sort.Value
	}
	if f.StartHour != "" {
		params["start_time"] = f.StartHour
	}
	if f.EndHour != "" {
		params["end_time"] = f.EndHour
	}
	return params
}

func categoryIDs(items []Category) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
