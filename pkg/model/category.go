package model

import "github.com/goliatone/go-listing/pkg/coerce"

// Category is a listing taxonomy term (category or feature).
type Category struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
	Image    *Image `json:"image,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Taxonomy string `json:"taxonomy,omitempty"`
	HasChild bool   `json:"hasChild"`
	ParentID int    `json:"parentId,omitempty"`
}

// LocationType is the level of a location in the country → state → city
// hierarchy.
type LocationType string

const (
	LocationCountry LocationType = "country"
	LocationState   LocationType = "state"
	LocationCity    LocationType = "city"
)

// Location is a geographic taxonomy term.
type Location struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	Count    int          `json:"count"`
	Type     LocationType `json:"type,omitempty"`
	ParentID int          `json:"parentId,omitempty"`
}

// Category decodes a taxonomy term. term_id, id and ID are accepted as the
// identity.
func (d *Decoder) Category(raw Record) (Category, bool) {
	d = d.orDefault()
	return decode(d, "category", raw, d.decodeCategory)
}

// Categories decodes a list, dropping malformed terms.
func (d *Decoder) Categories(raw any) []Category {
	d = d.orDefault()
	return decodeList(d, "category", raw, d.decodeCategory)
}

// DecodeCategory decodes raw with the Default decoder.
func DecodeCategory(raw Record) (Category, bool) {
	return Default().Category(raw)
}

func (d *Decoder) decodeCategory(raw Record) (Category, error) {
	id, err := requireID(raw, "term_id", "id", "ID")
	if err != nil {
		return Category{}, err
	}
	return Category{
		ID:       id,
		Title:    text(raw, "name", "title"),
		Count:    coerce.IntOr(raw["count"], 0),
		Image:    d.imageOrURL("category.image", raw["image"]),
		Icon:     text(raw, "icon"),
		Color:    text(raw, "color"),
		Taxonomy: text(raw, "taxonomy"),
		HasChild: coerce.Bool(raw["has_child"]),
		ParentID: coerce.IntOr(raw["parent"], 0),
	}, nil
}

// Location decodes a location term.
func (d *Decoder) Location(raw Record) (Location, bool) {
	d = d.orDefault()
	return decode(d, "location", raw, d.decodeLocation)
}

// Locations decodes a list, dropping malformed terms.
func (d *Decoder) Locations(raw any) []Location {
	d = d.orDefault()
	return decodeList(d, "location", raw, d.decodeLocation)
}

// DecodeLocation decodes raw with the Default decoder.
func DecodeLocation(raw Record) (Location, bool) {
	return Default().Location(raw)
}

func (d *Decoder) decodeLocation(raw Record) (Location, error) {
	id, err := requireID(raw, "term_id", "id", "ID")
	if err != nil {
		return Location{}, err
	}
	return Location{
		ID:       id,
		Title:    text(raw, "name", "title"),
		Count:    coerce.IntOr(raw["count"], 0),
		Type:     coerce.Enum(raw["type"], []LocationType{LocationCountry, LocationState, LocationCity}, ""),
		ParentID: coerce.IntOr(raw["parent"], 0),
	}, nil
}
