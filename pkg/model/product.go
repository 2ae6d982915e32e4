package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/coerce"
)

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Product is a listing item as returned by list, detail and widget payloads.
type Product struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Image        *Image          `json:"image,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	Features     []Category      `json:"features,omitempty"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
	Status       string          `json:"status,omitempty"`
	Favorite     bool            `json:"favorite"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	Website      string          `json:"website,omitempty"`
	Excerpt      string          `json:"excerpt,omitempty"`
	Rate         float64         `json:"rate"`
	NumRate      int             `json:"numRate"`
	PriceMin     decimal.Decimal `json:"priceMin"`
	PriceMax     decimal.Decimal `json:"priceMax"`
	BookingPrice decimal.Decimal `json:"bookingPrice"`
	BookingStyle string          `json:"bookingStyle,omitempty"`
	Location     *GeoPoint       `json:"location,omitempty"`
	Galleries    []Image         `json:"galleries,omitempty"`
	OpenHours    []OpenTime      `json:"openHours,omitempty"`
	Author       *User           `json:"author,omitempty"`
}

// Product decodes a listing item. ID or id is required.
func (d *Decoder) Product(raw Record) (Product, bool) {
	d = d.orDefault()
	return decode(d, "product", raw, d.decodeProduct)
}

// Products decodes a list, dropping malformed items.
func (d *Decoder) Products(raw any) []Product {
	d = d.orDefault()
	return decodeList(d, "product", raw, d.decodeProduct)
}

// DecodeProduct decodes raw with the Default decoder.
func DecodeProduct(raw Record) (Product, bool) {
	return Default().Product(raw)
}

func (d *Decoder) decodeProduct(raw Record) (Product, error) {
	id, err := requireID(raw, "ID", "id")
	if err != nil {
		return Product{}, err
	}
	item := Product{
		ID:           id,
		Title:        text(raw, "post_title", "title"),
		Image:        d.imageOrURL("product.image", raw["image"]),
		Category:     decodeOptional(d, "product.category", raw["category"], d.decodeCategory),
		Features:     decodeList(d, "product.feature", raw["features"], d.decodeCategory),
		Status:       text(raw, "post_status", "status"),
		Favorite:     coerce.Bool(raw["wishlist"]),
		Address:      text(raw, "address"),
		Phone:        text(raw, "phone"),
		Email:        text(raw, "email"),
		Website:      text(raw, "website"),
		Excerpt:      d.sanitize(coerce.String(coerce.First(raw, "post_excerpt", "excerpt"))),
		Rate:         coerce.NumberOr(raw["rating_avg"], 0),
		NumRate:      coerce.IntOr(raw["rating_count"], 0),
		PriceMin:     money(raw["price_min"]),
		PriceMax:     money(raw["price_max"]),
		BookingPrice: money(raw["booking_price"]),
		BookingStyle: text(raw, "booking_style"),
		Galleries:    decodeList(d, "product.gallery", raw["galleries"], d.decodeImage),
		OpenHours:    decodeList(d, "product.open_time", raw["opening_hour"], d.decodeOpenTime),
		Author:       decodeOptional(d, "product.author", raw["author"], d.decodeUser),
	}
	if ts, ok := coerce.DateOr(raw["post_date"]); ok {
		item.CreatedAt = &ts
	}
	lat, latOK := coerce.Decimal(raw["latitude"])
	lng, lngOK := coerce.Decimal(raw["longitude"])
	if latOK && lngOK {
		item.Location = &GeoPoint{Lat: lat.InexactFloat64(), Lng: lng.InexactFloat64()}
	}
	return item, nil
}

func money(v any) decimal.Decimal {
	d, ok := coerce.Decimal(v)
	if !ok {
		return decimal.Zero
	}
	return d
}
