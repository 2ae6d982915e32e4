package widgets

import (
	"time"

	"github.com/goliatone/go-listing/pkg/model"
)

// Kind is the widget discriminator carried in the payload "type" field.
type Kind string

// Built-in widget kinds. The values are the wire vocabulary.
const (
	KindCategory Kind = "category"
	KindAdmob    Kind = "admob"
	KindSlider   Kind = "slider"
	KindListing  Kind = "listing"
	KindPost     Kind = "post"
	KindBanner   Kind = "banner"
)

// Direction is the scroll axis of list based widgets.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// Default layouts per widget kind when the payload omits "layout".
const (
	DefaultCategoryLayout = "iconCircle"
	DefaultListingLayout  = "grid"
	DefaultPostLayout     = "card"
	DefaultBannerLayout   = "basic"
	DefaultAdmobSize      = "banner"
	DefaultSliderInterval = 3 * time.Second
)

// Header carries the attributes every widget shares. Title and Description
// are already blank when the payload asked to hide them.
type Header struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WidgetHeader implements Widget for every type embedding Header.
func (h Header) WidgetHeader() Header { return h }

// Widget is implemented by every decoded widget variant. Switch on the
// concrete type to reach variant fields.
type Widget interface {
	WidgetHeader() Header
}

// CategoryWidget lists taxonomy terms. Layout is "<layout>-list" when the
// direction is vertical.
type CategoryWidget struct {
	Header
	Direction Direction        `json:"direction"`
	Layout    string           `json:"layout"`
	Items     []model.Category `json:"items"`
}

// ListingWidget lists listing items.
type ListingWidget struct {
	Header
	Direction Direction       `json:"direction"`
	Layout    string          `json:"layout"`
	Items     []model.Product `json:"items"`
}

// BlogWidget lists posts. Its wire kind is "post".
type BlogWidget struct {
	Header
	Direction Direction    `json:"direction"`
	Layout    string       `json:"layout"`
	Items     []model.Blog `json:"items"`
}

// BannerWidget shows static banners.
type BannerWidget struct {
	Header
	Layout string         `json:"layout"`
	Items  []model.Banner `json:"items"`
}

// SliderWidget rotates banners.
type SliderWidget struct {
	Header
	Autoplay bool           `json:"autoplay"`
	Interval time.Duration  `json:"interval"`
	Items    []model.Banner `json:"items"`
}

// AdmobWidget places an ad unit.
type AdmobWidget struct {
	Header
	AndroidUnitID string `json:"androidUnitId,omitempty"`
	IOSUnitID     string `json:"iosUnitId,omitempty"`
	Size          string `json:"size"`
}
