package widgets

import (
	"time"

	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/model"
)

var directions = []Direction{DirectionHorizontal, DirectionVertical}

func (r *Registry) registerBuiltins() {
	builtins := map[Kind]DecodeFunc{
		KindCategory: decodeCategoryWidget,
		KindListing:  decodeListingWidget,
		KindPost:     decodeBlogWidget,
		KindBanner:   decodeBannerWidget,
		KindSlider:   decodeSliderWidget,
		KindAdmob:    decodeAdmobWidget,
	}
	for kind, fn := range builtins {
		_ = r.Register(kind, fn)
	}
}

func direction(raw model.Record) Direction {
	return coerce.Enum(raw["direction"], directions, DirectionHorizontal)
}

func layout(raw model.Record, fallback string) string {
	if value := field(raw, "layout"); value != "" {
		return value
	}
	return fallback
}

func decodeCategoryWidget(dec *model.Decoder, raw model.Record, header Header) (Widget, error) {
	w := CategoryWidget{
		Header:    header,
		Direction: direction(raw),
		Layout:    layout(raw, DefaultCategoryLayout),
		Items:     dec.Categories(raw["data"]),
	}
	if w.Direction == DirectionVertical {
		w.Layout += "-list"
	}
	return w, nil
}

func decodeListingWidget(dec *model.Decoder, raw model.Record, header Header) (Widget, error) {
	return ListingWidget{
		Header:    header,
		Direction: direction(raw),
		Layout:    layout(raw, DefaultListingLayout),
		Items:     dec.Products(raw["data"]),
	}, nil
}

func decodeBlogWidget(dec *model.Decoder, raw model.Record, header Header) (Widget, error) {
	return BlogWidget{
		Header:    header,
		Direction: direction(raw),
		Layout:    layout(raw, DefaultPostLayout),
		Items:     dec.Blogs(raw["data"]),
	}, nil
}

func decodeBannerWidget(dec *model.Decoder, raw model.Record, header Header) (Widget, error) {
	return BannerWidget{
		Header: header,
		Layout: layout(raw, DefaultBannerLayout),
		Items:  dec.Banners(raw["data"]),
	}, nil
}

func decodeSliderWidget(dec *model.Decoder, raw model.Record, header Header) (Widget, error) {
	interval := DefaultSliderInterval
	if secs := coerce.NumberOr(raw["timeout"], 0); secs > 0 {
		interval = time.Duration(secs * float64(time.Second))
	}
	return SliderWidget{
		Header:   header,
		Autoplay: coerce.Bool(raw["autoplay"]),
		Interval: interval,
		Items:    dec.Banners(raw["data"]),
	}, nil
}

func decodeAdmobWidget(_ *model.Decoder, raw model.Record, header Header) (Widget, error) {
	size := field(raw, "size")
	if size == "" {
		size = DefaultAdmobSize
	}
	return AdmobWidget{
		Header:        header,
		AndroidUnitID: field(raw, "android"),
		IOSUnitID:     field(raw, "ios"),
		Size:          size,
	}, nil
}
