package model_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/model"
	"github.com/goliatone/go-listing/pkg/testsupport"
)

func newDecoder() (*model.Decoder, *diagnostics.Recorder) {
	rec := &diagnostics.Recorder{}
	return model.NewDecoder(model.WithSink(rec)), rec
}

func TestDecoder_ProductFixture(t *testing.T) {
	dec, rec := newDecoder()
	raw := testsupport.MustLoadRecord(t, filepath.Join("testdata", "product.json"))

	item, ok := dec.Product(raw)
	if !ok {
		t.Fatalf("expected product to decode")
	}

	if item.ID != 42 || item.Title != "Cafe Luna" {
		t.Fatalf("identity mismatch: %d %q", item.ID, item.Title)
	}
	if item.Excerpt != "Best coffee & cake" {
		t.Fatalf("excerpt not sanitised: %q", item.Excerpt)
	}
	if !item.Favorite || item.Rate != 4.5 || item.NumRate != 18 {
		t.Fatalf("flags/rating mismatch: %+v", item)
	}
	if !item.PriceMin.Equal(decimal.RequireFromString("10.5")) || !item.PriceMax.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("price mismatch: %s %s", item.PriceMin, item.PriceMax)
	}
	if item.CreatedAt == nil || !item.CreatedAt.Equal(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("created at mismatch: %v", item.CreatedAt)
	}
	if item.Location == nil || item.Location.Lat != 10.7769 {
		t.Fatalf("location mismatch: %+v", item.Location)
	}

	wantGalleries := []model.Image{
		{ID: 11, Full: "https://cdn.example.com/g1.jpg", Thumb: "https://cdn.example.com/g1.jpg"},
		{ID: 12, Full: "https://cdn.example.com/g2.jpg", Thumb: "https://cdn.example.com/g2.jpg"},
	}
	if diff := cmp.Diff(wantGalleries, item.Galleries); diff != "" {
		t.Fatalf("galleries mismatch (-want +got):\n%s", diff)
	}

	wantHours := []model.OpenTime{
		{DayOfWeek: 1, Key: "mon", Schedules: []model.Schedule{{Start: "00:00", End: "12:00"}}},
		{DayOfWeek: 2, Key: "tue", Schedules: []model.Schedule{{View: "All day", Start: "08:00", End: "18:00"}}},
	}
	if diff := cmp.Diff(wantHours, item.OpenHours); diff != "" {
		t.Fatalf("open hours mismatch (-want +got):\n%s", diff)
	}

	if item.Category == nil || item.Category.ID != 3 || item.Category.Title != "Cafe" {
		t.Fatalf("category mismatch: %+v", item.Category)
	}
	if len(item.Features) != 1 || item.Features[0].Title != "Wifi" {
		t.Fatalf("features mismatch: %+v", item.Features)
	}
	if item.Author == nil || item.Author.Name != "Ana" || item.Author.Image != "https://cdn.example.com/ana.png" {
		t.Fatalf("author mismatch: %+v", item.Author)
	}

	wantDropped := []string{"product.feature", "product.gallery", "product.gallery", "schedule"}
	if diff := cmp.Diff(wantDropped, rec.Entities()); diff != "" {
		t.Fatalf("reported entities mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_MissingIdentityIsAbsent(t *testing.T) {
	dec, rec := newDecoder()

	cases := []struct {
		name   string
		decode func() bool
	}{
		{name: "product", decode: func() bool { _, ok := dec.Product(model.Record{"title": "x"}); return ok }},
		{name: "category", decode: func() bool { _, ok := dec.Category(model.Record{"name": "x"}); return ok }},
		{name: "location", decode: func() bool { _, ok := dec.Location(model.Record{"name": "x"}); return ok }},
		{name: "blog", decode: func() bool { _, ok := dec.Blog(model.Record{"post_title": "x"}); return ok }},
		{name: "banner", decode: func() bool { _, ok := dec.Banner(model.Record{"image": "x"}); return ok }},
		{name: "image", decode: func() bool { _, ok := dec.Image(model.Record{"url": "x"}); return ok }},
		{name: "user", decode: func() bool { _, ok := dec.User(model.Record{"name": "x"}); return ok }},
	}
	for _, tc := range cases {
		if tc.decode() {
			t.Fatalf("%s: expected absent result for payload without id", tc.name)
		}
	}

	reports := rec.Reports()
	if len(reports) != len(cases) {
		t.Fatalf("expected %d reports, got %d", len(cases), len(reports))
	}
	for _, report := range reports {
		if !errors.Is(report.Err, model.ErrMissingID) {
			t.Fatalf("%s: expected ErrMissingID, got %v", report.Entity, report.Err)
		}
	}
}

func TestDecoder_NilRecordIsAbsent(t *testing.T) {
	dec, rec := newDecoder()
	if _, ok := dec.Category(nil); ok {
		t.Fatalf("nil record should be absent")
	}
	if got := rec.Reports(); len(got) != 1 || !errors.Is(got[0].Err, model.ErrNotObject) {
		t.Fatalf("expected one ErrNotObject report, got %+v", got)
	}
}

func TestDecoder_DisplayFieldsDefaultToEmpty(t *testing.T) {
	dec, _ := newDecoder()
	cat, ok := dec.Category(model.Record{"term_id": 4, "name": nil, "icon": nil})
	if !ok {
		t.Fatalf("expected category")
	}
	want := model.Category{ID: 4}
	if diff := cmp.Diff(want, cat); diff != "" {
		t.Fatalf("category mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_BannerAcceptsImageURL(t *testing.T) {
	banner, ok := model.NewDecoder(model.WithSink(diagnostics.Discard)).Banner(model.Record{
		"id":    float64(1),
		"image": "https://cdn.example.com/b.png",
		"link":  "https://example.com/promo",
	})
	if !ok {
		t.Fatalf("expected banner")
	}
	want := model.Banner{
		ID:    1,
		Image: &model.Image{Full: "https://cdn.example.com/b.png", Thumb: "https://cdn.example.com/b.png"},
		URL:   "https://example.com/promo",
	}
	if diff := cmp.Diff(want, banner); diff != "" {
		t.Fatalf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_BlogStripsMarkup(t *testing.T) {
	dec, _ := newDecoder()
	post, ok := dec.Blog(model.Record{
		"ID":           "9",
		"post_title":   "Weekend <em>picks</em>",
		"post_excerpt": "<script>alert(1)</script><p>Five places &amp; more</p>",
		"post_date":    "2024-02-10",
	})
	if !ok {
		t.Fatalf("expected blog")
	}
	if post.Title != "Weekend picks" {
		t.Fatalf("title not stripped: %q", post.Title)
	}
	if post.Excerpt != "Five places & more" {
		t.Fatalf("excerpt not stripped: %q", post.Excerpt)
	}
	if post.Date == nil || post.Date.Day() != 10 {
		t.Fatalf("date mismatch: %v", post.Date)
	}
}

func TestDecoder_NilDecoderUsesDefault(t *testing.T) {
	var dec *model.Decoder
	if _, ok := dec.Category(model.Record{"id": 1}); !ok {
		t.Fatalf("nil decoder should fall back to the default decoder")
	}
}
