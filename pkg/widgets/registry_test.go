package widgets_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/model"
	"github.com/goliatone/go-listing/pkg/testsupport"
	"github.com/goliatone/go-listing/pkg/widgets"
)

func newRegistry() (*widgets.Registry, *diagnostics.Recorder) {
	rec := &diagnostics.Recorder{}
	reg := widgets.NewRegistry(
		widgets.WithDecoder(model.NewDecoder(model.WithSink(rec))),
		widgets.WithSink(rec),
	)
	return reg, rec
}

func TestDecode_KindDispatch(t *testing.T) {
	reg, _ := newRegistry()

	cases := []struct {
		typ  any
		want widgets.Kind
	}{
		{typ: "category", want: widgets.KindCategory},
		{typ: "admob", want: widgets.KindAdmob},
		{typ: "slider", want: widgets.KindSlider},
		{typ: "listing", want: widgets.KindListing},
		{typ: "post", want: widgets.KindPost},
		{typ: "banner", want: widgets.KindBanner},
		{typ: "blog", want: widgets.KindCategory},
		{typ: "", want: widgets.KindCategory},
		{typ: nil, want: widgets.KindCategory},
		{typ: float64(3), want: widgets.KindCategory},
	}
	for _, tc := range cases {
		widget, ok := reg.Decode(model.Record{"type": tc.typ})
		if !ok {
			t.Fatalf("type %#v: expected widget", tc.typ)
		}
		if got := widget.WidgetHeader().Kind; got != tc.want {
			t.Fatalf("type %#v: want kind %q, got %q", tc.typ, tc.want, got)
		}
	}
}

func TestDecode_ListingExample(t *testing.T) {
	reg, rec := newRegistry()

	widget, ok := reg.Decode(model.Record{
		"type":        "listing",
		"title":       "Near you",
		"hide_desc":   true,
		"description": "desc",
		"direction":   "horizontal",
		"layout":      "list",
		"data":        []any{map[string]any{"id": float64(1), "title": "Cafe"}, map[string]any{}},
	})
	if !ok {
		t.Fatalf("expected listing widget")
	}
	listing, isListing := widget.(widgets.ListingWidget)
	if !isListing {
		t.Fatalf("expected ListingWidget, got %T", widget)
	}

	wantHeader := widgets.Header{Kind: widgets.KindListing, Title: "Near you"}
	if diff := cmp.Diff(wantHeader, listing.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if listing.Direction != widgets.DirectionHorizontal || listing.Layout != "list" {
		t.Fatalf("layout mismatch: %q %q", listing.Direction, listing.Layout)
	}
	if len(listing.Items) != 1 || listing.Items[0].ID != 1 {
		t.Fatalf("expected the malformed item to be dropped, got %+v", listing.Items)
	}
	if diff := cmp.Diff([]string{"product"}, rec.Entities()); diff != "" {
		t.Fatalf("reports mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_HideTitleWins(t *testing.T) {
	reg, _ := newRegistry()
	for _, flag := range []any{true, "true", "1", float64(1)} {
		widget, ok := reg.Decode(model.Record{"type": "banner", "title": "Visible?", "description": "kept", "hide_title": flag})
		if !ok {
			t.Fatalf("expected widget")
		}
		header := widget.WidgetHeader()
		if header.Title != "" || header.Description != "kept" {
			t.Fatalf("hide_title=%#v: unexpected header %+v", flag, header)
		}
	}
}

func TestDecode_CategoryLayouts(t *testing.T) {
	reg, _ := newRegistry()

	cases := []struct {
		name      string
		raw       model.Record
		direction widgets.Direction
		layout    string
	}{
		{
			name:      "vertical icon circle",
			raw:       model.Record{"type": "category", "direction": "vertical", "layout": "iconCircle"},
			direction: widgets.DirectionVertical,
			layout:    "iconCircle-list",
		},
		{
			name:      "horizontal keeps layout",
			raw:       model.Record{"type": "category", "direction": "horizontal", "layout": "iconSquare"},
			direction: widgets.DirectionHorizontal,
			layout:    "iconSquare",
		},
		{
			name:      "defaults",
			raw:       model.Record{"type": "category"},
			direction: widgets.DirectionHorizontal,
			layout:    widgets.DefaultCategoryLayout,
		},
		{
			name:      "vertical default layout",
			raw:       model.Record{"type": "category", "direction": "vertical"},
			direction: widgets.DirectionVertical,
			layout:    widgets.DefaultCategoryLayout + "-list",
		},
		{
			name:      "unknown direction falls back",
			raw:       model.Record{"type": "category", "direction": "diagonal", "layout": "round"},
			direction: widgets.DirectionHorizontal,
			layout:    "round",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			widget, ok := reg.Decode(tc.raw)
			if !ok {
				t.Fatalf("expected widget")
			}
			cat := widget.(widgets.CategoryWidget)
			if cat.Direction != tc.direction || cat.Layout != tc.layout {
				t.Fatalf("want %q/%q, got %q/%q", tc.direction, tc.layout, cat.Direction, cat.Layout)
			}
		})
	}
}

func TestDecodeAll_HomeFixture(t *testing.T) {
	reg, rec := newRegistry()
	raw := testsupport.MustLoadList(t, filepath.Join("testdata", "home.json"))

	decoded := reg.DecodeAll(raw)

	kinds := make([]widgets.Kind, len(decoded))
	for i, widget := range decoded {
		kinds[i] = widget.WidgetHeader().Kind
	}
	wantKinds := []widgets.Kind{
		widgets.KindListing,
		widgets.KindCategory,
		widgets.KindPost,
		widgets.KindSlider,
		widgets.KindAdmob,
		widgets.KindBanner,
		widgets.KindCategory,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}

	post := decoded[2].(widgets.BlogWidget)
	if post.Title != "" || post.Layout != widgets.DefaultPostLayout || len(post.Items) != 1 {
		t.Fatalf("post widget mismatch: %+v", post)
	}

	slider := decoded[3].(widgets.SliderWidget)
	if !slider.Autoplay || slider.Interval != 5*time.Second || len(slider.Items) != 1 {
		t.Fatalf("slider mismatch: %+v", slider)
	}

	wantAdmob := widgets.AdmobWidget{
		Header:        widgets.Header{Kind: widgets.KindAdmob},
		AndroidUnitID: "ca-app-pub-1/1",
		IOSUnitID:     "ca-app-pub-1/2",
		Size:          widgets.DefaultAdmobSize,
	}
	if diff := cmp.Diff(wantAdmob, decoded[4]); diff != "" {
		t.Fatalf("admob mismatch (-want +got):\n%s", diff)
	}

	fallback := decoded[6].(widgets.CategoryWidget)
	if fallback.Title != "Unknown" || len(fallback.Items) != 0 {
		t.Fatalf("fallback widget mismatch: %+v", fallback)
	}

	if diff := cmp.Diff([]string{"product", "widget"}, rec.Entities()); diff != "" {
		t.Fatalf("reports mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_CustomKindAndErrors(t *testing.T) {
	reg, rec := newRegistry()

	type videoWidget struct {
		widgets.Header
		URL string
	}
	err := reg.Register("video", func(_ *model.Decoder, raw model.Record, header widgets.Header) (widgets.Widget, error) {
		url, _ := raw["url"].(string)
		if url == "" {
			return nil, errors.New("url is required")
		}
		return videoWidget{Header: header, URL: url}, nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !reg.Has("video") {
		t.Fatalf("expected video kind to be registered")
	}

	widget, ok := reg.Decode(model.Record{"type": "video", "url": "https://example.com/v.mp4"})
	if !ok || widget.(videoWidget).URL != "https://example.com/v.mp4" {
		t.Fatalf("custom widget mismatch: %#v (ok=%v)", widget, ok)
	}

	if _, ok := reg.Decode(model.Record{"type": "video"}); ok {
		t.Fatalf("expected absent widget when the custom decoder fails")
	}
	if diff := cmp.Diff([]string{"widget.video"}, rec.Entities()); diff != "" {
		t.Fatalf("reports mismatch (-want +got):\n%s", diff)
	}

	if err := reg.Register(" ", nil); err == nil {
		t.Fatalf("expected error for empty kind")
	}
	if err := reg.Register("nil-fn", nil); err == nil {
		t.Fatalf("expected error for nil decoder")
	}
}

func TestDecode_RecoversFromPanics(t *testing.T) {
	reg, rec := newRegistry()
	_ = reg.Register("explode", func(*model.Decoder, model.Record, widgets.Header) (widgets.Widget, error) {
		panic("boom")
	})
	if _, ok := reg.Decode(model.Record{"type": "explode"}); ok {
		t.Fatalf("expected absent widget after panic")
	}
	if len(rec.Reports()) != 1 {
		t.Fatalf("expected the panic to be reported")
	}
}

func TestKinds_Builtins(t *testing.T) {
	reg, _ := newRegistry()
	want := []widgets.Kind{"admob", "banner", "category", "listing", "post", "slider"}
	if diff := cmp.Diff(want, reg.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestWithFallback(t *testing.T) {
	reg := widgets.NewRegistry(widgets.WithFallback(widgets.KindBanner), widgets.WithSink(diagnostics.Discard))
	widget, ok := reg.Decode(model.Record{"type": "mystery"})
	if !ok {
		t.Fatalf("expected widget")
	}
	if _, isBanner := widget.(widgets.BannerWidget); !isBanner {
		t.Fatalf("expected banner fallback, got %T", widget)
	}
}

func TestDecodeAll_Concurrent(t *testing.T) {
	reg, _ := newRegistry()
	raw := testsupport.MustLoadList(t, filepath.Join("testdata", "home.json"))

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = len(reg.DecodeAll(raw))
		}(i)
	}
	wg.Wait()

	for i, n := range results {
		if n != 7 {
			t.Fatalf("goroutine %d decoded %d widgets, want 7", i, n)
		}
	}
}
