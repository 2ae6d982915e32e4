package config

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/model"
)

func TestLoadFS_JSONAndYAML(t *testing.T) {
	recorder := &diagnostics.Recorder{}
	store, err := LoadFS(os.DirFS("testdata/settings"), model.NewDecoder(model.WithSink(recorder)))
	require.NoError(t, err)

	assert.Equal(t, []string{"hotel", "shop"}, store.Names())

	shop, ok := store.Setting("shop")
	require.True(t, ok)
	assert.Equal(t, 12, shop.PerPage)
	assert.Equal(t, "grid", shop.ListMode)
	assert.Equal(t, "table", shop.BookingStyle)
	assert.Equal(t, "250.5", shop.MaxPrice.String())
	require.Len(t, shop.Categories, 1)
	assert.Equal(t, "Restaurants", shop.Categories[0].Title)
	require.Len(t, shop.Locations, 1)

	hotel, err := store.Require("hotel")
	require.NoError(t, err)
	assert.Equal(t, 30, hotel.PerPage)
	assert.Equal(t, "daily", hotel.BookingStyle)
	assert.Equal(t, "00:00", hotel.StartHour)
	assert.Equal(t, "22:00", hotel.EndHour)
	require.Len(t, hotel.Features, 1)
	assert.Equal(t, 11, hotel.Features[0].ID)

	assert.Equal(t, []string{"setting.category"}, recorder.Entities())
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty":      {"a.json": {Data: []byte("  ")}},
		"invalid":    {"a.yaml": {Data: []byte("not: [valid")}},
		"not object": {"a.json": {Data: []byte(`[1, 2]`)}},
		"duplicate":  {
			"one/a.json": {Data: []byte(`{}`)},
			"two/a.yaml": {Data: []byte(`per_page: 3`)},
		},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFS(fsys, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadFS_NilAndIgnoredFiles(t *testing.T) {
	store, err := LoadFS(nil, nil)
	require.NoError(t, err)
	assert.True(t, store.Empty())

	store, err = LoadFS(fstest.MapFS{"README.md": {Data: []byte("# notes")}}, nil)
	require.NoError(t, err)
	assert.True(t, store.Empty())

	_, err = store.Require("missing")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestDefaults(t *testing.T) {
	store, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultName}, store.Names())

	setting := DefaultSetting()
	assert.Equal(t, model.DefaultPerPage, setting.PerPage)
	assert.Equal(t, model.DefaultListMode, setting.ListMode)
	assert.Len(t, setting.SortOptions, 3)
	assert.Len(t, setting.Colors, 3)
}
