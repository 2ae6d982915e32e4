package config

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/goliatone/go-listing/pkg/model"
)

// DefaultName is the embedded baseline settings document.
const DefaultName = "default"

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// DefaultFS exposes the embedded settings documents.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		return defaultFiles
	}
	return sub
}

var defaults = sync.OnceValues(func() (*Store, error) {
	return LoadFS(DefaultFS(), nil)
})

// Defaults returns the store built from the embedded documents.
func Defaults() (*Store, error) {
	return defaults()
}

// DefaultSetting returns the embedded baseline, or the decoder's empty
// setting if the embedded document cannot be loaded.
func DefaultSetting() model.Setting {
	store, err := Defaults()
	if err == nil {
		if setting, ok := store.Setting(DefaultName); ok {
			return setting
		}
	}
	return model.DecodeSetting(nil)
}
