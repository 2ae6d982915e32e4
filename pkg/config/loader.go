package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-listing/pkg/coerce"
	"github.com/goliatone/go-listing/pkg/model"
)

// ErrUnknownSetting is returned by Store.Require for names not loaded.
var ErrUnknownSetting = errors.New("config: unknown setting")

// Store holds decoded settings documents by name.
type Store struct {
	settings map[string]model.Setting
}

// LoadFS walks fsys and decodes every JSON or YAML settings document. A nil
// filesystem yields an empty store. dec may be nil to use model.Default.
func LoadFS(fsys fs.FS, dec *model.Decoder) (*Store, error) {
	store := &Store{settings: make(map[string]model.Setting)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSettingsFile(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", name, err)
		}
		raw, err := parseDocument(data, name)
		if err != nil {
			return err
		}

		key := settingName(name)
		if _, exists := store.settings[key]; exists {
			return fmt.Errorf("config: duplicate setting %q (file %s)", key, name)
		}
		store.settings[key] = dec.Setting(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Setting returns the document stored under name.
func (s *Store) Setting(name string) (model.Setting, bool) {
	if s == nil {
		return model.Setting{}, false
	}
	setting, ok := s.settings[name]
	return setting, ok
}

// Require is Setting with an error for missing names.
func (s *Store) Require(name string) (model.Setting, error) {
	setting, ok := s.Setting(name)
	if !ok {
		return model.Setting{}, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return setting, nil
}

// Names lists the loaded settings in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.settings))
	for name := range s.settings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Empty reports whether the store holds any settings.
func (s *Store) Empty() bool {
	return s == nil || len(s.settings) == 0
}

func parseDocument(data []byte, source string) (model.Record, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("config: file %s is empty", source)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = nil
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}

	raw, ok := coerce.Record(doc)
	if !ok {
		return nil, fmt.Errorf("config: %s: %w", source, model.ErrNotObject)
	}
	return raw, nil
}

func isSettingsFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func settingName(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
