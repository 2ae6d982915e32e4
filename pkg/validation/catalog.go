package validation

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when the requested locale has no entry for a code.
const DefaultLocale = "en"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var (
	// ErrMissingTranslator is passed to MissingHandler when Message runs
	// without a Translator.
	ErrMissingTranslator = errors.New("validation: translator is not configured")
	// ErrMissingMessage reports a key with no entry in any candidate locale.
	ErrMissingMessage = errors.New("validation: message not found")
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingHandler decides what to show when no translation is found. The
// default returns the key itself so the UI never renders an empty string.
type MissingHandler func(locale, key string, err error) string

// Catalog is an in-memory Translator keyed by locale then message key.
type Catalog struct {
	messages map[string]map[string]string
}

// NewCatalog builds a catalog from locale → key → message maps. Locale names
// are lowercased.
func NewCatalog(messages map[string]map[string]string) *Catalog {
	c := &Catalog{messages: make(map[string]map[string]string, len(messages))}
	for locale, entries := range messages {
		c.add(locale, entries)
	}
	return c
}

// LoadCatalogFS reads every *.yaml / *.yml file in fsys. The file base name is
// the locale ("en.yaml" → "en").
func LoadCatalogFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string)}
	if fsys == nil {
		return c, nil
	}
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("validation: read %s: %w", p, err)
		}
		var entries map[string]string
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("validation: parse %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), path.Ext(p))
		c.add(locale, entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the bundled English and Vietnamese messages.
func DefaultCatalog() *Catalog {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	c, err := LoadCatalogFS(sub)
	if err != nil {
		// Bundled files are validated by tests.
		panic(err)
	}
	return c
}

// Locales lists the loaded locales, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translate looks key up in locale, then in the base language of locale
// ("vi-VN" → "vi"), then in DefaultLocale.
func (c *Catalog) Translate(locale, key string, _ ...any) (string, error) {
	if c == nil {
		return "", ErrMissingMessage
	}
	for _, candidate := range localeChain(locale) {
		if msg := strings.TrimSpace(c.messages[candidate][key]); msg != "" {
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingMessage, key, locale)
}

func (c *Catalog) add(locale string, entries map[string]string) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	dest := c.messages[locale]
	if dest == nil {
		dest = make(map[string]string, len(entries))
		c.messages[locale] = dest
	}
	for key, msg := range entries {
		dest[strings.TrimSpace(key)] = msg
	}
}

// Message renders code for locale. A nil translator or a lookup failure goes
// through onMissing; a nil onMissing returns the code itself.
func Message(locale string, code Code, t Translator, onMissing MissingHandler) string {
	key := strings.TrimSpace(string(code))
	if key == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = missingDefault
	}
	if t == nil {
		return onMissing(locale, key, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(msg) != "" {
		return msg
	}
	if err == nil {
		err = ErrMissingMessage
	}
	return onMissing(locale, key, err)
}

func missingDefault(_ string, key string, _ error) string {
	return key
}

func localeChain(locale string) []string {
	locale = normalizeLocale(locale)
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if idx := strings.IndexAny(locale, "-_"); idx > 0 {
			chain = append(chain, locale[:idx])
		}
	}
	if locale != DefaultLocale {
		chain = append(chain, DefaultLocale)
	}
	return chain
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
