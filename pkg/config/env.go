package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadEnv.
const (
	EnvLogLevel = "LISTING_LOG_LEVEL"
	EnvLocale   = "LISTING_LOCALE"
	EnvSettings = "LISTING_SETTINGS"
)

// Env is the process configuration of the CLI.
type Env struct {
	LogLevel string
	Locale   string
	// SettingsDir points at a directory of settings documents. Empty means
	// the embedded defaults.
	SettingsDir string
}

// LoadEnv reads .env style files, then the process environment. Missing files
// are ignored; variables already set in the environment win.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}
	return Env{
		LogLevel:    getEnv(EnvLogLevel, "info"),
		Locale:      getEnv(EnvLocale, "en"),
		SettingsDir: getEnv(EnvSettings, ""),
	}, nil
}

// Settings loads SettingsDir, or the embedded defaults when it is unset.
func (e Env) Settings() (*Store, error) {
	if e.SettingsDir == "" {
		return Defaults()
	}
	return LoadFS(os.DirFS(e.SettingsDir), nil)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
