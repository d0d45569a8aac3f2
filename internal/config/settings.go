package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyTimeoutSeconds = "request_timeout_seconds"
	KeyLanguage       = "app_language"
	KeyConfirmDelete  = "confirm_before_delete"
)

// Default values
const (
	DefaultAPIBaseURL     = "http://localhost:8000"
	DefaultTimeoutSeconds = 15
	DefaultLanguage       = "system"
	DefaultConfirmDelete  = true

	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 120
)

// Env carries configuration read from the process environment. A .env file
// in the working directory is honored when present.
type Env struct {
	APIBaseURL     string `env:"FONTDECK_API_URL"`
	TimeoutSeconds int    `env:"FONTDECK_TIMEOUT_SECONDS"`
}

// LoadEnv loads .env if present (ignoring its absence) and parses the
// environment into an Env.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Settings manages application configuration, backed by Fyne preferences
// and seeded from the environment on first run.
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App, envCfg Env) *Settings {
	return &Settings{app: app, env: envCfg}
}

// GetAPIBaseURL returns the configured font-group server origin. Resolution
// order: saved preference, environment, built-in default. Whatever wins is
// written back so the settings dialog shows the effective value.
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		url = s.env.APIBaseURL
	}
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.SetAPIBaseURL(url)
	return url
}

// SetAPIBaseURL sets the font-group server origin.
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetRequestTimeout returns the per-request timeout.
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyTimeoutSeconds)
	if seconds == 0 {
		seconds = s.env.TimeoutSeconds
	}
	if seconds == 0 {
		seconds = DefaultTimeoutSeconds
	}
	s.SetRequestTimeoutSeconds(seconds)
	return time.Duration(s.app.Preferences().Int(KeyTimeoutSeconds)) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request timeout, clamped to a sane
// range.
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyTimeoutSeconds, seconds)
}

// GetLanguage returns the configured language.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language.
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDelete returns whether destructive actions ask for confirmation.
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether destructive actions ask for confirmation.
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetLanguageOptions returns available language options.
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
