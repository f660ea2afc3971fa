package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyListingURL     = "listing_url"
	KeyLiveDir        = "live_directory"
	KeySatellitesDir  = "satellites_directory"
	KeyWebifURL       = "webif_url"
	KeyLanguage       = "app_language"
	KeyConfirmInstall = "confirm_before_install"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultConfirmInstall = true
)

// Settings manages user preferences stored by the GUI
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetListingURL returns the configured listing URL, empty if unset
func (s *Settings) GetListingURL() string {
	return s.app.Preferences().String(KeyListingURL)
}

// SetListingURL sets the listing URL; an empty value clears the override
func (s *Settings) SetListingURL(url string) {
	s.app.Preferences().SetString(KeyListingURL, url)
}

// GetLiveDirectory returns the configured live directory, empty if unset
func (s *Settings) GetLiveDirectory() string {
	return s.app.Preferences().String(KeyLiveDir)
}

// SetLiveDirectory sets the live directory
func (s *Settings) SetLiveDirectory(dir string) {
	s.app.Preferences().SetString(KeyLiveDir, dir)
}

// GetSatellitesDirectory returns the configured satellites directory, empty if unset
func (s *Settings) GetSatellitesDirectory() string {
	return s.app.Preferences().String(KeySatellitesDir)
}

// SetSatellitesDirectory sets the satellites directory
func (s *Settings) SetSatellitesDirectory(dir string) {
	s.app.Preferences().SetString(KeySatellitesDir, dir)
}

// GetWebifURL returns the configured OpenWebif base URL, empty if unset
func (s *Settings) GetWebifURL() string {
	return s.app.Preferences().String(KeyWebifURL)
}

// SetWebifURL sets the OpenWebif base URL
func (s *Settings) SetWebifURL(url string) {
	s.app.Preferences().SetString(KeyWebifURL, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmBeforeInstall returns whether install asks for confirmation
func (s *Settings) GetConfirmBeforeInstall() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmInstall, DefaultConfirmInstall)
}

// SetConfirmBeforeInstall sets whether install asks for confirmation
func (s *Settings) SetConfirmBeforeInstall(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmInstall, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"sr":     "Srpski",
	}
}

// Apply overlays stored preferences onto cfg. Unset preferences keep cfg values.
func (s *Settings) Apply(cfg *Config) {
	if v := s.GetListingURL(); v != "" {
		cfg.Remote.ListingURL = v
	}
	if v := s.GetLiveDirectory(); v != "" {
		cfg.Paths.LiveDir = v
	}
	if v := s.GetSatellitesDirectory(); v != "" {
		cfg.Paths.SatellitesDir = v
	}
	if v := s.GetWebifURL(); v != "" {
		cfg.WebifURL = v
	}
	cfg.Language = s.GetLanguage()
}

// Resolve overlays stored preferences onto cfg, then re-applies the
// environment. Precedence: defaults < config file < preferences < environment.
func (s *Settings) Resolve(cfg *Config) error {
	s.Apply(cfg)
	mergeEnvOverrides(cfg)
	return cfg.Validate()
}
