package ui

import (
	"github.com/ytget/bouquet-updater/internal/session"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Session messages use the session.Msg* keys.
const (
	KeyAppTitle       = "app_title"
	KeyCopy           = "copy"
	KeyInstall        = "install"
	KeyExit           = "exit"
	KeyRefresh        = "refresh"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyAvailable      = "available"
	KeySelected       = "selected"
	KeyListingURL     = "listing_url"
	KeyLiveDirectory  = "live_directory"
	KeySatellitesDir  = "satellites_directory"
	KeyWebifURL       = "webif_url"
	KeyConfirmInstall = "confirm_install"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyBrowse         = "browse"
	KeySettingsSaved  = "settings_saved"
	KeyInformation    = "information"
	KeyError          = "error"
	KeyQuestion       = "question"
	KeyYes            = "yes"
	KeyNo             = "no"
	KeyDownloading    = "downloading"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, ok := l.lookup(key); ok {
		return text
	}
	return key
}

// Translate renders a session message in the current language
func (l *Localization) Translate(msg session.Message) string {
	format, _ := l.lookup(msg.Key)
	return msg.Format(format)
}

func (l *Localization) lookup(key string) (string, bool) {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}
	return "", false
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"sr": "Srpski",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English UI texts; session messages fall back to session.DefaultText
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Bouquet Updater",
		KeyCopy:           "Copy",
		KeyInstall:        "Install",
		KeyExit:           "Exit",
		KeyRefresh:        "Refresh",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyAvailable:      "Available bouquets",
		KeySelected:       "Selected bouquets",
		KeyListingURL:     "Listing URL",
		KeyLiveDirectory:  "Enigma2 directory",
		KeySatellitesDir:  "Tuxbox directory",
		KeyWebifURL:       "OpenWebif URL",
		KeyConfirmInstall: "Ask before installing",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyBrowse:         "Browse",
		KeySettingsSaved:  "Settings saved. Path and URL changes apply from the next refresh.",
		KeyInformation:    "Information",
		KeyError:          "Error",
		KeyQuestion:       "Question",
		KeyYes:            "Yes",
		KeyNo:             "No",
		KeyDownloading:    "Downloading",
	}

	// Serbian texts
	l.texts["sr"] = map[string]string{
		KeyAppTitle:       "Ažuriranje buketa",
		KeyCopy:           "Kopiraj",
		KeyInstall:        "Instaliraj",
		KeyExit:           "Izlaz",
		KeyRefresh:        "Osveži",
		KeySettings:       "Podešavanja",
		KeyFile:           "Datoteka",
		KeyLanguage:       "Jezik",
		KeyAvailable:      "Dostupni buketi",
		KeySelected:       "Izabrani buketi",
		KeyListingURL:     "URL liste",
		KeyLiveDirectory:  "Enigma2 direktorijum",
		KeySatellitesDir:  "Tuxbox direktorijum",
		KeyWebifURL:       "OpenWebif URL",
		KeyConfirmInstall: "Pitaj pre instalacije",
		KeySave:           "Sačuvaj",
		KeyCancel:         "Otkaži",
		KeyBrowse:         "Pregledaj",
		KeySettingsSaved:  "Podešavanja sačuvana. Promene putanja i adresa važe od sledećeg osvežavanja.",
		KeyInformation:    "Informacija",
		KeyError:          "Greška",
		KeyQuestion:       "Pitanje",
		KeyYes:            "Da",
		KeyNo:             "Ne",
		KeyDownloading:    "Preuzimanje",

		session.MsgFetching:          "Preuzimanje liste fajlova...",
		session.MsgDownloading:       "Preuzimanje %s...",
		session.MsgLoaded:            "Učitano buketa: %d",
		session.MsgSelected:          "Izabrano: %d",
		session.MsgCopying:           "Kopiranje izabranih buketa...",
		session.MsgCopied:            "Kopirano fajlova: %d",
		session.MsgInstalling:        "Instalacija...",
		session.MsgInstalled:         "Instalirano fajlova: %d",
		session.MsgNothingInstalled:  "Ništa nije instalirano",
		session.MsgInstallCancelled:  "Instalacija otkazana",
		session.MsgConfirmInstall:    "Instalirati izabrane bukete (%d)?",
		session.MsgReloaded:          "Buketi su instalirani i ponovo učitani",
		session.MsgNoSelection:       "Nijedan buket nije izabran!",
		session.MsgNoCatalog:         "Lista buketa nije učitana",
		session.MsgReloadFailed:      "Fajlovi su instalirani, ali ponovno učitavanje nije uspelo: %s",
		session.MsgErrorNetwork:      "Mrežna greška: %s",
		session.MsgErrorNotFound:     "Nije pronađeno: %s",
		session.MsgErrorArchive:      "Neispravna arhiva: %s",
		session.MsgErrorIO:           "Greška sa fajlom: %s",
		session.MsgErrorPermission:   "Pristup odbijen: %s",
		session.MsgErrorEmptyCatalog: "U preuzetoj listi nema buketa",
		session.MsgErrorGeneric:      "Greška: %s",
	}
}
