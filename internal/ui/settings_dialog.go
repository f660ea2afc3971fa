package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bouquet-updater/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	listingURLEntry   *widget.Entry
	liveDirEntry      *widget.Entry
	satellitesEntry   *widget.Entry
	webifEntry        *widget.Entry
	confirmCheck      *widget.Check
	languageSelect    *widget.Select
	languageCodeByTag map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.listingURLEntry = widget.NewEntry()
	sd.listingURLEntry.SetPlaceHolder(config.DefaultListingURL)

	sd.liveDirEntry = widget.NewEntry()
	sd.liveDirEntry.SetPlaceHolder(config.DefaultLiveDir)
	liveDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), func() { sd.onBrowseDirectory(sd.liveDirEntry) }), sd.liveDirEntry)

	sd.satellitesEntry = widget.NewEntry()
	sd.satellitesEntry.SetPlaceHolder(config.DefaultSatellitesDir)
	satellitesRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), func() { sd.onBrowseDirectory(sd.satellitesEntry) }), sd.satellitesEntry)

	sd.webifEntry = widget.NewEntry()
	sd.webifEntry.SetPlaceHolder(config.DefaultWebifURL)

	sd.confirmCheck = widget.NewCheck(t(KeyConfirmInstall), nil)

	// Language selection, shown by display name
	sd.languageCodeByTag = make(map[string]string)
	var languageOptions []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodeByTag[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyListingURL)+":"),
		sd.listingURLEntry,

		widget.NewLabel(t(KeyLiveDirectory)+":"),
		liveDirRow,

		widget.NewLabel(t(KeySatellitesDir)+":"),
		satellitesRow,

		widget.NewLabel(t(KeyWebifURL)+":"),
		sd.webifEntry,

		widget.NewSeparator(),
		sd.confirmCheck,

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.listingURLEntry.SetText(sd.settings.GetListingURL())
	sd.liveDirEntry.SetText(sd.settings.GetLiveDirectory())
	sd.satellitesEntry.SetText(sd.settings.GetSatellitesDirectory())
	sd.webifEntry.SetText(sd.settings.GetWebifURL())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmBeforeInstall())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory fills entry from a folder picker
func (sd *SettingsDialog) onBrowseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings. Empty fields clear the override.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetListingURL(sd.listingURLEntry.Text)
	sd.settings.SetLiveDirectory(sd.liveDirEntry.Text)
	sd.settings.SetSatellitesDirectory(sd.satellitesEntry.Text)
	sd.settings.SetWebifURL(sd.webifEntry.Text)
	sd.settings.SetConfirmBeforeInstall(sd.confirmCheck.Checked)

	if code, ok := sd.languageCodeByTag[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
