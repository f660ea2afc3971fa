package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/download"
	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/session"
)

// RootUI is the main window. It implements session.View.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	session      *session.Session
	queue        *session.Queue
	reconfigure  func() (session.Services, error)

	titleLabel     *widget.Label
	versionLabel   *widget.Label
	statusLabel    *widget.Label
	availableLabel *widget.Label
	selectedLabel  *widget.Label
	catalogList    *widget.List
	selectionList  *widget.List
	copyBtn        *widget.Button
	installBtn     *widget.Button
	exitBtn        *widget.Button
	refreshBtn     *widget.Button
	downloadBar    *DownloadBar

	// Guarded by dataMutex; written from fyne.Do callbacks only
	dataMutex  sync.RWMutex
	catalog    []string
	selection  []string
	selected   map[string]bool
	cursor     int
	lastStatus session.Message
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, downloadSvc download.Downloader) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		selected:     make(map[string]bool),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for download updates
	downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// AttachSession connects the session that drives this view. Every event is
// posted to one queue so actions run in the order they arrived. reconfigure
// rebuilds the pipeline after the settings were saved; it may be nil.
func (ui *RootUI) AttachSession(ctx context.Context, s *session.Session, reconfigure func() (session.Services, error)) {
	ui.session = s
	ui.reconfigure = reconfigure
	ui.queue = session.NewQueue(ctx, s)
	s.SetConfirmInstall(ui.settings.GetConfirmBeforeInstall())
}

// Start loads the catalog in the background shortly after the window is shown
func (ui *RootUI) Start() {
	time.AfterFunc(AutoStartDelay, ui.queue.Start)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.versionLabel = widget.NewLabel("")
	ui.versionLabel.Alignment = fyne.TextAlignTrailing

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	ui.refreshBtn = widget.NewButton(IconRefresh, func() { ui.dispatch(session.CmdRefresh) })
	ui.refreshBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.refreshBtn, ui.titleLabel), nil, ui.versionLabel)

	ui.catalogList = widget.NewList(
		func() int {
			ui.dataMutex.RLock()
			defer ui.dataMutex.RUnlock()
			return len(ui.catalog)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		ui.updateCatalogItem,
	)
	ui.catalogList.OnSelected = func(id widget.ListItemID) {
		ui.catalogList.Unselect(id)
		if ui.queue == nil {
			return
		}
		ui.queue.Activate(int(id))
	}

	ui.selectionList = widget.NewList(
		func() int {
			ui.dataMutex.RLock()
			defer ui.dataMutex.RUnlock()
			return len(ui.selection)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		ui.updateSelectionItem,
	)
	ui.selectionList.OnSelected = func(id widget.ListItemID) {
		ui.selectionList.Unselect(id)
	}

	ui.availableLabel = widget.NewLabel(ui.localization.GetText(KeyAvailable))
	ui.selectedLabel = widget.NewLabel(ui.localization.GetText(KeySelected))
	panes := container.NewHSplit(
		container.NewBorder(ui.availableLabel, nil, nil, nil, ui.catalogList),
		container.NewBorder(ui.selectedLabel, nil, nil, nil, ui.selectionList),
	)
	panes.Offset = 0.5

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.copyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), func() { ui.dispatch(session.CmdCopy) })
	ui.copyBtn.Importance = widget.SuccessImportance
	ui.installBtn = widget.NewButton(ui.localization.GetText(KeyInstall), func() { ui.dispatch(session.CmdInstall) })
	ui.installBtn.Importance = widget.WarningImportance
	ui.exitBtn = widget.NewButton(ui.localization.GetText(KeyExit), func() { ui.dispatch(session.CmdExit) })
	ui.exitBtn.Importance = widget.DangerImportance
	buttons := container.NewGridWithColumns(3, ui.copyBtn, ui.installBtn, ui.exitBtn)

	ui.downloadBar = NewDownloadBar(ui.localization)
	bottom := container.NewVBox(ui.downloadBar, ui.statusLabel, buttons)

	ui.window.SetContent(container.NewBorder(topPanel, bottom, nil, nil, panes))
	ui.window.Canvas().SetOnTypedKey(NewKeyHandler(ui.dispatch).TypedKey)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), func() { ui.dispatch(session.CmdRefresh) })

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, refreshItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.titleLabel.SetText(t(KeyAppTitle))
	ui.availableLabel.SetText(t(KeyAvailable))
	ui.selectedLabel.SetText(t(KeySelected))
	ui.copyBtn.SetText(t(KeyCopy))
	ui.installBtn.SetText(t(KeyInstall))
	ui.exitBtn.SetText(t(KeyExit))

	ui.dataMutex.RLock()
	status := ui.lastStatus
	ui.dataMutex.RUnlock()
	if status.Key != "" {
		ui.statusLabel.SetText(ui.localization.Translate(status))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if ui.queue != nil {
			confirm := ui.settings.GetConfirmBeforeInstall()
			ui.queue.Post(func() { ui.applySettings(confirm) })
		}
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// applySettings pushes saved settings into the session. Runs on the queue.
func (ui *RootUI) applySettings(confirm bool) {
	ui.session.SetConfirmInstall(confirm)
	if ui.reconfigure == nil {
		return
	}
	services, err := ui.reconfigure()
	if err != nil {
		log.Printf("Failed to apply settings: %v", err)
		ui.ShowError(session.ErrorMessage(err))
		return
	}
	ui.session.SetServices(services)
	log.Printf("Settings applied; next refresh uses the new paths and URLs")
}

// dispatch queues cmd for the session worker
func (ui *RootUI) dispatch(cmd session.Command) {
	if ui.queue == nil {
		return
	}
	ui.queue.Dispatch(cmd)
}

func (ui *RootUI) updateCatalogItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	ui.dataMutex.RLock()
	if id < 0 || id >= len(ui.catalog) {
		ui.dataMutex.RUnlock()
		return
	}
	name := ui.catalog[id]
	focused := id == ui.cursor
	selected := ui.selected[name]
	ui.dataMutex.RUnlock()

	label.SetText(catalogItemText(name, focused, selected))
	label.TextStyle = fyne.TextStyle{Bold: focused}
	label.Refresh()
}

func (ui *RootUI) updateSelectionItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	ui.dataMutex.RLock()
	defer ui.dataMutex.RUnlock()
	if id < 0 || id >= len(ui.selection) {
		return
	}
	label.SetText(ui.selection[id])
}

// catalogItemText prefixes the focused row with a cursor and marks selected rows
func catalogItemText(name string, focused, selected bool) string {
	prefix := "  "
	if focused {
		prefix = IconCursor + " "
	}
	if selected {
		return prefix + name + " " + IconSelected
	}
	return prefix + name
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	snapshot := *task
	fyne.Do(func() {
		ui.downloadBar.UpdateTask(&snapshot)
	})
}

// SetStatus implements session.View
func (ui *RootUI) SetStatus(msg session.Message) {
	fyne.Do(func() {
		ui.dataMutex.Lock()
		ui.lastStatus = msg
		ui.dataMutex.Unlock()
		ui.statusLabel.SetText(ui.localization.Translate(msg))
	})
}

// SetVersion implements session.View
func (ui *RootUI) SetVersion(label string) {
	fyne.Do(func() {
		ui.versionLabel.SetText(label)
	})
}

// SetCatalog implements session.View
func (ui *RootUI) SetCatalog(names []string) {
	names = append([]string(nil), names...)
	fyne.Do(func() {
		ui.dataMutex.Lock()
		ui.catalog = names
		ui.dataMutex.Unlock()
		ui.catalogList.Refresh()
	})
}

// SetSelection implements session.View
func (ui *RootUI) SetSelection(names []string) {
	names = append([]string(nil), names...)
	fyne.Do(func() {
		selected := make(map[string]bool, len(names))
		for _, name := range names {
			selected[name] = true
		}
		ui.dataMutex.Lock()
		ui.selection = names
		ui.selected = selected
		ui.dataMutex.Unlock()
		ui.selectionList.Refresh()
		ui.catalogList.Refresh()
	})
}

// SetCursor implements session.View
func (ui *RootUI) SetCursor(index int) {
	fyne.Do(func() {
		ui.dataMutex.Lock()
		ui.cursor = index
		ui.dataMutex.Unlock()
		ui.catalogList.Refresh()
		ui.catalogList.ScrollTo(widget.ListItemID(index))
	})
}

// SetBusy implements session.View. Action buttons are disabled while a
// pipeline step runs; Exit stays available.
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		for _, btn := range []*widget.Button{ui.copyBtn, ui.installBtn, ui.refreshBtn} {
			if busy {
				btn.Disable()
			} else {
				btn.Enable()
			}
		}
	})
}

// ShowInfo implements session.View. The dialog closes itself after timeout.
func (ui *RootUI) ShowInfo(msg session.Message, timeout time.Duration) {
	fyne.Do(func() {
		d := dialog.NewInformation(ui.localization.GetText(KeyInformation), ui.localization.Translate(msg), ui.window)
		d.Show()
		if timeout > 0 {
			go func() {
				time.Sleep(timeout)
				fyne.Do(d.Hide)
			}()
		}
	})
}

// ShowError implements session.View
func (ui *RootUI) ShowError(msg session.Message) {
	fyne.Do(func() {
		dialog.ShowInformation(ui.localization.GetText(KeyError), ui.localization.Translate(msg), ui.window)
	})
}

// Confirm implements session.View. The answer is queued behind events that
// arrived before it.
func (ui *RootUI) Confirm(msg session.Message, answer func(bool)) {
	fyne.Do(func() {
		d := dialog.NewConfirm(ui.localization.GetText(KeyQuestion), ui.localization.Translate(msg), func(yes bool) {
			if !ui.queue.Post(func() { answer(yes) }) {
				log.Printf("Dropping confirmation answer, session closed")
			}
		}, ui.window)
		d.SetConfirmText(ui.localization.GetText(KeyYes))
		d.SetDismissText(ui.localization.GetText(KeyNo))
		d.Show()
	})
}

// Close implements session.View
func (ui *RootUI) Close() {
	fyne.Do(ui.app.Quit)
}
