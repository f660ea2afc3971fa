package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/bouquet-updater/internal/archive"
	"github.com/ytget/bouquet-updater/internal/bouquet"
	"github.com/ytget/bouquet-updater/internal/catalog"
	"github.com/ytget/bouquet-updater/internal/install"
	"github.com/ytget/bouquet-updater/internal/model"
)

// ReloadInfoTimeout is how long the reload success dialog stays open
const ReloadInfoTimeout = 5 * time.Second

// Services are the pipeline stages a session calls into
type Services struct {
	Fetcher   catalog.Fetcher
	Bundles   archive.BundleInstaller
	Copier    install.Copier
	Installer install.LiveInstaller
}

// Session is one user's pass through fetch, select, copy and install
type Session struct {
	mu sync.Mutex

	services  Services
	indexFile string
	view      View

	state          model.SessionState
	snapshot       *model.CatalogSnapshot
	selection      *model.SelectionSet
	cursor         int
	confirmInstall bool
}

// New creates an idle session. indexFile is the bundle's index file name.
func New(services Services, indexFile string, view View) *Session {
	return &Session{
		services:       services,
		indexFile:      indexFile,
		view:           view,
		state:          model.SessionIdle,
		selection:      model.NewSelectionSet(),
		confirmInstall: true,
	}
}

// SetConfirmInstall controls whether Install asks before touching live files
func (s *Session) SetConfirmInstall(confirm bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmInstall = confirm
}

// SetServices swaps the pipeline stages, e.g. after the settings changed.
// The current catalog stays until the next refresh.
func (s *Session) SetServices(services Services) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = services
}

// Start fetches the listing, installs the bundle and loads the catalog
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == model.SessionClosed {
		return nil
	}
	return s.load(ctx)
}

// Dispatch runs one command to completion
func (s *Session) Dispatch(ctx context.Context, cmd Command) error {
	opID := uuid.NewString()
	log.Printf("Dispatching %s (op %s)", cmd, opID)

	// Install releases the lock while waiting for the answer
	if cmd == CmdInstall {
		return s.requestInstall(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.SessionClosed {
		return nil
	}

	switch cmd {
	case CmdUp:
		s.moveCursor(-1)
	case CmdDown:
		s.moveCursor(1)
	case CmdToggle:
		s.toggleAt(s.cursor)
	case CmdCopy:
		return s.copySelection()
	case CmdRefresh:
		return s.load(ctx)
	case CmdExit:
		s.setState(model.SessionClosed)
		s.view.Close()
	default:
		log.Printf("Ignoring unknown command %d", cmd)
	}
	return nil
}

// Focus moves the cursor to index, e.g. after a pointer click
func (s *Session) Focus(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.snapshot.Len() {
		return
	}
	s.cursor = index
	s.view.SetCursor(index)
}

// Activate focuses index and toggles it
func (s *Session) Activate(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == model.SessionClosed || index < 0 || index >= s.snapshot.Len() {
		return
	}
	s.cursor = index
	s.view.SetCursor(index)
	s.toggleAt(index)
}

// ToggleName toggles a bouquet by display name. It reports false when the
// current catalog has no such bouquet.
func (s *Session) ToggleName(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, displayName := range s.catalogNames() {
		if displayName == name {
			s.cursor = i
			s.view.SetCursor(i)
			s.toggleAt(i)
			return true
		}
	}
	return false
}

// State returns the current session state
func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Catalog returns the display names of the current catalog
func (s *Session) Catalog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.catalogNames()...)
}

// Selection returns the selected display names in toggle order
func (s *Session) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Items()
}

func (s *Session) catalogNames() []string {
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot.Display
}

// load runs fetch, bundle install and parse. A failure before the bundle is
// replaced keeps the previous catalog.
func (s *Session) load(ctx context.Context) error {
	previous := s.state
	if previous == model.SessionFetching {
		previous = model.SessionIdle
	}
	s.setState(model.SessionFetching)
	s.view.SetStatus(NewMessage(MsgFetching))

	release, err := s.services.Fetcher.Fetch(ctx)
	s.view.SetVersion(VersionLabel(release, err))
	if err != nil {
		return s.loadFailed(previous, err)
	}

	s.view.SetStatus(NewMessage(MsgDownloading, release.Version))
	root, err := s.services.Bundles.Install(ctx, release.ArchiveURL)
	if err != nil {
		return s.loadFailed(previous, err)
	}

	snapshot, err := bouquet.ParseCatalog(root, s.indexFile)
	if err != nil {
		s.snapshot = nil
		s.view.SetCatalog(nil)
		return s.loadFailed(model.SessionIdle, err)
	}

	s.snapshot = snapshot
	if s.cursor >= snapshot.Len() {
		s.cursor = 0
	}
	s.view.SetCatalog(snapshot.Display)
	s.view.SetSelection(s.selection.Items())
	s.view.SetCursor(s.cursor)
	s.settle()
	s.view.SetStatus(NewMessage(MsgLoaded, snapshot.Len()))
	return nil
}

func (s *Session) loadFailed(previous model.SessionState, err error) error {
	log.Printf("Loading catalog failed: %v", err)
	if s.snapshot == nil {
		previous = model.SessionIdle
	}
	s.setState(previous)
	s.view.SetStatus(ErrorMessage(err))
	return err
}

// setState records the new state and tells the view when a blocking step
// starts or ends
func (s *Session) setState(state model.SessionState) {
	wasBusy := s.state.IsBusy()
	s.state = state
	if busy := state.IsBusy(); busy != wasBusy {
		s.view.SetBusy(busy)
	}
}

// settle returns to Loaded or Selecting after an action
func (s *Session) settle() {
	if s.snapshot == nil {
		s.setState(model.SessionIdle)
		return
	}
	if s.selection.IsEmpty() {
		s.setState(model.SessionLoaded)
		return
	}
	s.setState(model.SessionSelecting)
}

func (s *Session) moveCursor(delta int) {
	n := s.snapshot.Len()
	if n == 0 {
		return
	}
	next := s.cursor + delta
	if next < 0 || next >= n {
		return
	}
	s.cursor = next
	s.view.SetCursor(next)
}

func (s *Session) toggleAt(index int) {
	name, ok := s.snapshot.DisplayAt(index)
	if !ok {
		return
	}
	s.selection.Toggle(name)
	s.view.SetSelection(s.selection.Items())
	s.view.SetStatus(NewMessage(MsgSelected, s.selection.Len()))
	s.settle()
}

// ready reports whether copy or install may run, telling the user why not
func (s *Session) ready() bool {
	if s.snapshot == nil {
		s.view.ShowError(NewMessage(MsgNoCatalog))
		return false
	}
	if s.selection.IsEmpty() {
		s.view.ShowError(NewMessage(MsgNoSelection))
		return false
	}
	return true
}

func (s *Session) copySelection() error {
	if !s.ready() {
		return nil
	}

	s.setState(model.SessionCopying)
	defer s.settle()
	s.view.SetStatus(NewMessage(MsgCopying))

	staged, err := s.services.Copier.Stage(s.selection, s.snapshot)
	if err != nil {
		log.Printf("Copy failed: %v", err)
		msg := ErrorMessage(err)
		s.view.SetStatus(msg)
		s.view.ShowError(msg)
		return err
	}
	s.view.SetStatus(NewMessage(MsgCopied, len(staged)))
	return nil
}

func (s *Session) requestInstall(ctx context.Context) error {
	s.mu.Lock()
	if s.state == model.SessionClosed || !s.ready() {
		s.mu.Unlock()
		return nil
	}
	confirm := s.confirmInstall
	count := s.selection.Len()
	s.mu.Unlock()

	if !confirm {
		return s.installConfirmed(ctx)
	}

	s.view.Confirm(NewMessage(MsgConfirmInstall, count), func(yes bool) {
		if !yes {
			s.view.SetStatus(NewMessage(MsgInstallCancelled))
			return
		}
		if err := s.installConfirmed(ctx); err != nil {
			log.Printf("Install failed: %v", err)
		}
	})
	return nil
}

func (s *Session) installConfirmed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.SessionClosed || !s.ready() {
		return nil
	}

	s.setState(model.SessionInstalling)
	defer s.settle()
	s.view.SetStatus(NewMessage(MsgInstalling))

	installed, err := s.services.Installer.Install(s.selection, s.snapshot)
	if err != nil {
		msg := ErrorMessage(err)
		s.view.SetStatus(msg)
		s.view.ShowError(msg)
		return err
	}
	if len(installed) == 0 {
		s.view.SetStatus(NewMessage(MsgNothingInstalled))
		return nil
	}
	s.view.SetStatus(NewMessage(MsgInstalled, len(installed)))

	if err := s.services.Installer.Reload(); err != nil {
		log.Printf("Reload failed: %v", err)
		s.view.ShowError(NewMessage(MsgReloadFailed, err.Error()))
		return err
	}
	s.view.ShowInfo(NewMessage(MsgReloaded), ReloadInfoTimeout)
	return nil
}
