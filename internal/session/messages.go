package session

import (
	"fmt"

	"github.com/ytget/bouquet-updater/internal/model"
)

// Message keys. Front-ends translate them; DefaultText holds the English form.
const (
	MsgFetching          = "status.fetching"
	MsgDownloading       = "status.downloading"
	MsgLoaded            = "status.loaded"
	MsgSelected          = "status.selected"
	MsgCopying           = "status.copying"
	MsgCopied            = "status.copied"
	MsgInstalling        = "status.installing"
	MsgInstalled         = "status.installed"
	MsgNothingInstalled  = "status.nothing_installed"
	MsgInstallCancelled  = "status.install_cancelled"
	MsgConfirmInstall    = "confirm.install"
	MsgReloaded          = "info.reloaded"
	MsgNoSelection       = "error.no_selection"
	MsgNoCatalog         = "error.no_catalog"
	MsgReloadFailed      = "error.reload"
	MsgErrorNetwork      = "error.network"
	MsgErrorNotFound     = "error.not_found"
	MsgErrorArchive      = "error.archive"
	MsgErrorIO           = "error.io"
	MsgErrorPermission   = "error.permission"
	MsgErrorEmptyCatalog = "error.empty_catalog"
	MsgErrorGeneric      = "error.generic"
)

// Version label texts
const (
	VersionFormat       = "Version: (%s)"
	VersionNotAvailable = "Date not available"
	VersionFetchError   = "Error fetching date"
)

// DefaultText maps message keys to English format strings
var DefaultText = map[string]string{
	MsgFetching:          "Fetching file list...",
	MsgDownloading:       "Downloading %s...",
	MsgLoaded:            "%d bouquets loaded",
	MsgSelected:          "%d selected",
	MsgCopying:           "Copying selected bouquets...",
	MsgCopied:            "%d file(s) copied to staging",
	MsgInstalling:        "Installing...",
	MsgInstalled:         "%d file(s) installed",
	MsgNothingInstalled:  "Nothing installed",
	MsgInstallCancelled:  "Installation cancelled",
	MsgConfirmInstall:    "Install %d selected bouquet(s)?",
	MsgReloaded:          "Bouquets installed and reloaded successfully",
	MsgNoSelection:       "No bouquets selected!",
	MsgNoCatalog:         "No bouquet list loaded",
	MsgReloadFailed:      "Files installed, but reload failed: %s",
	MsgErrorNetwork:      "Network error: %s",
	MsgErrorNotFound:     "Not found: %s",
	MsgErrorArchive:      "Invalid archive: %s",
	MsgErrorIO:           "File error: %s",
	MsgErrorPermission:   "Permission denied: %s",
	MsgErrorEmptyCatalog: "No bouquets found in the downloaded list",
	MsgErrorGeneric:      "Error: %s",
}

// Message is a translatable view message
type Message struct {
	Key  string
	Args []any
}

// NewMessage creates a message
func NewMessage(key string, args ...any) Message {
	return Message{Key: key, Args: args}
}

// Format renders the message with the given format string, which may be
// empty to fall back to DefaultText
func (m Message) Format(format string) string {
	if format == "" {
		format = DefaultText[m.Key]
	}
	if format == "" {
		return m.Key
	}
	if len(m.Args) == 0 {
		return format
	}
	return fmt.Sprintf(format, m.Args...)
}

// String renders the message in English
func (m Message) String() string {
	return m.Format("")
}

var kindMessages = map[model.ErrorKind]string{
	model.KindNetwork:      MsgErrorNetwork,
	model.KindNotFound:     MsgErrorNotFound,
	model.KindArchive:      MsgErrorArchive,
	model.KindIO:           MsgErrorIO,
	model.KindPermission:   MsgErrorPermission,
	model.KindEmptyCatalog: MsgErrorEmptyCatalog,
}

// ErrorMessage converts a pipeline error into a view message
func ErrorMessage(err error) Message {
	key, ok := kindMessages[model.KindOf(err)]
	if !ok {
		key = MsgErrorGeneric
	}
	if key == MsgErrorEmptyCatalog {
		return NewMessage(key)
	}
	return NewMessage(key, err.Error())
}

// VersionLabel returns the version text for a fetch result
func VersionLabel(release model.Release, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf(VersionFormat, release.Name)
	case model.KindOf(err) == model.KindNotFound:
		return VersionNotAvailable
	default:
		return VersionFetchError
	}
}
