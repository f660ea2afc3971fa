package install

import (
	"github.com/ytget/bouquet-updater/internal/model"
)

// Copier stages selected bouquets
type Copier interface {
	Stage(selection *model.SelectionSet, snapshot *model.CatalogSnapshot) ([]string, error)
}

// LiveInstaller installs selected bouquets into the live configuration
type LiveInstaller interface {
	Install(selection *model.SelectionSet, snapshot *model.CatalogSnapshot) ([]string, error)
	Reload() error
}
