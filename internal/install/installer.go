package install

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ytget/bouquet-updater/internal/bouquet"
	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/enigma"
	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/platform"
)

// Installer replaces live bouquet files and the shared common files
type Installer struct {
	cfg      *config.Config
	reloader enigma.Reloader
}

// NewInstaller creates a live installer. A nil reloader only logs.
func NewInstaller(cfg *config.Config, reloader enigma.Reloader) *Installer {
	if reloader == nil {
		reloader = enigma.NopReloader{}
	}
	return &Installer{cfg: cfg, reloader: reloader}
}

// Install copies every resolvable selected file into the live directory,
// taking the staged copy when there is one and the downloaded copy otherwise.
// The common files follow, then the live index is updated. It returns every
// installed filename; an empty result means nothing was installed.
func (i *Installer) Install(selection *model.SelectionSet, snapshot *model.CatalogSnapshot) ([]string, error) {
	liveDir := i.cfg.Paths.LiveDir
	if err := platform.CreateDirectoryIfNotExists(liveDir); err != nil {
		return nil, model.NewError(model.KindIO, "create live directory", liveDir, err)
	}

	root := downloadRoot(i.cfg, snapshot)
	var installed, bouquets []string
	for _, filename := range selection.ResolveAll(snapshot) {
		src, ok := i.sourceFor(root, filename)
		if !ok {
			log.Printf("Skipping %s: neither staged nor downloaded", filename)
			continue
		}
		if err := platform.ReplaceFile(src, filepath.Join(liveDir, filename)); err != nil {
			return installed, model.NewError(model.KindIO, "install bouquet", filename, err)
		}
		installed = append(installed, filename)
		bouquets = append(bouquets, filename)
	}

	common, err := i.installCommonFiles(root)
	installed = append(installed, common...)
	if err != nil {
		return installed, err
	}

	if len(bouquets) > 0 {
		if _, err := bouquet.ReconcileIndex(i.cfg.LiveIndexPath(), filepath.Join(root, i.cfg.IndexFile), bouquets); err != nil {
			return installed, err
		}
	}

	log.Printf("Installed %d file(s) into %s", len(installed), liveDir)
	return installed, nil
}

// Reload asks the receiver to reload lamedb and then the bouquets
func (i *Installer) Reload() error {
	if err := i.reloader.ReloadServiceList(); err != nil {
		return fmt.Errorf("failed to reload service list: %w", err)
	}
	if err := i.reloader.ReloadBouquets(); err != nil {
		return fmt.Errorf("failed to reload bouquets: %w", err)
	}
	return nil
}

func (i *Installer) sourceFor(root, filename string) (string, bool) {
	staged := filepath.Join(i.cfg.Paths.StagingDir, filename)
	if platform.FileExists(staged) {
		return staged, true
	}
	downloaded := filepath.Join(root, filename)
	if platform.FileExists(downloaded) {
		return downloaded, true
	}
	return "", false
}

// installCommonFiles copies lamedb, satellites.xml and friends from the download root
func (i *Installer) installCommonFiles(root string) ([]string, error) {
	var installed []string
	for _, file := range i.cfg.CommonFiles {
		src := filepath.Join(root, file.Name)
		if !platform.FileExists(src) {
			continue
		}
		dir := i.cfg.CommonFileDir(file)
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return installed, model.NewError(model.KindIO, "create directory", dir, err)
		}
		if err := platform.ReplaceFile(src, filepath.Join(dir, file.Name)); err != nil {
			return installed, model.NewError(model.KindIO, "install common file", file.Name, err)
		}
		installed = append(installed, file.Name)
	}
	return installed, nil
}
