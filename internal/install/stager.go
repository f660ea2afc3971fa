package install

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/bouquet-updater/internal/bouquet"
	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/platform"
)

// Stager copies selected bouquet files from the download root to the staging directory
type Stager struct {
	cfg *config.Config
}

// NewStager creates a stager
func NewStager(cfg *config.Config) *Stager {
	return &Stager{cfg: cfg}
}

// Stage copies every resolvable selected file that exists in the download
// root, then appends the missing ones to the live index. It returns the staged
// filenames. The first copy failure aborts; files already staged stay.
func (s *Stager) Stage(selection *model.SelectionSet, snapshot *model.CatalogSnapshot) ([]string, error) {
	stagingDir := s.cfg.Paths.StagingDir
	if err := os.MkdirAll(stagingDir, platform.DefaultDirPermissions); err != nil {
		kind := model.KindIO
		if errors.Is(err, fs.ErrPermission) {
			kind = model.KindPermission
		}
		return nil, model.NewError(kind, "create staging directory", stagingDir, err)
	}

	root := downloadRoot(s.cfg, snapshot)
	var staged []string
	for _, filename := range selection.ResolveAll(snapshot) {
		src := filepath.Join(root, filename)
		if !platform.FileExists(src) {
			log.Printf("Skipping %s: not present in %s", filename, root)
			continue
		}
		if err := platform.CopyFile(src, filepath.Join(stagingDir, filename)); err != nil {
			return staged, model.NewError(model.KindIO, "copy bouquet", filename, err)
		}
		staged = append(staged, filename)
	}
	log.Printf("Staged %d bouquet(s) into %s", len(staged), stagingDir)

	if len(staged) == 0 {
		return staged, nil
	}
	if _, err := bouquet.ReconcileIndex(s.cfg.LiveIndexPath(), filepath.Join(root, s.cfg.IndexFile), staged); err != nil {
		return staged, err
	}
	return staged, nil
}

// downloadRoot prefers the root the snapshot was parsed from
func downloadRoot(cfg *config.Config, snapshot *model.CatalogSnapshot) string {
	if snapshot != nil && snapshot.Root != "" {
		return snapshot.Root
	}
	return cfg.Paths.DownloadRoot
}
