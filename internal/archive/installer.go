package archive

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/download"
	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/platform"
)

// Installer downloads the bundle and replaces the download root with its
// single top-level directory
type Installer struct {
	paths      config.Paths
	downloader download.Downloader
}

// NewInstaller creates an archive installer
func NewInstaller(cfg *config.Config, downloader download.Downloader) *Installer {
	return &Installer{
		paths:      cfg.Paths,
		downloader: downloader,
	}
}

// Install downloads url, unpacks it and moves the bundle directory into the
// download root. Files staged from the previous bundle are discarded. It
// returns the download root path.
func (i *Installer) Install(ctx context.Context, url string) (string, error) {
	if _, err := i.downloader.Download(ctx, url, i.paths.ArchiveFile); err != nil {
		return "", err
	}

	log.Printf("Extracting %s into %s", i.paths.ArchiveFile, i.paths.ExtractDir)
	if err := platform.ResetDirectory(i.paths.ExtractDir); err != nil {
		return "", model.NewError(model.KindIO, "reset extraction directory", i.paths.ExtractDir, err)
	}
	if err := Extract(i.paths.ArchiveFile, i.paths.ExtractDir); err != nil {
		return "", err
	}

	bundleDir, err := i.bundleDir()
	if err != nil {
		return "", err
	}

	// The old root is only touched once a replacement is known to exist.
	if err := os.RemoveAll(i.paths.DownloadRoot); err != nil {
		return "", model.NewError(model.KindIO, "remove previous download root", i.paths.DownloadRoot, err)
	}
	// Staged copies belong to the bundle being replaced
	if err := os.RemoveAll(i.paths.StagingDir); err != nil {
		return "", model.NewError(model.KindIO, "clear staging directory", i.paths.StagingDir, err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(i.paths.DownloadRoot)); err != nil {
		return "", model.NewError(model.KindIO, "create download root parent", filepath.Dir(i.paths.DownloadRoot), err)
	}
	if err := platform.MoveDir(bundleDir, i.paths.DownloadRoot); err != nil {
		return "", model.NewError(model.KindIO, "move bundle into place", i.paths.DownloadRoot, err)
	}

	log.Printf("Bundle installed into %s", i.paths.DownloadRoot)
	return i.paths.DownloadRoot, nil
}

// bundleDir returns the first top-level directory of the extracted archive
func (i *Installer) bundleDir() (string, error) {
	dirs, err := platform.TopLevelDirs(i.paths.ExtractDir)
	if err != nil {
		return "", model.NewError(model.KindIO, "list extracted archive", i.paths.ExtractDir, err)
	}
	if len(dirs) == 0 {
		return "", model.NewError(model.KindArchive, "locate bundle directory", i.paths.ExtractDir,
			fmt.Errorf("archive has no top-level directory"))
	}
	if len(dirs) > 1 {
		log.Printf("Archive has %d top-level directories, using %s", len(dirs), dirs[0])
	}
	return filepath.Join(i.paths.ExtractDir, dirs[0]), nil
}
