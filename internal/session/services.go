package session

import (
	"net/http"

	"github.com/ytget/bouquet-updater/internal/archive"
	"github.com/ytget/bouquet-updater/internal/catalog"
	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/download"
	"github.com/ytget/bouquet-updater/internal/enigma"
	"github.com/ytget/bouquet-updater/internal/install"
)

// NewServices wires the pipeline stages for cfg. A nil httpClient uses
// http.DefaultClient; a nil reloader talks to OpenWebif at cfg.WebifURL, or
// only logs when that is empty.
func NewServices(cfg *config.Config, httpClient *http.Client, downloader download.Downloader, reloader enigma.Reloader) Services {
	if reloader == nil {
		if cfg.WebifURL != "" {
			reloader = enigma.NewWebifReloader(cfg.WebifURL, nil)
		} else {
			reloader = enigma.NopReloader{}
		}
	}
	return Services{
		Fetcher:   catalog.NewClient(httpClient, cfg.Remote),
		Bundles:   archive.NewInstaller(cfg, downloader),
		Copier:    install.NewStager(cfg),
		Installer: install.NewInstaller(cfg, reloader),
	}
}
