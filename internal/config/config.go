package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default locations, matching the stock plugin layout on an Enigma2 box
const (
	DefaultConfigFile    = "/etc/bouquet-updater.toml"
	DefaultDownloadRoot  = "/tmp/ciefp-E2-75E-34W"
	DefaultStagingDir    = "/tmp/CiefpBouquetUpdater"
	DefaultExtractDir    = "/tmp/temp_extract"
	DefaultArchiveFile   = "/tmp/latest.zip"
	DefaultLiveDir       = "/etc/enigma2"
	DefaultSatellitesDir = "/etc/tuxbox"
	DefaultIndexFile     = "bouquets.tv"
	DefaultListingURL    = "https://api.github.com/repos/ciefp/ciefpsettings-enigma2-zipped/contents/"
	DefaultNamePattern   = "ciefp-E2-75E-34W"
	DefaultExtension     = ".zip"
	DefaultWebifURL      = "http://127.0.0.1"
)

// Shared files installed next to the bouquets
const (
	ServiceListFile = "lamedb"
	SatellitesFile  = "satellites.xml"
)

// EnvPrefix prefixes environment overrides, e.g. BOUQUET_UPDATER_LIVE_DIR
const EnvPrefix = "BOUQUET_UPDATER_"

// Paths holds the scratch and live directories used by the pipeline
type Paths struct {
	DownloadRoot  string `toml:"download_root"`
	StagingDir    string `toml:"staging_dir"`
	ExtractDir    string `toml:"extract_dir"`
	ArchiveFile   string `toml:"archive_file"`
	LiveDir       string `toml:"live_dir"`
	SatellitesDir string `toml:"satellites_dir"`
}

// Remote describes where the bundle listing lives and which entry to pick
type Remote struct {
	ListingURL   string   `toml:"listing_url"`
	NamePatterns []string `toml:"name_patterns"`
	Extension    string   `toml:"extension"`
}

// Symbolic common-file targets resolved against Paths
const (
	TargetLive       = "live"
	TargetSatellites = "satellites"
)

// CommonFile is a shared file copied from the download root on install.
// Target is TargetLive, TargetSatellites or an absolute directory.
type CommonFile struct {
	Name   string `toml:"name"`
	Target string `toml:"target"`
}

// Config is passed explicitly into every pipeline component
type Config struct {
	Paths       Paths        `toml:"paths"`
	Remote      Remote       `toml:"remote"`
	IndexFile   string       `toml:"index_file"`
	CommonFiles []CommonFile `toml:"common_files"`
	WebifURL    string       `toml:"webif_url"`
	Language    string       `toml:"language"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Paths: Paths{
			DownloadRoot:  DefaultDownloadRoot,
			StagingDir:    DefaultStagingDir,
			ExtractDir:    DefaultExtractDir,
			ArchiveFile:   DefaultArchiveFile,
			LiveDir:       DefaultLiveDir,
			SatellitesDir: DefaultSatellitesDir,
		},
		Remote: Remote{
			ListingURL:   DefaultListingURL,
			NamePatterns: []string{DefaultNamePattern},
			Extension:    DefaultExtension,
		},
		IndexFile: DefaultIndexFile,
		CommonFiles: []CommonFile{
			{Name: SatellitesFile, Target: TargetSatellites},
			{Name: ServiceListFile, Target: TargetLive},
		},
		WebifURL: DefaultWebifURL,
		Language: DefaultLanguage,
	}
}

// ForRoot returns the stock configuration with every scratch and live
// directory relocated under root. Useful for sandboxes and tests.
func ForRoot(root string) *Config {
	cfg := Default()
	cfg.Paths = Paths{
		DownloadRoot:  filepath.Join(root, "download"),
		StagingDir:    filepath.Join(root, "staging"),
		ExtractDir:    filepath.Join(root, "extract"),
		ArchiveFile:   filepath.Join(root, "latest.zip"),
		LiveDir:       filepath.Join(root, "etc", "enigma2"),
		SatellitesDir: filepath.Join(root, "etc", "tuxbox"),
	}
	return cfg
}

// Load reads the optional TOML file at path on top of the defaults and then
// applies BOUQUET_UPDATER_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			log.Printf("Config file %s not found, using defaults", path)
		}
	}

	mergeEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required path and remote setting is present
func (c *Config) Validate() error {
	required := map[string]string{
		"paths.download_root":  c.Paths.DownloadRoot,
		"paths.staging_dir":    c.Paths.StagingDir,
		"paths.extract_dir":    c.Paths.ExtractDir,
		"paths.archive_file":   c.Paths.ArchiveFile,
		"paths.live_dir":       c.Paths.LiveDir,
		"paths.satellites_dir": c.Paths.SatellitesDir,
		"remote.listing_url":   c.Remote.ListingURL,
		"remote.extension":     c.Remote.Extension,
		"index_file":           c.IndexFile,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("config: %s must not be empty", key)
		}
	}
	if len(c.Remote.NamePatterns) == 0 {
		return fmt.Errorf("config: remote.name_patterns must not be empty")
	}
	if strings.ContainsAny(c.IndexFile, `/\`) {
		return fmt.Errorf("config: index_file must be a bare file name, got %q", c.IndexFile)
	}
	for _, file := range c.CommonFiles {
		if file.Name == "" || strings.ContainsAny(file.Name, `/\`) {
			return fmt.Errorf("config: common file name %q must be a bare file name", file.Name)
		}
	}
	return nil
}

// LiveIndexPath returns the path of the index file in the live directory
func (c *Config) LiveIndexPath() string {
	return filepath.Join(c.Paths.LiveDir, c.IndexFile)
}

// DownloadedIndexPath returns the path of the index file in the download root
func (c *Config) DownloadedIndexPath() string {
	return filepath.Join(c.Paths.DownloadRoot, c.IndexFile)
}

// CommonFileDir returns the destination directory of a common file
func (c *Config) CommonFileDir(file CommonFile) string {
	switch file.Target {
	case TargetLive, "":
		return c.Paths.LiveDir
	case TargetSatellites:
		return c.Paths.SatellitesDir
	default:
		return file.Target
	}
}

// mergeEnvOverrides applies BOUQUET_UPDATER_* variables
func mergeEnvOverrides(cfg *Config) {
	overrides := map[string]*string{
		"DOWNLOAD_ROOT":  &cfg.Paths.DownloadRoot,
		"STAGING_DIR":    &cfg.Paths.StagingDir,
		"EXTRACT_DIR":    &cfg.Paths.ExtractDir,
		"ARCHIVE_FILE":   &cfg.Paths.ArchiveFile,
		"LIVE_DIR":       &cfg.Paths.LiveDir,
		"SATELLITES_DIR": &cfg.Paths.SatellitesDir,
		"LISTING_URL":    &cfg.Remote.ListingURL,
		"EXTENSION":      &cfg.Remote.Extension,
		"INDEX_FILE":     &cfg.IndexFile,
		"WEBIF_URL":      &cfg.WebifURL,
		"LANGUAGE":       &cfg.Language,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(EnvPrefix + key); ok && value != "" {
			*target = value
		}
	}

	if patterns := os.Getenv(EnvPrefix + "NAME_PATTERNS"); patterns != "" {
		cfg.Remote.NamePatterns = splitList(patterns)
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
