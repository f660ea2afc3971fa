package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultDownloadRoot, cfg.Paths.DownloadRoot)
	assert.Equal(t, []string{DefaultNamePattern}, cfg.Remote.NamePatterns)
	assert.Equal(t, "/etc/enigma2/bouquets.tv", cfg.LiveIndexPath())
	assert.Equal(t, "/tmp/ciefp-E2-75E-34W/bouquets.tv", cfg.DownloadedIndexPath())
}

func TestCommonFileDir(t *testing.T) {
	cfg := Default()

	tests := []struct {
		file     CommonFile
		expected string
	}{
		{CommonFile{Name: SatellitesFile, Target: TargetSatellites}, DefaultSatellitesDir},
		{CommonFile{Name: ServiceListFile, Target: TargetLive}, DefaultLiveDir},
		{CommonFile{Name: "whitelist", Target: ""}, DefaultLiveDir},
		{CommonFile{Name: "picon.conf", Target: "/usr/share/enigma2"}, "/usr/share/enigma2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.CommonFileDir(tt.file), tt.file.Name)
	}
}

func TestForRoot(t *testing.T) {
	root := t.TempDir()
	cfg := ForRoot(root)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join(root, "etc", "enigma2"), cfg.Paths.LiveDir)
	assert.Equal(t, filepath.Join(root, "etc", "tuxbox"), cfg.CommonFileDir(cfg.CommonFiles[0]))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultLiveDir, cfg.Paths.LiveDir)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bouquet-updater.toml")
	content := `
index_file = "bouquets.radio"
webif_url = "http://box.local"

[paths]
live_dir = "/media/usb/enigma2"

[remote]
name_patterns = ["ciefp-E2-16E-13E", "ciefp-E2-75E-34W"]

[[common_files]]
name = "lamedb5"
target = "live"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bouquets.radio", cfg.IndexFile)
	assert.Equal(t, "http://box.local", cfg.WebifURL)
	assert.Equal(t, "/media/usb/enigma2", cfg.Paths.LiveDir)
	assert.Equal(t, DefaultStagingDir, cfg.Paths.StagingDir, "unset keys keep defaults")
	assert.Equal(t, []string{"ciefp-E2-16E-13E", "ciefp-E2-75E-34W"}, cfg.Remote.NamePatterns)
	require.Len(t, cfg.CommonFiles, 1)
	assert.Equal(t, "lamedb5", cfg.CommonFiles[0].Name)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("index_file = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"LIVE_DIR", "/tmp/live")
	t.Setenv(EnvPrefix+"NAME_PATTERNS", "a, b ,,c")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/live", cfg.Paths.LiveDir)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Remote.NamePatterns)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty live dir", func(c *Config) { c.Paths.LiveDir = "" }},
		{"no patterns", func(c *Config) { c.Remote.NamePatterns = nil }},
		{"index with separator", func(c *Config) { c.IndexFile = "../bouquets.tv" }},
		{"common file with separator", func(c *Config) {
			c.CommonFiles = []CommonFile{{Name: "a/lamedb", Target: TargetLive}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
