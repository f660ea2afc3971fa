package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/model"
)

const sportIndexLine = `#SERVICE 1:7:1:0:0:0:0:0:0:0:FROM BOUQUET "sport.tv" ORDER BY bouquet`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// setup lays out a download root with one bouquet and returns the matching snapshot
func setup(t *testing.T) (*config.Config, *model.CatalogSnapshot) {
	t.Helper()
	cfg := config.ForRoot(t.TempDir())
	root := cfg.Paths.DownloadRoot
	writeFile(t, filepath.Join(root, "bouquets.tv"), "#NAME User - Bouquets (TV)\n"+sportIndexLine+"\n")
	writeFile(t, filepath.Join(root, "sport.tv"), "#NAME Sport\nnew content\n")

	snapshot := model.NewCatalogSnapshot(root)
	snapshot.Order = []string{"sport.tv"}
	snapshot.Entries["sport.tv"] = model.BouquetEntry{Filename: "sport.tv", DisplayName: "Sport"}
	snapshot.Display = []string{"Sport"}
	return cfg, snapshot
}

func selectionOf(names ...string) *model.SelectionSet {
	selection := model.NewSelectionSet()
	for _, name := range names {
		selection.Toggle(name)
	}
	return selection
}

func TestStage_SportScenario(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, cfg.LiveIndexPath(), "#NAME User - Bouquets (TV)\n")

	staged, err := NewStager(cfg).Stage(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.Equal(t, []string{"sport.tv"}, staged)

	assert.Equal(t, "#NAME Sport\nnew content\n", readFile(t, filepath.Join(cfg.Paths.StagingDir, "sport.tv")))
	assert.Equal(t, "#NAME User - Bouquets (TV)\n"+sportIndexLine+"\n", readFile(t, cfg.LiveIndexPath()))
}

func TestStage_AlreadyIndexedIsByteIdentical(t *testing.T) {
	cfg, snapshot := setup(t)
	original := "#NAME User - Bouquets (TV)\n" + sportIndexLine
	writeFile(t, cfg.LiveIndexPath(), original)

	_, err := NewStager(cfg).Stage(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.Equal(t, original, readFile(t, cfg.LiveIndexPath()))
}

func TestStage_SkipsStaleAndMissing(t *testing.T) {
	cfg, snapshot := setup(t)
	snapshot.Order = append(snapshot.Order, "gone.tv")
	snapshot.Entries["gone.tv"] = model.BouquetEntry{Filename: "gone.tv", DisplayName: "Gone"}

	staged, err := NewStager(cfg).Stage(selectionOf("Unknown", "Gone"), snapshot)
	require.NoError(t, err)
	assert.Empty(t, staged)
	assert.DirExists(t, cfg.Paths.StagingDir)
}

func TestStage_StagingDirIsAFile(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, cfg.Paths.StagingDir, "not a directory")

	_, err := NewStager(cfg).Stage(selectionOf("Sport"), snapshot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrIO))
}

func TestInstall_ReplacesExistingDestination(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, filepath.Join(cfg.Paths.LiveDir, "sport.tv"), "old content")

	installed, err := NewInstaller(cfg, nil).Install(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.Equal(t, []string{"sport.tv"}, installed)

	entries, err := os.ReadDir(cfg.Paths.LiveDir)
	require.NoError(t, err)
	var matches int
	for _, entry := range entries {
		if entry.Name() == "sport.tv" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
	assert.Equal(t, "#NAME Sport\nnew content\n", readFile(t, filepath.Join(cfg.Paths.LiveDir, "sport.tv")))
}

func TestInstall_PrefersStagedCopy(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, filepath.Join(cfg.Paths.StagingDir, "sport.tv"), "staged content")

	_, err := NewInstaller(cfg, nil).Install(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.Equal(t, "staged content", readFile(t, filepath.Join(cfg.Paths.LiveDir, "sport.tv")))
}

func TestInstall_CommonFiles(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, filepath.Join(cfg.Paths.DownloadRoot, config.ServiceListFile), "eDVB services /4/")
	writeFile(t, filepath.Join(cfg.Paths.DownloadRoot, config.SatellitesFile), "<satellites/>")

	installed, err := NewInstaller(cfg, nil).Install(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sport.tv", config.ServiceListFile, config.SatellitesFile}, installed)

	assert.FileExists(t, filepath.Join(cfg.Paths.LiveDir, config.ServiceListFile))
	assert.FileExists(t, filepath.Join(cfg.Paths.SatellitesDir, config.SatellitesFile))
}

func TestInstall_NothingResolvable(t *testing.T) {
	cfg, snapshot := setup(t)

	installed, err := NewInstaller(cfg, nil).Install(selectionOf("Unknown"), snapshot)
	require.NoError(t, err)
	assert.Empty(t, installed)
}

func TestInstall_UpdatesLiveIndex(t *testing.T) {
	cfg, snapshot := setup(t)
	writeFile(t, cfg.LiveIndexPath(), "#NAME User - Bouquets (TV)\n")

	_, err := NewInstaller(cfg, nil).Install(selectionOf("Sport"), snapshot)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, cfg.LiveIndexPath()), sportIndexLine)
}

type recordingReloader struct {
	calls      []string
	serviceErr error
	bouquetErr error
}

func (r *recordingReloader) ReloadServiceList() error {
	r.calls = append(r.calls, "servicelist")
	return r.serviceErr
}

func (r *recordingReloader) ReloadBouquets() error {
	r.calls = append(r.calls, "bouquets")
	return r.bouquetErr
}

func TestReload(t *testing.T) {
	cfg := config.ForRoot(t.TempDir())

	reloader := &recordingReloader{}
	require.NoError(t, NewInstaller(cfg, reloader).Reload())
	assert.Equal(t, []string{"servicelist", "bouquets"}, reloader.calls)

	failing := &recordingReloader{serviceErr: errors.New("boom")}
	err := NewInstaller(cfg, failing).Reload()
	require.Error(t, err)
	assert.Equal(t, []string{"servicelist"}, failing.calls)
}
