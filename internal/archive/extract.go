package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/platform"
)

// Extract unpacks the zip file at zipPath into destDir. Entries that would
// land outside destDir are rejected.
func Extract(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return model.NewError(model.KindArchive, "open archive", zipPath, err)
	}
	defer r.Close()

	dest, err := filepath.Abs(destDir)
	if err != nil {
		return model.NewError(model.KindIO, "resolve extraction directory", destDir, err)
	}

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
			return model.NewError(model.KindArchive, "extract", zipPath,
				fmt.Errorf("illegal file path in archive: %s", f.Name))
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, platform.DefaultDirPermissions); err != nil {
				return model.NewError(model.KindIO, "create directory", target, err)
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), platform.DefaultDirPermissions); err != nil {
		return model.NewError(model.KindIO, "create directory", filepath.Dir(target), err)
	}

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = platform.DefaultFilePermissions
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return model.NewError(model.KindIO, "create file", target, err)
	}
	defer out.Close()

	rc, err := f.Open()
	if err != nil {
		return model.NewError(model.KindArchive, "open archive entry", f.Name, err)
	}
	defer rc.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return model.NewError(model.KindArchive, "extract entry", f.Name, err)
	}
	return out.Close()
}
