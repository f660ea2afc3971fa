package bouquet

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/ytget/bouquet-updater/internal/model"
)

// ReconcileIndex appends to the live index the downloaded-index line of every
// filename the live index does not mention yet (substring match). Lines are
// appended at the end of the file and the file is rewritten only when at
// least one line was added. A missing live index is skipped.
func ReconcileIndex(livePath, downloadedPath string, filenames []string) ([]string, error) {
	live, err := os.ReadFile(livePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Live index %s not found, skipping index update", livePath)
			return nil, nil
		}
		return nil, model.NewError(model.KindIO, "read live index", livePath, err)
	}

	var missing []string
	for _, filename := range filenames {
		if !bytes.Contains(live, []byte(filename)) {
			missing = append(missing, filename)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	downloaded, err := readLines(downloadedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Downloaded index %s not found, skipping index update", downloadedPath)
			return nil, nil
		}
		return nil, model.NewError(model.KindIO, "read downloaded index", downloadedPath, err)
	}

	updated := live
	var added []string
	for _, filename := range missing {
		line, ok := firstLineContaining(downloaded, filename)
		if !ok {
			continue
		}
		if len(updated) > 0 && updated[len(updated)-1] != '\n' {
			updated = append(updated, '\n')
		}
		updated = append(updated, line...)
		updated = append(updated, '\n')
		added = append(added, filename)
	}
	if len(added) == 0 {
		return nil, nil
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(livePath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(livePath, updated, mode); err != nil {
		return nil, model.NewError(model.KindIO, "write live index", livePath, err)
	}

	log.Printf("Added %d entries to %s", len(added), livePath)
	return added, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func firstLineContaining(lines []string, needle string) (string, bool) {
	for _, line := range lines {
		if strings.Contains(line, needle) {
			return line, true
		}
	}
	return "", false
}
