package bouquet

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/bouquet-updater/internal/model"
)

// Format markers
const (
	BouquetMarker = "FROM BOUQUET"
	NameMarker    = "#NAME"
	Quote         = `"`
)

// ParseIndex returns the quoted filenames of every index line containing
// BouquetMarker, in encounter order. Duplicates are kept.
func ParseIndex(r io.Reader) ([]string, error) {
	var filenames []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, BouquetMarker) {
			continue
		}
		if filename, ok := quotedValue(line); ok {
			filenames = append(filenames, filename)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return filenames, nil
}

// quotedValue extracts the text between the first pair of double quotes
func quotedValue(line string) (string, bool) {
	start := strings.Index(line, Quote)
	if start < 0 {
		return "", false
	}
	rest := line[start+1:]
	end := strings.Index(rest, Quote)
	if end < 0 {
		return "", false
	}
	value := rest[:end]
	return value, value != ""
}

// ReadDisplayName reads only the first line of a bouquet file. The line must
// start with NameMarker; the marker and surrounding whitespace are stripped.
func ReadDisplayName(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false
	}
	return displayNameFromLine(line)
}

func displayNameFromLine(line string) (string, bool) {
	if !strings.HasPrefix(line, NameMarker) {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimPrefix(line, NameMarker))
	return name, name != ""
}

// isBareName reports whether filename stays inside the directory it is joined with
func isBareName(filename string) bool {
	return filename != "." && filename != ".." && !strings.ContainsAny(filename, `/\`)
}

// ParseCatalog builds a snapshot from the index file indexName under root.
// Bouquet files that are missing or lack a valid "#NAME" line are skipped
// without error. When several files share a display name only the first one
// in index order is listed.
func ParseCatalog(root, indexName string) (*model.CatalogSnapshot, error) {
	indexPath := filepath.Join(root, indexName)

	file, err := os.Open(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.NewError(model.KindNotFound, "open index", indexPath, err)
		}
		return nil, model.NewError(model.KindIO, "open index", indexPath, err)
	}
	defer file.Close()

	order, err := ParseIndex(file)
	if err != nil {
		return nil, model.NewError(model.KindIO, "read index", indexPath, err)
	}

	snapshot := model.NewCatalogSnapshot(root)
	snapshot.Order = order

	for _, filename := range order {
		if _, seen := snapshot.Entries[filename]; seen {
			continue
		}
		if !isBareName(filename) {
			log.Printf("Skipping bouquet reference outside download root: %s", filename)
			continue
		}
		name, ok := ReadDisplayName(filepath.Join(root, filename))
		if !ok {
			continue
		}
		snapshot.Entries[filename] = model.BouquetEntry{Filename: filename, DisplayName: name}
	}

	shown := make(map[string]bool)
	for _, filename := range order {
		entry, ok := snapshot.Entries[filename]
		if !ok || shown[entry.DisplayName] {
			continue
		}
		shown[entry.DisplayName] = true
		snapshot.Display = append(snapshot.Display, entry.DisplayName)
	}

	if len(snapshot.Display) == 0 {
		return nil, model.NewError(model.KindEmptyCatalog, "parse catalog", indexPath, nil)
	}

	log.Printf("Parsed %d bouquets from %s (%d index entries)", len(snapshot.Display), indexPath, len(order))
	return snapshot, nil
}
