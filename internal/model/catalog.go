package model

// BouquetEntry is one displayable bouquet of a downloaded catalog
type BouquetEntry struct {
	Filename    string `json:"filename"`
	DisplayName string `json:"display_name"`
}

// CatalogSnapshot is the parsed content of one extracted archive. It is built
// once by the parser and never mutated afterwards.
type CatalogSnapshot struct {
	Root    string                  `json:"root"`
	Order   []string                `json:"order"`   // filenames in index order, duplicates kept
	Entries map[string]BouquetEntry `json:"entries"` // filename -> entry
	Display []string                `json:"display"` // display names in index order, de-duplicated
}

// NewCatalogSnapshot creates an empty snapshot rooted at root
func NewCatalogSnapshot(root string) *CatalogSnapshot {
	return &CatalogSnapshot{
		Root:    root,
		Order:   make([]string, 0),
		Entries: make(map[string]BouquetEntry),
		Display: make([]string, 0),
	}
}

// Len returns the number of displayable bouquets
func (c *CatalogSnapshot) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Display)
}

// DisplayName returns the display name recorded for filename
func (c *CatalogSnapshot) DisplayName(filename string) (string, bool) {
	if c == nil {
		return "", false
	}
	entry, ok := c.Entries[filename]
	return entry.DisplayName, ok
}

// Resolve maps a display name back to its filename. When several files share
// a display name the first one in index order wins.
func (c *CatalogSnapshot) Resolve(displayName string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, filename := range c.Order {
		if entry, ok := c.Entries[filename]; ok && entry.DisplayName == displayName {
			return filename, true
		}
	}
	return "", false
}

// DisplayAt returns the display name at index i of the display list
func (c *CatalogSnapshot) DisplayAt(i int) (string, bool) {
	if c == nil || i < 0 || i >= len(c.Display) {
		return "", false
	}
	return c.Display[i], true
}
