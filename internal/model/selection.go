package model

// SelectionSet is the ordered set of display names the user toggled on.
// Insertion order is toggle order.
type SelectionSet struct {
	items []string
}

// NewSelectionSet creates an empty selection
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{items: make([]string, 0)}
}

// Toggle removes name if selected, otherwise appends it.
// It reports whether name is selected afterwards.
func (s *SelectionSet) Toggle(name string) bool {
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, name)
	return true
}

// Contains reports whether name is selected
func (s *SelectionSet) Contains(name string) bool {
	for _, item := range s.items {
		if item == name {
			return true
		}
	}
	return false
}

// Items returns a copy of the selected names in toggle order
func (s *SelectionSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected names
func (s *SelectionSet) Len() int {
	return len(s.items)
}

// IsEmpty reports whether nothing is selected
func (s *SelectionSet) IsEmpty() bool {
	return len(s.items) == 0
}

// Resolve maps name to a filename of snapshot; stale or unknown names are not found
func (s *SelectionSet) Resolve(name string, snapshot *CatalogSnapshot) (string, bool) {
	return snapshot.Resolve(name)
}

// ResolveAll resolves every selected name in toggle order, skipping the ones
// the snapshot does not know
func (s *SelectionSet) ResolveAll(snapshot *CatalogSnapshot) []string {
	filenames := make([]string, 0, len(s.items))
	for _, name := range s.items {
		if filename, ok := snapshot.Resolve(name); ok {
			filenames = append(filenames, filename)
		}
	}
	return filenames
}
