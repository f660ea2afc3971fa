package model

// Package model defines domain data structures shared across the app: the
// parsed bouquet catalog, the user's selection, download tasks, session state
// and the error taxonomy. Catalog snapshots are immutable once built and are
// replaced wholesale on every download.
