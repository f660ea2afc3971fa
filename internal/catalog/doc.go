package catalog

// Package catalog locates the bundle archive in the remote GitHub contents
// listing and reports its version label.
