package download

// Package download streams the bundle archive over HTTP into a scratch file.
// It keeps a record of every download task and propagates progress to the
// front-end through an update callback.
