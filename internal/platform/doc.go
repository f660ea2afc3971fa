package platform

// Package platform contains filesystem glue shared by the pipeline: directory
// helpers, mode-preserving copies, delete-then-copy replacement and
// cross-filesystem directory moves.
