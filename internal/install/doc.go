package install

// Package install copies selected bouquets into the staging directory and
// from there into the receiver's live configuration.
//
// Live files are replaced by deleting the old file and copying the new one,
// so a crash in between leaves the destination missing.
