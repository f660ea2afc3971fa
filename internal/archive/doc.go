package archive

// Package archive unpacks the downloaded bundle and swaps it into the
// download root.
//
// The swap removes the previous root before the new tree is moved into
// place, so for a short window no root exists. Readers treat a missing
// root as not found.
