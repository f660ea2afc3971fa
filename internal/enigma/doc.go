package enigma

// Package enigma asks the receiver to reload its service database and
// bouquets after new files were installed.
