package bouquet

// Package bouquet reads the Enigma2 bouquet formats: the index file listing
// bouquet files through "FROM BOUQUET" directives, and the "#NAME" header of
// each bouquet file. It also keeps a live index in sync with a downloaded one.
