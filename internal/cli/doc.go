package cli

// Package cli is the terminal front-end. Terminal implements session.View
// with coloured output, a download progress bar and a stdin yes/no prompt.
