package ui

// Package ui contains the Fyne front-end: a two-pane bouquet picker with
// colour buttons, a download bar and the settings dialog. RootUI implements
// session.View; every update coming from the session goroutine is marshalled
// onto the UI thread with fyne.Do.
