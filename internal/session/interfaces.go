package session

import (
	"time"
)

// View is the front-end the session reports to. Calls may arrive from any
// goroutine.
type View interface {
	SetStatus(msg Message)
	SetVersion(label string)
	SetCatalog(names []string)
	SetSelection(names []string)
	SetCursor(index int)
	// SetBusy is called when a fetch, copy or install starts or ends
	SetBusy(busy bool)
	ShowInfo(msg Message, timeout time.Duration)
	ShowError(msg Message)
	// Confirm asks a yes/no question. answer may be called from another
	// goroutine and after Confirm has returned.
	Confirm(msg Message, answer func(bool))
	Close()
}
