package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/bouquet-updater/internal/session"
)

// remoteKeys maps keyboard keys to remote-control commands. F1 to F3 stand
// in for the red, green and yellow keys.
var remoteKeys = map[fyne.KeyName]session.Command{
	fyne.KeyUp:     session.CmdUp,
	fyne.KeyDown:   session.CmdDown,
	fyne.KeyReturn: session.CmdToggle,
	fyne.KeyEnter:  session.CmdToggle,
	fyne.KeySpace:  session.CmdToggle,
	fyne.KeyF2:     session.CmdCopy,
	fyne.KeyF3:     session.CmdInstall,
	fyne.KeyF5:     session.CmdRefresh,
	fyne.KeyF1:     session.CmdExit,
	fyne.KeyEscape: session.CmdExit,
}

// KeyHandler turns key events into session commands
type KeyHandler struct {
	onCommand func(session.Command)
}

// NewKeyHandler creates a key handler
func NewKeyHandler(onCommand func(session.Command)) *KeyHandler {
	return &KeyHandler{onCommand: onCommand}
}

// CommandFor returns the command bound to key
func CommandFor(key fyne.KeyName) (session.Command, bool) {
	cmd, ok := remoteKeys[key]
	return cmd, ok
}

// TypedKey handles a key event; unbound keys are ignored
func (kh *KeyHandler) TypedKey(event *fyne.KeyEvent) {
	if event == nil || kh.onCommand == nil {
		return
	}
	if cmd, ok := CommandFor(event.Name); ok {
		kh.onCommand(cmd)
	}
}
