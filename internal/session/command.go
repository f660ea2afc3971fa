package session

// Command is an abstract key press sent by a front-end
type Command int

const (
	CmdUp      Command = iota
	CmdDown            // move cursor
	CmdToggle          // ok: add or remove the focused bouquet
	CmdCopy            // green: stage the selection
	CmdInstall         // yellow: install the selection
	CmdRefresh         // download the bundle again
	CmdExit            // red / cancel
)

var commandNames = map[Command]string{
	CmdUp:      "up",
	CmdDown:    "down",
	CmdToggle:  "toggle",
	CmdCopy:    "copy",
	CmdInstall: "install",
	CmdRefresh: "refresh",
	CmdExit:    "exit",
}

// String returns the command name
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}
