package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/session"
)

// styler is satisfied by gookit/color themes, styles and tags
type styler interface {
	Sprintf(format string, a ...any) string
}

var (
	colInfo    styler = color.Info
	colWarn    styler = color.Warn
	colError   styler = color.Error
	colSuccess styler = color.HEX(ColorGreenHex)
	colNote    styler = color.Tag("notice")
)

// Terminal colours, matching the GUI buttons
const (
	ColorGreenHex = "#1F771F"
)

// Terminal is a line-oriented session.View
type Terminal struct {
	out       io.Writer
	errOut    io.Writer
	in        *bufio.Reader
	assumeYes bool

	mu         sync.Mutex
	bar        *progressbar.ProgressBar
	barTaskID  string
	catalog    []string
	selection  []string
	lastStatus session.Message
	errors     int
	closed     bool
}

// NewTerminal creates a terminal view. With assumeYes every confirmation is
// answered yes without reading in.
func NewTerminal(in io.Reader, out, errOut io.Writer, assumeYes bool) *Terminal {
	return &Terminal{
		out:       out,
		errOut:    errOut,
		in:        bufio.NewReader(in),
		assumeYes: assumeYes,
	}
}

// OnTaskUpdate renders download progress. Register it with the downloader's
// SetUpdateCallback.
func (t *Terminal) OnTaskUpdate(task *model.DownloadTask) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil || t.barTaskID != task.ID {
		t.bar = progressbar.NewOptions64(task.BytesTotal,
			progressbar.OptionSetWriter(t.out),
			progressbar.OptionSetDescription(task.GetDisplayName()),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(t.out) }),
		)
		t.barTaskID = task.ID
	}

	if task.BytesDone > 0 {
		_ = t.bar.Set64(task.BytesDone)
	}
	if task.Status.IsFinished() {
		if task.Status == model.TaskStatusCompleted {
			_ = t.bar.Finish()
		} else {
			_ = t.bar.Exit()
		}
		t.bar = nil
	}
}

// SetStatus implements session.View
func (t *Terminal) SetStatus(msg session.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastStatus = msg
	fmt.Fprintln(t.out, styleFor(msg.Key).Sprintf("%s", msg.String()))
}

// SetVersion implements session.View
func (t *Terminal) SetVersion(label string) {
	fmt.Fprintln(t.out, colNote.Sprintf("%s", label))
}

// SetCatalog implements session.View
func (t *Terminal) SetCatalog(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.catalog = append([]string(nil), names...)
}

// SetSelection implements session.View
func (t *Terminal) SetSelection(names []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection = append([]string(nil), names...)
}

// SetCursor implements session.View; the terminal has no cursor
func (t *Terminal) SetCursor(int) {}

// SetBusy implements session.View; progress is reported by status lines
func (t *Terminal) SetBusy(bool) {}

// ShowInfo implements session.View
func (t *Terminal) ShowInfo(msg session.Message, _ time.Duration) {
	fmt.Fprintln(t.out, colSuccess.Sprintf("%s", msg.String()))
}

// ShowError implements session.View
func (t *Terminal) ShowError(msg session.Message) {
	t.mu.Lock()
	t.errors++
	t.mu.Unlock()
	fmt.Fprintln(t.errOut, colError.Sprintf("%s", msg.String()))
}

// Confirm implements session.View. Empty input counts as yes; read errors
// (e.g. Ctrl+D) count as no.
func (t *Terminal) Confirm(msg session.Message, answer func(bool)) {
	if t.assumeYes {
		fmt.Fprintln(t.out, colNote.Sprintf("%s [Y/n]: y", msg.String()))
		answer(true)
		return
	}

	prompt := fmt.Sprintf("%s [Y/n]: ", msg.String())
	for {
		fmt.Fprint(t.out, colInfo.Sprintf("%s", prompt))
		response, err := t.in.ReadString('\n')
		if err != nil && response == "" {
			fmt.Fprintln(t.out)
			answer(false)
			return
		}
		response = strings.ToLower(strings.TrimSpace(response))

		switch response {
		case "", "y", "yes":
			answer(true)
			return
		case "n", "no":
			answer(false)
			return
		}
		fmt.Fprintln(t.out, colWarn.Sprintf("Invalid input."))
		if err != nil {
			answer(false)
			return
		}
	}
}

// Close implements session.View
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

// Failed reports whether an error dialog was shown
func (t *Terminal) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errors > 0
}

// PrintCatalog writes the numbered catalog, marking selected entries
func (t *Terminal) PrintCatalog() {
	t.mu.Lock()
	defer t.mu.Unlock()

	selected := make(map[string]bool, len(t.selection))
	for _, name := range t.selection {
		selected[name] = true
	}
	for i, name := range t.catalog {
		mark := " "
		if selected[name] {
			mark = "*"
		}
		fmt.Fprintf(t.out, "%s %3d  %s\n", mark, i+1, name)
	}
}

// styleFor picks the colour of a status line by message key
func styleFor(key string) styler {
	switch {
	case strings.HasPrefix(key, "error."):
		return colError
	case key == session.MsgInstallCancelled || key == session.MsgNothingInstalled:
		return colWarn
	case key == session.MsgCopied || key == session.MsgInstalled || key == session.MsgLoaded:
		return colSuccess
	default:
		return colInfo
	}
}
