package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bouquet-updater/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// taskDetailText returns "size · speed · ETA" for a running download
func taskDetailText(task *model.DownloadTask) string {
	size := formatFileSize(task.BytesDone)
	if task.BytesTotal > 0 {
		size += " / " + formatFileSize(task.BytesTotal)
	}

	parts := []string{size}
	if task.Speed != "" {
		parts = append(parts, task.Speed)
	}
	if task.Status == model.TaskStatusDownloading {
		parts = append(parts, task.GetETAString())
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// DownloadBar shows the progress of the current bundle download. It stays
// hidden until the first task update.
type DownloadBar struct {
	widget.BaseWidget

	localization *Localization

	nameLabel   *widget.Label
	statusLabel *widget.Label
	detailLabel *widget.Label
	progress    *widget.ProgressBar
}

// NewDownloadBar creates a download bar
func NewDownloadBar(localization *Localization) *DownloadBar {
	db := &DownloadBar{localization: localization}

	db.nameLabel = widget.NewLabel("")
	db.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	db.nameLabel.Truncation = fyne.TextTruncateEllipsis
	db.statusLabel = widget.NewLabel("")
	db.statusLabel.Alignment = fyne.TextAlignTrailing
	db.detailLabel = widget.NewLabel(DashPlaceholder)
	db.detailLabel.TextStyle = fyne.TextStyle{Monospace: true}
	db.progress = widget.NewProgressBar()

	db.ExtendBaseWidget(db)
	db.Hide()
	return db
}

// CreateRenderer implements fyne.Widget
func (db *DownloadBar) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, db.statusLabel, db.nameLabel)
	return widget.NewSimpleRenderer(container.NewVBox(header, db.progress, db.detailLabel))
}

// UpdateTask renders task. Must run on the UI thread.
func (db *DownloadBar) UpdateTask(task *model.DownloadTask) {
	if task == nil {
		return
	}

	db.nameLabel.SetText(db.localization.GetText(KeyDownloading) + " " + task.GetDisplayName())
	db.progress.SetValue(task.Progress)
	db.detailLabel.SetText(taskDetailText(task))

	switch task.Status {
	case model.TaskStatusError:
		db.statusLabel.Importance = widget.DangerImportance
	case model.TaskStatusCompleted:
		db.statusLabel.Importance = widget.SuccessImportance
	default:
		db.statusLabel.Importance = widget.MediumImportance
	}
	db.statusLabel.SetText(task.Status.String())

	db.Show()
	db.Refresh()
}
