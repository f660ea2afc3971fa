package model

import (
	"fmt"
	"path"
	"time"
)

// DownloadTask represents a single archive download
type DownloadTask struct {
	ID         string
	URL        string
	Status     TaskStatus
	Progress   float64   // 0.0 to 1.0
	Percent    int       // 0 to 100
	Speed      string    // human readable speed (e.g., "1.2MB/s")
	ETASec     int       // ETA in seconds, -1 if unknown
	BytesDone  int64     // bytes written so far
	BytesTotal int64     // Content-Length, -1 if unknown
	LastError  string    // last error message if any
	OutputPath string    // path of the scratch archive
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayName returns the archive file name taken from the URL, or the
// output path base name when the URL has no usable path
func (dt *DownloadTask) GetDisplayName() string {
	if dt.URL != "" {
		if name := path.Base(dt.URL); name != "." && name != "/" {
			return name
		}
	}
	if dt.OutputPath != "" {
		return path.Base(dt.OutputPath)
	}
	return ""
}

// UpdateProgress records bytes written and recomputes percent, speed and ETA
func (dt *DownloadTask) UpdateProgress(done int64, now time.Time) {
	dt.BytesDone = done

	if dt.BytesTotal > 0 {
		dt.Progress = float64(done) / float64(dt.BytesTotal)
		if dt.Progress > 1.0 {
			dt.Progress = 1.0
		}
		dt.Percent = int(dt.Progress * 100)
	}

	elapsed := now.Sub(dt.StartedAt).Seconds()
	if elapsed <= 0 {
		return
	}
	bytesPerSecond := float64(done) / elapsed
	dt.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)

	if dt.BytesTotal > 0 && bytesPerSecond > 0 {
		dt.ETASec = int(float64(dt.BytesTotal-done) / bytesPerSecond)
	}
}
