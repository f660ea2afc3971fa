package ui

import (
	"testing"

	"github.com/ytget/bouquet-updater/internal/model"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.bytes); got != tt.expected {
			t.Errorf("formatFileSize(%d) = %s, expected %s", tt.bytes, got, tt.expected)
		}
	}
}

func TestTaskDetailText(t *testing.T) {
	tests := []struct {
		name     string
		task     *model.DownloadTask
		expected string
	}{
		{
			name:     "known size while downloading",
			task:     &model.DownloadTask{Status: model.TaskStatusDownloading, BytesDone: 1024, BytesTotal: 2048, Speed: "1.0MB/s", ETASec: 5},
			expected: "1.0 KB / 2.0 KB · 1.0MB/s · 00:05",
		},
		{
			name:     "unknown size completed",
			task:     &model.DownloadTask{Status: model.TaskStatusCompleted, BytesDone: 512, BytesTotal: -1},
			expected: "512 B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := taskDetailText(tt.task); got != tt.expected {
				t.Errorf("taskDetailText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
