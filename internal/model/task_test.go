package model

import (
	"testing"
	"time"
)

func TestDownloadTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		result := task.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		url        string
		outputPath string
		expected   string
	}{
		{"https://raw.githubusercontent.com/ciefp/repo/main/ciefp-E2-75E-34W-01.01.2025.zip", "", "ciefp-E2-75E-34W-01.01.2025.zip"},
		{"", "/tmp/latest.zip", "latest.zip"},
		{"", "", ""},
	}

	for _, test := range tests {
		task := &DownloadTask{URL: test.url, OutputPath: test.outputPath}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with url='%s', output='%s' = '%s', expected '%s'",
				test.url, test.outputPath, result, test.expected)
		}
	}
}

func TestDownloadTask_UpdateProgress(t *testing.T) {
	start := time.Now()
	task := &DownloadTask{
		BytesTotal: 4 * 1024 * 1024,
		ETASec:     -1,
		StartedAt:  start,
	}

	task.UpdateProgress(1024*1024, start.Add(time.Second))

	if task.Percent != 25 {
		t.Errorf("Expected 25 percent, got %d", task.Percent)
	}
	if task.Speed != "1.0MB/s" {
		t.Errorf("Expected speed 1.0MB/s, got %s", task.Speed)
	}
	if task.ETASec != 3 {
		t.Errorf("Expected ETA 3s, got %d", task.ETASec)
	}
}

func TestDownloadTask_UpdateProgressUnknownTotal(t *testing.T) {
	start := time.Now()
	task := &DownloadTask{BytesTotal: -1, ETASec: -1, StartedAt: start}

	task.UpdateProgress(2048, start.Add(time.Second))

	if task.Percent != 0 {
		t.Errorf("Expected percent to stay 0 with unknown total, got %d", task.Percent)
	}
	if task.ETASec != -1 {
		t.Errorf("Expected ETA to stay unknown, got %d", task.ETASec)
	}
	if task.BytesDone != 2048 {
		t.Errorf("Expected BytesDone 2048, got %d", task.BytesDone)
	}
}
