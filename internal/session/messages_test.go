package session

import (
	"errors"
	"testing"

	"github.com/ytget/bouquet-updater/internal/model"
)

func TestMessageFormat(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		format   string
		expected string
	}{
		{"default text", NewMessage(MsgNoSelection), "", "No bouquets selected!"},
		{"default with args", NewMessage(MsgLoaded, 12), "", "12 bouquets loaded"},
		{"custom format", NewMessage(MsgLoaded, 3), "Učitano buketa: %d", "Učitano buketa: 3"},
		{"unknown key", NewMessage("nope"), "", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Format(tt.format); got != tt.expected {
				t.Errorf("Format() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{model.NewError(model.KindNetwork, "download", "u", errors.New("x")), MsgErrorNetwork},
		{model.NewError(model.KindIO, "copy bouquet", "a.tv", errors.New("x")), MsgErrorIO},
		{model.NewError(model.KindEmptyCatalog, "parse catalog", "idx", nil), MsgErrorEmptyCatalog},
		{errors.New("plain"), MsgErrorGeneric},
	}

	for _, tt := range tests {
		if got := ErrorMessage(tt.err).Key; got != tt.expected {
			t.Errorf("ErrorMessage(%v) key = %s, expected %s", tt.err, got, tt.expected)
		}
	}
}

func TestVersionLabel(t *testing.T) {
	release := model.Release{Name: "bundle.zip"}

	if got := VersionLabel(release, nil); got != "Version: (bundle.zip)" {
		t.Errorf("unexpected label %q", got)
	}
	if got := VersionLabel(release, model.NewError(model.KindNotFound, "find", "", nil)); got != VersionNotAvailable {
		t.Errorf("unexpected label %q", got)
	}
	if got := VersionLabel(release, errors.New("boom")); got != VersionFetchError {
		t.Errorf("unexpected label %q", got)
	}
}
