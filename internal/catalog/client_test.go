package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/model"
)

func testRemote(url string) config.Remote {
	return config.Remote{
		ListingURL:   url,
		NamePatterns: []string{"ciefp-E2-75E-34W"},
		Extension:    ".zip",
	}
}

func TestSelectRelease(t *testing.T) {
	remote := testRemote("")

	tests := []struct {
		name     string
		entries  []ListingEntry
		expected string
		found    bool
	}{
		{
			name: "first match in listing order wins",
			entries: []ListingEntry{
				{Name: "README.md", DownloadURL: "https://x/README.md"},
				{Name: "ciefp-E2-75E-34W-01.02.2025.zip", DownloadURL: "https://x/old.zip"},
				{Name: "ciefp-E2-75E-34W-15.03.2025.zip", DownloadURL: "https://x/new.zip"},
			},
			expected: "ciefp-E2-75E-34W-01.02.2025",
			found:    true,
		},
		{
			name: "pattern without extension is ignored",
			entries: []ListingEntry{
				{Name: "ciefp-E2-75E-34W-01.02.2025.tar.gz", DownloadURL: "https://x/a"},
			},
			found: false,
		},
		{
			name: "extension without pattern is ignored",
			entries: []ListingEntry{
				{Name: "ciefp-E2-16E-01.02.2025.zip", DownloadURL: "https://x/a"},
			},
			found: false,
		},
		{
			name:    "empty listing",
			entries: nil,
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release, ok := SelectRelease(tt.entries, remote)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, release.Version)
		})
	}
}

func TestSelectRelease_AnyPattern(t *testing.T) {
	remote := testRemote("")
	remote.NamePatterns = []string{"ciefp-E2-16E", "ciefp-E2-75E-34W"}

	release, ok := SelectRelease([]ListingEntry{
		{Name: "ciefp-E2-75E-34W-01.02.2025.zip", DownloadURL: "https://x/a.zip"},
	}, remote)

	require.True(t, ok)
	assert.Equal(t, "https://x/a.zip", release.ArchiveURL)
	assert.Equal(t, "ciefp-E2-75E-34W-01.02.2025.zip", release.Name)
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, AcceptHeader, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "README.md", "download_url": "https://x/README.md", "type": "file"},
			{"name": "ciefp-E2-75E-34W-15.03.2025.zip", "download_url": "https://x/bundle.zip", "type": "file"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), testRemote(server.URL))
	release, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://x/bundle.zip", release.ArchiveURL)
	assert.Equal(t, "ciefp-E2-75E-34W-15.03.2025", release.Version)
}

func TestClientFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    error
	}{
		{
			name: "no match",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"name": "other.zip", "download_url": "https://x/o.zip"}]`))
			},
			kind: model.ErrNotFound,
		},
		{
			name: "bad status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusForbidden)
			},
			kind: model.ErrNetwork,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message": "Not Found"`))
			},
			kind: model.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewClient(server.Client(), testRemote(server.URL)).Fetch(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestClientFetch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(nil, testRemote(url)).Fetch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNetwork))
}
