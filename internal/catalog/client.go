package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/model"
)

// Request constants
const (
	AcceptHeader    = "application/vnd.github+json"
	UserAgentHeader = "bouquet-updater"
)

// ListingEntry is one object of the GitHub contents API response
type ListingEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// Client queries the remote listing endpoint
type Client struct {
	httpClient *http.Client
	remote     config.Remote
}

// NewClient creates a listing client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, remote config.Remote) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, remote: remote}
}

// Fetch returns the first listing entry, in listing order, whose name contains
// one of the configured patterns and ends with the archive extension
func (c *Client) Fetch(ctx context.Context) (model.Release, error) {
	url := c.remote.ListingURL
	log.Printf("Fetching file list from %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Release{}, model.NewError(model.KindNetwork, "build listing request", url, err)
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", UserAgentHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Release{}, model.NewError(model.KindNetwork, "fetch listing", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Release{}, model.NewError(model.KindNetwork, "fetch listing", url,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	var entries []ListingEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return model.Release{}, model.NewError(model.KindNetwork, "decode listing", url, err)
	}

	release, ok := SelectRelease(entries, c.remote)
	if !ok {
		return model.Release{}, model.NewError(model.KindNotFound, "find archive", url,
			fmt.Errorf("no %s entry matching %v", c.remote.Extension, c.remote.NamePatterns))
	}

	log.Printf("Selected archive %s (version %s)", release.Name, release.Version)
	return release, nil
}

// SelectRelease picks the first matching entry. No sorting by recency is done.
func SelectRelease(entries []ListingEntry, remote config.Remote) (model.Release, bool) {
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name, remote.Extension) || !matchesAny(entry.Name, remote.NamePatterns) {
			continue
		}
		if entry.DownloadURL == "" {
			continue
		}
		return model.Release{
			Name:       entry.Name,
			ArchiveURL: entry.DownloadURL,
			Version:    strings.TrimSuffix(entry.Name, remote.Extension),
		}, true
	}
	return model.Release{}, false
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
