package enigma

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// OpenWebif endpoint constants
const (
	ReloadPath      = "/web/servicelistreload"
	ModeParam       = "mode"
	ModeServiceList = "1"
	ModeBouquets    = "2"
	DefaultTimeout  = 10 * time.Second
	MaxResponseSize = 64 * 1024
	StateTrue       = "true"
)

// simpleXMLResult is the e2simplexmlresult document returned by OpenWebif
type simpleXMLResult struct {
	State     string `xml:"e2state"`
	StateText string `xml:"e2statetext"`
}

// WebifReloader triggers reloads through the OpenWebif HTTP API on the box
type WebifReloader struct {
	baseURL    string
	httpClient *http.Client
}

// NewWebifReloader creates a reloader for the OpenWebif instance at baseURL.
// A nil client gets one with DefaultTimeout.
func NewWebifReloader(baseURL string, httpClient *http.Client) *WebifReloader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &WebifReloader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ReloadServiceList reloads lamedb
func (w *WebifReloader) ReloadServiceList() error {
	return w.reload(ModeServiceList)
}

// ReloadBouquets reloads the bouquet files
func (w *WebifReloader) ReloadBouquets() error {
	return w.reload(ModeBouquets)
}

func (w *WebifReloader) reload(mode string) error {
	url := fmt.Sprintf("%s%s?%s=%s", w.baseURL, ReloadPath, ModeParam, mode)
	log.Printf("Requesting service list reload: %s", url)

	resp, err := w.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("reload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("reload request failed: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read reload response: %w", err)
	}

	var result simpleXMLResult
	if err := xml.Unmarshal(body, &result); err != nil {
		// Older images answer with an empty body
		if len(strings.TrimSpace(string(body))) == 0 {
			return nil
		}
		return fmt.Errorf("failed to parse reload response: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(result.State), StateTrue) {
		return fmt.Errorf("receiver refused reload: %s", strings.TrimSpace(result.StateText))
	}
	return nil
}
