package model

// Release is the archive chosen from the remote listing
type Release struct {
	Name       string `json:"name"`
	ArchiveURL string `json:"download_url"`
	Version    string `json:"version"`
}
