package archive

import (
	"context"
)

// BundleInstaller fetches a bundle archive and makes it the current download root
type BundleInstaller interface {
	Install(ctx context.Context, url string) (string, error)
}
