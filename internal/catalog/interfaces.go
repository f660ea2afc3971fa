package catalog

import (
	"context"

	"github.com/ytget/bouquet-updater/internal/model"
)

// Fetcher finds the current bundle release in the remote listing
type Fetcher interface {
	Fetch(ctx context.Context) (model.Release, error)
}
