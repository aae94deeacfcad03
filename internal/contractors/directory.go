package contractors

import (
	"context"

	"github.com/jonathan/axis-portal/internal/types"
	"go.uber.org/zap"
)

// Lister fetches contractors ordered by rating, highest first.
type Lister interface {
	ListContractors(ctx context.Context) ([]types.Contractor, error)
}

// Source tells where a loaded list came from.
type Source string

// Sources of a directory listing.
const (
	SourceStore  Source = "store"
	SourceSample Source = "sample"
)

// Directory loads the contractor list for one page view.
type Directory struct {
	lister Lister
}

// NewDirectory creates a directory backed by lister. A nil lister always
// yields the sample list.
func NewDirectory(lister Lister) *Directory {
	return &Directory{lister: lister}
}

// Load fetches the list once. An empty result or a fetch error falls back to
// SampleContractors; the error is logged, never returned.
func (d *Directory) Load(ctx context.Context) ([]types.Contractor, Source) {
	if d.lister == nil {
		return SampleContractors(), SourceSample
	}

	list, err := d.lister.ListContractors(ctx)
	if err != nil {
		zap.L().Warn("contractor fetch failed, using sample directory", zap.Error(err))
		return SampleContractors(), SourceSample
	}
	if len(list) == 0 {
		return SampleContractors(), SourceSample
	}
	return list, SourceStore
}
