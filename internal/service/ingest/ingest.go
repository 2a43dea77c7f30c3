package ingest

import (
	"context"
	"log/slog"

	"github.com/indicai/core/internal/model"
)

//go:generate mockery --name=Catalog --output=./mocks/ingest/catalog --filename=catalog.go
type Catalog interface {
	Store(ctx context.Context, item model.MediaItem) error
}

type Source interface {
	FetchPopularContent(ctx context.Context) ([]model.MediaItem, error)
}

// WriteThrough decorates a popular-content source: every successfully
// fetched batch is upserted into the fallback catalog, so offline
// sampling draws from the freshest content seen. Upsert failures are
// logged and never fail the fetch.
type WriteThrough struct {
	source  Source
	catalog Catalog

	logger *slog.Logger
}

type Option func(*WriteThrough)

func WithLogger(logger *slog.Logger) Option {
	return func(w *WriteThrough) {
		w.logger = logger
	}
}

func New(source Source, catalog Catalog, opts ...Option) *WriteThrough {
	w := &WriteThrough{
		source:  source,
		catalog: catalog,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *WriteThrough) FetchPopularContent(ctx context.Context) ([]model.MediaItem, error) {
	items, err := w.source.FetchPopularContent(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if serr := w.catalog.Store(ctx, item); serr != nil {
			w.logger.Warn("failed to upsert catalog item",
				slog.String("item_id", item.ID),
				slog.String("error", serr.Error()),
			)
		}
	}

	return items, nil
}
