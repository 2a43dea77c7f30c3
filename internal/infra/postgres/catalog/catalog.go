package infra_postgres_catalog

import (
	"context"
	"fmt"

	"github.com/indicai/core/internal/model"
	"github.com/jmoiron/sqlx"
)

// Repository stores the fallback catalog served when live content
// providers are unreachable. Rows come from the popular-batch ingest.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, item model.MediaItem) error {
	itemDB := FromDomain(item)

	query := `
		INSERT INTO catalog_items (id, kind, title, year, rating, genres, cast_members, director, description, image_link)
		VALUES (:id, :kind, :title, :year, :rating, :genres, :cast_members, :director, :description, :image_link)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			rating = EXCLUDED.rating,
			genres = EXCLUDED.genres,
			cast_members = EXCLUDED.cast_members,
			director = EXCLUDED.director,
			description = EXCLUDED.description,
			image_link = EXCLUDED.image_link
	`

	_, err := r.db.NamedExecContext(ctx, query, itemDB)
	if err != nil {
		return fmt.Errorf("failed to store catalog item: %w", err)
	}

	return nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]model.MediaItem, error) {
	query := `
		SELECT id, kind, title, year, rating, genres, cast_members, director, description, image_link
		FROM catalog_items
	`

	var itemsDB []CatalogItemDB
	err := r.db.SelectContext(ctx, &itemsDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	items := make([]model.MediaItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = itemDB.ToDomain()
	}

	return items, nil
}
