package infra_postgres_catalog

import (
	"github.com/indicai/core/internal/model"
	"github.com/lib/pq"
)

type CatalogItemDB struct {
	ID          string         `db:"id"`
	Kind        string         `db:"kind"`
	Title       string         `db:"title"`
	Year        int            `db:"year"`
	Rating      float64        `db:"rating"`
	Genres      pq.StringArray `db:"genres"`
	CastMembers pq.StringArray `db:"cast_members"`
	Director    string         `db:"director"`
	Description string         `db:"description"`
	ImageLink   string         `db:"image_link"`
}

func (c *CatalogItemDB) ToDomain() model.MediaItem {
	return model.MediaItem{
		ID:          c.ID,
		Kind:        model.MediaKind(c.Kind),
		Title:       c.Title,
		Year:        c.Year,
		Rating:      c.Rating,
		Genres:      []string(c.Genres),
		Cast:        []string(c.CastMembers),
		Director:    c.Director,
		Description: c.Description,
		ImageLink:   c.ImageLink,
	}
}

func FromDomain(item model.MediaItem) CatalogItemDB {
	return CatalogItemDB{
		ID:          item.ID,
		Kind:        string(item.Kind),
		Title:       item.Title,
		Year:        item.Year,
		Rating:      item.Rating,
		Genres:      pq.StringArray(item.Genres),
		CastMembers: pq.StringArray(item.Cast),
		Director:    item.Director,
		Description: item.Description,
		ImageLink:   item.ImageLink,
	}
}
