//go:build !integration
// +build !integration

package infra_postgres_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/indicai/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type CatalogUnitSuite struct {
	suite.Suite
}

var catalogColumns = []string{
	"id", "kind", "title", "year", "rating", "genres", "cast_members", "director", "description", "image_link",
}

func newTestRepository(t provider.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return New(sqlx.NewDb(db, "postgres")), mock
}

func (s *CatalogUnitSuite) TestLoadAll(t provider.T) {
	t.Parallel()

	t.Run("Should map rows onto media items", func(t provider.T) {
		repo, mock := newTestRepository(t)

		rows := sqlmock.NewRows(catalogColumns).
			AddRow("58841", "movie", "Cidade de Deus", 2002, 8.7,
				"{Crime,Drama}", "{\"Alexandre Rodrigues\"}",
				"Fernando Meirelles", "Buscapé cresce numa favela violenta.", "https://img/1.jpg").
			AddRow("b-100", "book", "Grande Sertão: Veredas", 1956, 9.1,
				"{Drama}", "{}", "", "Travessia de Riobaldo.", "")

		mock.ExpectQuery("SELECT id, kind, title, year, rating, genres, cast_members, director, description, image_link").
			WillReturnRows(rows)

		items, err := repo.LoadAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "58841", items[0].ID)
		assert.Equal(t, model.KindMovie, items[0].Kind)
		assert.Equal(t, []string{"Crime", "Drama"}, items[0].Genres)
		assert.Equal(t, model.KindBook, items[1].Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should return error when query fails", func(t provider.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery("SELECT id, kind, title").
			WillReturnError(errors.New("connection reset"))

		items, err := repo.LoadAll(context.Background())

		assert.Nil(t, items)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func (s *CatalogUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	repo, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO catalog_items").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Store(context.Background(), model.MediaItem{
		ID:     "58841",
		Kind:   model.KindMovie,
		Title:  "Cidade de Deus",
		Year:   2002,
		Rating: 8.7,
		Genres: []string{"Crime", "Drama"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CatalogUnitSuite))
}
