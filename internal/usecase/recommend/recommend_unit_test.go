//go:build !integration
// +build !integration

package usecase_recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/indicai/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	personalized_mocks "github.com/indicai/core/internal/usecase/recommend/mocks/recommend/personalized"
	popular_mocks "github.com/indicai/core/internal/usecase/recommend/mocks/recommend/popular"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type RecommendUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase      *Usecase
	popular      *popular_mocks.PopularSource
	personalized *personalized_mocks.PersonalizedSource
	ctx          context.Context
}

func initResources(t provider.T) *resources {
	popular := popular_mocks.NewPopularSource(t)
	personalized := personalized_mocks.NewPersonalizedSource(t)
	usecase := New(personalized, popular)

	return &resources{
		usecase:      usecase,
		popular:      popular,
		personalized: personalized,
		ctx:          context.Background(),
	}
}

type MediaItemBuilder struct {
	item model.MediaItem
}

func NewMediaItemBuilder(id string) *MediaItemBuilder {
	return &MediaItemBuilder{
		item: model.MediaItem{
			ID:     id,
			Kind:   model.KindMovie,
			Title:  "Item " + id,
			Rating: 7.0,
			Year:   2020,
			Genres: []string{"Drama"},
		},
	}
}

func (b *MediaItemBuilder) WithRating(rating float64) *MediaItemBuilder {
	b.item.Rating = rating
	return b
}

func (b *MediaItemBuilder) WithGenres(genres ...string) *MediaItemBuilder {
	b.item.Genres = genres
	return b
}

func (b *MediaItemBuilder) WithUserRating(action model.Action) *MediaItemBuilder {
	b.item.UserRating = action
	return b
}

func (b *MediaItemBuilder) Build() model.MediaItem {
	return b.item
}

func ids(items []model.MediaItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func (s *RecommendUnitSuite) TestZeroQuotaShortCircuits(t provider.T) {
	t.Parallel()

	r := initResources(t)

	items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 0)

	assert.NoError(t, err)
	assert.Empty(t, items)
	r.popular.AssertNotCalled(t, "FetchPopularContent", mock.Anything)
	r.personalized.AssertNotCalled(t, "FetchPersonalizedSuggestions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecommendUnitSuite) TestMergeDedupeAndTruncate(t provider.T) {
	t.Parallel()

	r := initResources(t)

	itemA := NewMediaItemBuilder("A").WithRating(9.5).Build()
	itemB := NewMediaItemBuilder("B").WithRating(9.0).Build()
	itemC := NewMediaItemBuilder("C").WithRating(8.0).Build()

	r.popular.On("FetchPopularContent", r.ctx).
		Return([]model.MediaItem{itemB, itemC}, nil).Once()
	r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, []model.MediaItem{itemB, itemC}).
		Return([]model.MediaItem{itemA, itemB}, nil).Once()

	items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 2)

	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(items))
}

func (s *RecommendUnitSuite) TestExcludesChosenAndRatedItems(t provider.T) {
	t.Parallel()

	r := initResources(t)

	chosen := NewMediaItemBuilder("chosen").WithRating(9.9).Build()
	rated := NewMediaItemBuilder("rated").WithRating(9.8).WithUserRating(model.ActionLike).Build()
	fresh := NewMediaItemBuilder("fresh").WithRating(5.0).Build()

	r.popular.On("FetchPopularContent", r.ctx).
		Return([]model.MediaItem{chosen, rated, fresh}, nil).Once()
	r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]model.MediaItem{}, nil).Once()

	items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, []string{"chosen"}, 10)

	assert.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, ids(items))
}

func (s *RecommendUnitSuite) TestProfileWeightsDriveRanking(t provider.T) {
	t.Parallel()

	r := initResources(t)

	crime := NewMediaItemBuilder("crime").WithRating(6.0).WithGenres("Crime", "Drama").Build()
	blockbuster := NewMediaItemBuilder("blockbuster").WithRating(9.0).WithGenres("Aventura").Build()

	r.popular.On("FetchPopularContent", r.ctx).
		Return([]model.MediaItem{blockbuster, crime}, nil).Once()
	r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]model.MediaItem{}, nil).Once()

	profile := model.TasteProfile{{Genre: "Crime", Weight: 3}, {Genre: "Drama", Weight: 2}}

	items, err := r.usecase.Recommend(r.ctx, profile, model.History{}, nil, 10)

	assert.NoError(t, err)
	// crime scores 6 + 3 + 2 = 11 against the blockbuster's 9.
	assert.Equal(t, []string{"crime", "blockbuster"}, ids(items))
}

func (s *RecommendUnitSuite) TestTieBreaks(t provider.T) {
	t.Parallel()

	t.Run("Should prefer higher provider rating on equal score", func(t provider.T) {
		r := initResources(t)

		lowRated := NewMediaItemBuilder("low").WithRating(6.0).WithGenres("Crime").Build()
		highRated := NewMediaItemBuilder("high").WithRating(8.0).WithGenres("Drama").Build()

		r.popular.On("FetchPopularContent", r.ctx).
			Return([]model.MediaItem{lowRated, highRated}, nil).Once()
		r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
			Return([]model.MediaItem{}, nil).Once()

		// Equalize scores: low gets +2 from Crime, both land on 8.
		profile := model.TasteProfile{{Genre: "Crime", Weight: 2}}

		items, err := r.usecase.Recommend(r.ctx, profile, model.History{}, nil, 10)

		assert.NoError(t, err)
		assert.Equal(t, []string{"high", "low"}, ids(items))
	})

	t.Run("Should keep personalized ahead of popular on full tie", func(t provider.T) {
		r := initResources(t)

		fromPersonalized := NewMediaItemBuilder("pers").WithRating(7.0).Build()
		fromPopular := NewMediaItemBuilder("pop").WithRating(7.0).Build()

		r.popular.On("FetchPopularContent", r.ctx).
			Return([]model.MediaItem{fromPopular}, nil).Once()
		r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
			Return([]model.MediaItem{fromPersonalized}, nil).Once()

		items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 10)

		assert.NoError(t, err)
		assert.Equal(t, []string{"pers", "pop"}, ids(items))
	})
}

func (s *RecommendUnitSuite) TestSourceFailures(t provider.T) {
	t.Parallel()

	t.Run("Should tolerate a failing popular source", func(t provider.T) {
		r := initResources(t)

		item := NewMediaItemBuilder("only").Build()

		r.popular.On("FetchPopularContent", r.ctx).
			Return(nil, errors.New("tmdb down")).Once()
		r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
			Return([]model.MediaItem{item}, nil).Once()

		items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 10)

		assert.NoError(t, err)
		assert.Equal(t, []string{"only"}, ids(items))
	})

	t.Run("Should fail with ErrProviderUnavailable when every source fails", func(t provider.T) {
		r := initResources(t)

		r.popular.On("FetchPopularContent", r.ctx).
			Return(nil, errors.New("tmdb down")).Once()
		r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("gemini down")).Once()

		items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 10)

		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func (s *RecommendUnitSuite) TestTruncationNeverExceedsQuota(t provider.T) {
	t.Parallel()

	r := initResources(t)

	pool := make([]model.MediaItem, 0, 30)
	for i := 0; i < 30; i++ {
		pool = append(pool, NewMediaItemBuilder(string(rune('a'+i))).Build())
	}

	r.popular.On("FetchPopularContent", r.ctx).Return(pool, nil).Once()
	r.personalized.On("FetchPersonalizedSuggestions", r.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]model.MediaItem{}, nil).Once()

	items, err := r.usecase.Recommend(r.ctx, model.TasteProfile{}, model.History{}, nil, 5)

	assert.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestRecommendUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RecommendUnitSuite))
}
