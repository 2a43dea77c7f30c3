package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/indicai/core/internal/model"
)

var (
	ErrProviderUnavailable = errors.New("content providers unavailable")
)

//go:generate mockery --name=PopularSource --output=./mocks/recommend/popular --filename=popular.go
type PopularSource interface {
	FetchPopularContent(ctx context.Context) ([]model.MediaItem, error)
}

//go:generate mockery --name=PersonalizedSource --output=./mocks/recommend/personalized --filename=personalized.go
type PersonalizedSource interface {
	FetchPersonalizedSuggestions(ctx context.Context, genres []string, history model.History, pool []model.MediaItem) ([]model.MediaItem, error)
}

type Usecase struct {
	personalized PersonalizedSource
	popular      PopularSource

	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(personalized PersonalizedSource, popular PopularSource, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		personalized: personalized,
		popular:      popular,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Recommend merges both sources, excludes items the user already acted
// on, ranks the rest against the taste profile and cuts the result to
// the remaining daily quota.
//
// With no quota left it returns an empty slice without touching the
// sources. A single failing source is tolerated; only when every
// source fails does it return ErrProviderUnavailable, leaving the
// fallback decision to the caller.
func (u *Usecase) Recommend(
	ctx context.Context,
	profile model.TasteProfile,
	history model.History,
	chosenIDs []string,
	remaining int,
) ([]model.MediaItem, error) {
	if remaining <= 0 {
		return []model.MediaItem{}, nil
	}

	popular, popularErr := u.popular.FetchPopularContent(ctx)
	if popularErr != nil {
		u.logger.Warn("popular source failed", slog.String("error", popularErr.Error()))
	}

	// The popular batch doubles as the candidate pool the personalized
	// source picks from.
	personalized, personalizedErr := u.personalized.FetchPersonalizedSuggestions(ctx, profile.GenreLabels(), history, popular)
	if personalizedErr != nil {
		u.logger.Warn("personalized source failed", slog.String("error", personalizedErr.Error()))
	}

	if popularErr != nil && personalizedErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, errors.Join(personalizedErr, popularErr))
	}

	// Personalized suggestions outrank popular content on score ties.
	candidates := make([]model.MediaItem, 0, len(personalized)+len(popular))
	candidates = append(candidates, personalized...)
	candidates = append(candidates, popular...)

	return rank(candidates, profile, chosenIDs, remaining), nil
}

// candidate pairs an item with its transient match score. Scores are
// computed per request and never persisted.
type candidate struct {
	item  model.MediaItem
	score float64
}

func rank(candidates []model.MediaItem, profile model.TasteProfile, chosenIDs []string, limit int) []model.MediaItem {
	chosen := make(map[string]struct{}, len(chosenIDs))
	for _, id := range chosenIDs {
		chosen[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(candidates))
	scored := make([]candidate, 0, len(candidates))
	for _, item := range candidates {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}

		if _, ok := chosen[item.ID]; ok {
			continue
		}
		if item.Rated() {
			continue
		}

		scored = append(scored, candidate{item: item, score: matchScore(item, profile)})
	}

	// Stable keeps merge order as the final tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].item.Rating > scored[j].item.Rating
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]model.MediaItem, len(scored))
	for i, c := range scored {
		out[i] = c.item
	}
	return out
}

// matchScore sums the profile weights of the item's genres on top of
// its provider rating. Items matching no tracked genre still qualify
// on rating alone.
func matchScore(item model.MediaItem, profile model.TasteProfile) float64 {
	score := item.Rating
	for _, genre := range item.Genres {
		score += float64(profile.Weight(genre))
	}
	return score
}
