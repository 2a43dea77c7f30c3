package usecase_profile

import (
	"github.com/indicai/core/internal/model"
)

// Apply folds a single interaction into the taste profile and returns
// the updated copy. The input profile is never mutated.
//
// like bumps every genre of the swiped item by 1, superlike by 2,
// dislike drops them by 1 (entries at or below zero are removed),
// skip changes nothing. When the profile overflows MaxProfileGenres,
// the lowest-weight entries go first; among equal weights the
// earliest-inserted entry is evicted.
func Apply(p model.TasteProfile, in model.Interaction, pool []model.MediaItem) model.TasteProfile {
	delta := weightDelta(in.Action)
	if delta == 0 {
		return p.Clone()
	}

	item, ok := findItem(pool, in.ItemID)
	if !ok {
		return p.Clone()
	}

	next := p.Clone()
	for _, genre := range item.Genres {
		next = bump(next, genre, delta)
	}

	return evictOverflow(next)
}

func weightDelta(a model.Action) int {
	switch a {
	case model.ActionLike:
		return 1
	case model.ActionSuperlike:
		return 2
	case model.ActionDislike:
		return -1
	}
	return 0
}

func findItem(pool []model.MediaItem, itemID string) (model.MediaItem, bool) {
	for _, item := range pool {
		if item.ID == itemID {
			return item, true
		}
	}
	return model.MediaItem{}, false
}

func bump(p model.TasteProfile, genre string, delta int) model.TasteProfile {
	for i, e := range p {
		if e.Genre != genre {
			continue
		}
		p[i].Weight += delta
		if p[i].Weight <= 0 {
			return append(p[:i], p[i+1:]...)
		}
		return p
	}

	// Disliking a genre the profile never tracked leaves no entry behind.
	if delta <= 0 {
		return p
	}
	return append(p, model.GenreWeight{Genre: genre, Weight: delta})
}

func evictOverflow(p model.TasteProfile) model.TasteProfile {
	for len(p) > model.MaxProfileGenres {
		lowest := 0
		for i, e := range p {
			if e.Weight < p[lowest].Weight {
				lowest = i
			}
		}
		p = append(p[:lowest], p[lowest+1:]...)
	}
	return p
}
