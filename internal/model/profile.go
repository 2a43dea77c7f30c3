package model

import "sort"

const MaxProfileGenres = 15

type GenreWeight struct {
	Genre  string `json:"genre"`
	Weight int    `json:"weight"`
}

// TasteProfile accumulates genre interest as signed weights.
// Entry order is insertion order and is part of the state: overflow
// eviction uses it as the deterministic tie-break.
type TasteProfile []GenreWeight

func (p TasteProfile) Weight(genre string) int {
	for _, e := range p {
		if e.Genre == genre {
			return e.Weight
		}
	}
	return 0
}

// GenreLabels returns the genre names strongest first; equal weights
// keep insertion order.
func (p TasteProfile) GenreLabels() []string {
	byWeight := p.Clone()
	sort.SliceStable(byWeight, func(i, j int) bool {
		return byWeight[i].Weight > byWeight[j].Weight
	})

	labels := make([]string, len(byWeight))
	for i, e := range byWeight {
		labels[i] = e.Genre
	}
	return labels
}

func (p TasteProfile) Clone() TasteProfile {
	out := make(TasteProfile, len(p))
	copy(out, p)
	return out
}
