package usecase_profile

import "github.com/indicai/core/internal/model"

type Stats struct {
	Likes    int
	Dislikes int
	Skips    int
	Total    int

	// LikeRatio is likes over judged interactions (likes + dislikes).
	LikeRatio float64
}

func BuildStats(h model.History) Stats {
	var s Stats
	for _, in := range h {
		switch in.Action {
		case model.ActionLike, model.ActionSuperlike:
			s.Likes++
		case model.ActionDislike:
			s.Dislikes++
		case model.ActionSkip:
			s.Skips++
		}
	}
	s.Total = s.Likes + s.Dislikes + s.Skips
	if s.Likes > 0 {
		s.LikeRatio = float64(s.Likes) / float64(s.Likes+s.Dislikes)
	}
	return s
}
