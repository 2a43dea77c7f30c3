package http_profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecase_session "github.com/indicai/core/internal/usecase/session"
)

type Controller struct {
	session *usecase_session.Session
}

func New(session *usecase_session.Session) *Controller {
	return &Controller{session: session}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", c.profile)
}

type GenreWeightDTO struct {
	Genre  string `json:"genre" example:"Crime"`
	Weight int    `json:"weight" example:"2"`
}

type StatsDTO struct {
	Likes     int     `json:"likes" example:"8"`
	Dislikes  int     `json:"dislikes" example:"3"`
	Skips     int     `json:"skips" example:"1"`
	Total     int     `json:"total" example:"12"`
	LikeRatio float64 `json:"like_ratio" example:"0.73"`
}

type ProfileResponseDTO struct {
	Genres []GenreWeightDTO `json:"genres"`
	Stats  StatsDTO         `json:"stats"`
}

// @Summary Current taste profile
// @Description Returns the weighted genre profile and interaction stats.
// @Tags Profile operations
// @Produce json
// @Success 200 {object} ProfileResponseDTO "Taste profile"
// @Router /profile [get]
func (c *Controller) profile(ctx *gin.Context) {
	profile := c.session.Profile()
	stats := c.session.Stats()

	genres := make([]GenreWeightDTO, len(profile))
	for i, e := range profile {
		genres[i] = GenreWeightDTO{Genre: e.Genre, Weight: e.Weight}
	}

	ctx.JSON(http.StatusOK, ProfileResponseDTO{
		Genres: genres,
		Stats: StatsDTO{
			Likes:     stats.Likes,
			Dislikes:  stats.Dislikes,
			Skips:     stats.Skips,
			Total:     stats.Total,
			LikeRatio: stats.LikeRatio,
		},
	})
}
