package http_feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/indicai/core/internal/delivery/http/common"
	"github.com/indicai/core/internal/model"
	"github.com/indicai/core/internal/service/sampler"
	usecase_recommend "github.com/indicai/core/internal/usecase/recommend"
	usecase_session "github.com/indicai/core/internal/usecase/session"
)

// How many items the fallback sampler asks for per feed page.
const fallbackTarget = 20

type CatalogSource interface {
	LoadAll(ctx context.Context) ([]model.MediaItem, error)
}

type Controller struct {
	recommender *usecase_recommend.Usecase
	session     *usecase_session.Session
	catalog     CatalogSource
	sampler     *sampler.Sampler

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	recommender *usecase_recommend.Usecase,
	session *usecase_session.Session,
	catalog CatalogSource,
	fallback *sampler.Sampler,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		recommender: recommender,
		session:     session,
		catalog:     catalog,
		sampler:     fallback,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/feed", c.feed)
}

type MediaItemDTO struct {
	ID          string   `json:"id" example:"58841"`
	Kind        string   `json:"kind" example:"movie" enums:"movie,series,book,music"`
	Title       string   `json:"title" example:"Cidade de Deus"`
	Rating      float64  `json:"rating" example:"8.7"`
	Year        int      `json:"year" example:"2002"`
	Genres      []string `json:"genres" example:"Crime,Drama"`
	Description string   `json:"description,omitempty"`
	ImageLink   string   `json:"image_link,omitempty"`
}

type FeedResponseDTO struct {
	Items             []MediaItemDTO `json:"items"`
	RemainingChoices  int            `json:"remaining_choices" example:"12"`
	DailyLimitReached bool           `json:"daily_limit_reached" example:"false"`
	Fallback          bool           `json:"fallback" example:"false"`
}

func convertFromMediaItems(items []model.MediaItem) []MediaItemDTO {
	dtos := make([]MediaItemDTO, len(items))
	for i, item := range items {
		dtos[i] = MediaItemDTO{
			ID:          item.ID,
			Kind:        string(item.Kind),
			Title:       item.Title,
			Rating:      item.Rating,
			Year:        item.Year,
			Genres:      item.Genres,
			Description: item.Description,
			ImageLink:   item.ImageLink,
		}
	}
	return dtos
}

// @Summary Get the discovery feed
// @Description Returns ranked recommendations for the current taste profile, capped by the remaining daily quota. Falls back to a random catalog sample when content providers are down.
// @Tags Feed operations
// @Produce json
// @Success 200 {object} FeedResponseDTO "Ranked feed"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /feed [get]
func (c *Controller) feed(ctx *gin.Context) {
	remaining := c.session.RemainingChoices()
	if remaining == 0 {
		ctx.JSON(http.StatusOK, FeedResponseDTO{
			Items:             []MediaItemDTO{},
			RemainingChoices:  0,
			DailyLimitReached: true,
		})
		return
	}

	rctx := ctx.Request.Context()
	fallback := false

	items, err := c.recommender.Recommend(
		rctx,
		c.session.Profile(),
		c.session.History(),
		c.session.ChosenIDs(),
		remaining,
	)
	if err != nil {
		if !errors.Is(err, usecase_recommend.ErrProviderUnavailable) {
			c.logger.Error("failed to build feed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to build feed",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
			return
		}

		c.logger.Warn("providers unavailable, serving catalog sample", slog.String("error", err.Error()))

		catalog, cerr := c.catalog.LoadAll(rctx)
		if cerr != nil {
			c.logger.Error("failed to load fallback catalog", slog.String("error", cerr.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to build feed",
				Message: cerr.Error(),
				Code:    http.StatusInternalServerError,
			})
			return
		}

		items = c.sampler.Sample(catalog, c.session.ChosenIDs(), fallbackTarget, remaining)
		fallback = true
	}

	ctx.JSON(http.StatusOK, FeedResponseDTO{
		Items:            convertFromMediaItems(items),
		RemainingChoices: remaining,
		Fallback:         fallback,
	})
}
