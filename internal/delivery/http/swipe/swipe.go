package http_swipe

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/indicai/core/internal/delivery/http/common"
	"github.com/indicai/core/internal/model"
	usecase_session "github.com/indicai/core/internal/usecase/session"
)

type Controller struct {
	session *usecase_session.Session

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(session *usecase_session.Session, opts ...ControllerOption) *Controller {
	c := &Controller{
		session: session,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/swipes", c.swipe)
}

// SwipedItemDTO carries the card snapshot the client acted on. Genres
// and rating are needed to fold the swipe into the taste profile;
// feed items are not stored server-side.
type SwipedItemDTO struct {
	ID     string   `json:"id" binding:"required" example:"58841"`
	Kind   string   `json:"kind" example:"movie" enums:"movie,series,book,music"`
	Title  string   `json:"title" example:"Cidade de Deus"`
	Rating float64  `json:"rating" example:"8.7"`
	Year   int      `json:"year" example:"2002"`
	Genres []string `json:"genres" example:"Crime,Drama"`
}

type SwipeRequestDTO struct {
	Item   SwipedItemDTO `json:"item" binding:"required"`
	Action string        `json:"action" binding:"required" example:"superlike" enums:"like,dislike,superlike,skip"`
}

type SwipeResponseDTO struct {
	RemainingChoices  int  `json:"remaining_choices" example:"11"`
	DailyLimitReached bool `json:"daily_limit_reached" example:"false"`
}

func (r *SwipedItemDTO) ConvertToMediaItem() model.MediaItem {
	return model.MediaItem{
		ID:     r.ID,
		Kind:   model.MediaKind(r.Kind),
		Title:  r.Title,
		Rating: r.Rating,
		Year:   r.Year,
		Genres: r.Genres,
	}
}

// @Summary Record a swipe
// @Description Records a resolved swipe action, updates the taste profile and consumes one daily choice. Skips consume quota too.
// @Tags Swipe operations
// @Accept json
// @Produce json
// @Param request body SwipeRequestDTO true "Swiped item and action"
// @Success 200 {object} SwipeResponseDTO "Swipe recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body or action"
// @Failure 409 {object} http_common.ErrorResponse "Daily limit reached"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /swipes [post]
func (c *Controller) swipe(ctx *gin.Context) {
	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	action := model.Action(req.Action)
	if !action.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid action",
			Code:  http.StatusBadRequest,
		})
		return
	}

	recorded, err := c.session.Swipe(ctx.Request.Context(), req.Item.ConvertToMediaItem(), action)
	if err != nil {
		c.logger.Error("failed to record swipe",
			slog.String("error", err.Error()),
			slog.String("item_id", req.Item.ID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to record swipe",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if !recorded {
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
			Error:   "Daily limit reached",
			Message: "Come back tomorrow to keep discovering",
			Code:    http.StatusConflict,
		})
		return
	}

	ctx.JSON(http.StatusOK, SwipeResponseDTO{
		RemainingChoices:  c.session.RemainingChoices(),
		DailyLimitReached: c.session.IsDailyLimitReached(),
	})
}
