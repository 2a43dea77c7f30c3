package http_quota

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
	router.GET("/quota", c.quota)
}

type QuotaResponseDTO struct {
	RemainingChoices  int  `json:"remaining_choices" example:"12"`
	DailyLimitReached bool `json:"daily_limit_reached" example:"false"`
}

// @Summary Daily quota status
// @Description Read-only projection of the daily choice quota.
// @Tags Quota operations
// @Produce json
// @Success 200 {object} QuotaResponseDTO "Quota status"
// @Router /quota [get]
func (c *Controller) quota(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, QuotaResponseDTO{
		RemainingChoices:  c.session.RemainingChoices(),
		DailyLimitReached: c.session.IsDailyLimitReached(),
	})
}
