package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "subhub-backend/internal/common/errors"
	"subhub-backend/internal/common/latest"
	"subhub-backend/internal/common/middleware"
	"subhub-backend/internal/features/credential/models"
	"subhub-backend/internal/features/credential/service"
)

type CredentialHandler struct {
	service service.CredentialService
	gates   *latest.Registry
}

func NewCredentialHandler(service service.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		service: service,
		gates:   latest.NewRegistry(),
	}
}

func (h *CredentialHandler) RegisterRoutes(router *gin.RouterGroup) {
	integrations := router.Group("/integrations")
	{
		integrations.POST("/telegram/validate", h.validate)
	}
}

// validate godoc
// @Summary Validate a bot token and channel identifier
// @Description Checks the bot credential and channel against Telegram and verifies the bot can issue invite links. Nothing is cached; every call re-validates.
// @Tags integrations
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param input body models.ValidationRequest true "Bot token and channel identifier"
// @Success 200 {object} models.ValidationVerdict
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} map[string]bool "Superseded by a newer validation call"
// @Router /integrations/telegram/validate [post]
func (h *CredentialHandler) validate(c *gin.Context) {
	var req models.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(apperrors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	// Last call wins per acting user: a verdict computed for a superseded
	// request is discarded, never rendered.
	gate, release := h.gates.Acquire(c.GetInt64("user_id"), "telegram")
	defer release()
	gen := gate.Begin()

	verdict := h.service.Validate(c.Request.Context(), req)

	if !gate.Current(gen) {
		c.JSON(http.StatusConflict, gin.H{"superseded": true})
		return
	}

	c.JSON(http.StatusOK, verdict)
}
