package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "subhub-backend/internal/common/errors"
	"subhub-backend/internal/common/latest"
	"subhub-backend/internal/common/middleware"
	"subhub-backend/internal/features/gatewaykey/models"
	"subhub-backend/internal/features/gatewaykey/service"
)

type KeyHandler struct {
	service service.KeyService
	gates   *latest.Registry
}

func NewKeyHandler(service service.KeyService) *KeyHandler {
	return &KeyHandler{
		service: service,
		gates:   latest.NewRegistry(),
	}
}

func (h *KeyHandler) RegisterRoutes(router *gin.RouterGroup) {
	integrations := router.Group("/integrations")
	{
		integrations.POST("/stripe/validate", h.validate)
	}
}

// validate godoc
// @Summary Validate a payment-processor secret key
// @Description Checks the key format, then authenticates against the processor's live API and reports the account identity and actual live-mode capability.
// @Tags integrations
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param input body models.KeyCheckRequest true "Secret key"
// @Success 200 {object} models.KeyCheckVerdict
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} map[string]bool "Superseded by a newer validation call"
// @Router /integrations/stripe/validate [post]
func (h *KeyHandler) validate(c *gin.Context) {
	var req models.KeyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(apperrors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	gate, release := h.gates.Acquire(c.GetInt64("user_id"), "stripe")
	defer release()
	gen := gate.Begin()

	verdict := h.service.Validate(c.Request.Context(), req)

	if !gate.Current(gen) {
		c.JSON(http.StatusConflict, gin.H{"superseded": true})
		return
	}

	c.JSON(http.StatusOK, verdict)
}
