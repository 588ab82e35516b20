package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "subhub-backend/internal/common/errors"
	"subhub-backend/internal/common/middleware"
	"subhub-backend/internal/features/proof/service"
)

type ProofHandler struct {
	service service.ProofService
}

func NewProofHandler(service service.ProofService) *ProofHandler {
	return &ProofHandler{service: service}
}

func (h *ProofHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("/:id/proof", h.status)
		invoices.POST("/:id/proof", h.selectFile)
		invoices.DELETE("/:id/proof", h.clear)
		invoices.POST("/:id/proof/upload", h.upload)
		invoices.POST("/:id/proof/confirm", h.confirm)
	}
}

// status godoc
// @Summary Get the proof pipeline state for an invoice
// @Tags proofs
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ProofStatus
// @Router /invoices/{id}/proof [get]
func (h *ProofHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context(), c.GetInt64("user_id"), c.Param("id")))
}

// selectFile godoc
// @Summary Stage a payment-proof file for an invoice
// @Description Validates the file type (jpeg/png/webp/gif) and size (max 5 MiB) and stages it with a local preview. Staging while a previous upload is pending replaces it; the stored object is orphaned.
// @Tags proofs
// @Accept multipart/form-data
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Invoice ID"
// @Param file formData file true "Proof image"
// @Success 200 {object} models.ProofStatus
// @Failure 422 {object} middleware.ErrorResponse "Constraint violation"
// @Router /invoices/{id}/proof [post]
func (h *ProofHandler) selectFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(apperrors.ErrCodeBadRequest, "multipart file field is required", err))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(apperrors.ErrCodeBadRequest, "failed to open uploaded file", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(apperrors.ErrCodeBadRequest, "failed to read uploaded file", err))
		return
	}

	status, err := h.service.Select(
		c.Request.Context(),
		c.GetInt64("user_id"),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// upload godoc
// @Summary Upload the staged proof to durable storage
// @Description Writes the staged file to storage and issues a 1-year signed retrieval URL. On storage failure the staged selection is discarded and the file must be re-selected.
// @Tags proofs
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ProofStatus
// @Failure 409 {object} middleware.ErrorResponse "No file staged"
// @Failure 503 {object} middleware.ErrorResponse "Storage failure"
// @Router /invoices/{id}/proof/upload [post]
func (h *ProofHandler) upload(c *gin.Context) {
	status, err := h.service.Upload(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// confirm godoc
// @Summary Confirm the uploaded proof
// @Description Hands the retrieval URL to the invoice record and moves the pipeline to its terminal, irreversible Confirmed state.
// @Tags proofs
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ProofStatus
// @Failure 409 {object} middleware.ErrorResponse "No pending upload"
// @Router /invoices/{id}/proof/confirm [post]
func (h *ProofHandler) confirm(c *gin.Context) {
	status, err := h.service.Confirm(c.Request.Context(), c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// clear godoc
// @Summary Clear an unconfirmed proof selection
// @Description Resets the pipeline to empty. Rejected while an upload or confirmation is in flight and after confirmation.
// @Tags proofs
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 409 {object} middleware.ErrorResponse
// @Router /invoices/{id}/proof [delete]
func (h *ProofHandler) clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.GetInt64("user_id"), c.Param("id")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
