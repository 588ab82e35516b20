package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"subhub-backend/internal/platform/storage"
)

// FilesHandler serves stored artifacts to holders of a signed retrieval URL.
// It is mounted outside the authenticated API group: the signature is the
// credential.
type FilesHandler struct {
	store  storage.Store
	signer *storage.URLSigner
}

func NewFilesHandler(store storage.Store, signer *storage.URLSigner) *FilesHandler {
	return &FilesHandler{store: store, signer: signer}
}

func (h *FilesHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/files/*path", h.serve)
}

func (h *FilesHandler) serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires parameter"})
		return
	}

	if err := h.signer.Verify(path, expires, c.Query("signature")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	obj, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "object not found"})
		return
	}

	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}
