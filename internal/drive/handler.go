package drive

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okkkkun/uuid-qr-generator/internal/credentials"
	"github.com/okkkkun/uuid-qr-generator/internal/logger"
)

// Generator is the document-producing capability the orchestrator consumes;
// internal/qrpdf provides the live implementation.
type Generator interface {
	Generate(ids []string) ([]byte, error)
}

const maxBatchSize = 10

type uploadRequest struct {
	UUIDs []string `json:"uuids"`
}

type Handler struct {
	manager   *credentials.Manager
	generator Generator
	uploader  Uploader
	folderID  string
	cookies   credentials.CookieOptions
}

func NewHandler(
	manager *credentials.Manager,
	generator Generator,
	uploader Uploader,
	folderID string,
	cookies credentials.CookieOptions,
) *Handler {
	return &Handler{
		manager:   manager,
		generator: generator,
		uploader:  uploader,
		folderID:  folderID,
		cookies:   cookies,
	}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Fail fast: the whole batch is validated before any rendering work.
	if err := validateBatch(req.UUIDs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := credentials.NewCookieStore(c.Writer, c.Request, h.cookies)

	client, err := h.manager.ObtainValidClient(c.Request.Context(), store)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
		case errors.Is(err, credentials.ErrReauthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "token refresh failed, re-authentication required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	doc, err := h.generator.Generate(req.UUIDs)
	if err != nil {
		logger.Error("document generation failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "document generation failed: " + err.Error(),
		})
		return
	}

	// Timestamped name avoids collisions between uploads.
	name := fmt.Sprintf("uuid-qr-codes-%d.pdf", time.Now().UnixMilli())

	obj, err := h.uploader.CreateObject(
		c.Request.Context(),
		client,
		name,
		h.folderID,
		bytes.NewReader(doc),
	)
	if err != nil {
		logger.Error("upload failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "upload failed: " + err.Error(),
		})
		return
	}

	logger.Info("document uploaded", map[string]any{
		"file_id": obj.ID,
		"pages":   len(req.UUIDs),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"fileId":      obj.ID,
		"fileName":    obj.Name,
		"webViewLink": obj.ViewLink,
	})
}

// validateBatch rejects the whole batch when it is empty, oversized, or
// contains any malformed identifier. No partial documents.
func validateBatch(ids []string) error {
	if len(ids) == 0 {
		return errors.New("uuids array is required")
	}
	if len(ids) > maxBatchSize {
		return fmt.Errorf("at most %d uuids are allowed", maxBatchSize)
	}
	for _, id := range ids {
		if !isCanonicalUUID(id) {
			return fmt.Errorf("invalid uuid format: %s", id)
		}
	}
	return nil
}

// isCanonicalUUID accepts only the 36-character hyphenated form; uuid.Parse
// alone would also admit braced, URN and bare-hex variants.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
