package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http"
	"strings"

	"CommentCase/global"
	"CommentCase/models"
	"CommentCase/repositories"
	"CommentCase/services"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves /api/comments.
type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ListComments handles GET /api/comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	items, err := h.svc.ListComments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateComment handles POST /api/comments.
// A missing author falls back to the authenticated subject.
// Binding and store failures both answer 400; the detail stays in the logs.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create comment"})
		return
	}
	if strings.TrimSpace(req.Author) == "" {
		req.Author = c.GetString(global.CtxSubjectKey)
	}
	if strings.TrimSpace(req.Author) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create comment"})
		return
	}
	saved, err := h.svc.CreateComment(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// DeleteComment handles DELETE /api/comments/:id.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	_, err := h.svc.DeleteComment(c.Request.Context(), c.Param("id"))
	switch {
	case repositories.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
	}
}
