package handlers

import (
	"net/http"

	"CommentCase/core"
	"CommentCase/models"

	"github.com/gin-gonic/gin"
)

// CaseHandler exposes the case converter over HTTP.
type CaseHandler struct {
	conv *core.Converter
}

// NewCaseHandler takes the safe converter; strict requests bypass it.
func NewCaseHandler(conv *core.Converter) *CaseHandler {
	return &CaseHandler{conv: conv}
}

// Styles handles GET /api/case/styles.
func (h *CaseHandler) Styles(c *gin.Context) {
	names := make([]string, 0, len(core.Styles()))
	for _, s := range core.Styles() {
		names = append(names, s.String())
	}
	c.JSON(http.StatusOK, gin.H{"styles": names})
}

// Convert handles POST /api/case/:style with {"input": <any JSON value>}.
// Default is the safe variant ({"result": null} for non-text input);
// ?strict=true reports the type error as 422 instead.
func (h *CaseHandler) Convert(c *gin.Context) {
	style, err := core.ParseStyle(c.Param("style"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.Query("strict") == "true" {
		out, err := core.ConvertStrict(req.Input, style)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.ConvertResponse{Result: &out})
		return
	}

	resp := models.ConvertResponse{}
	if out, ok := h.conv.Convert(req.Input, style); ok {
		resp.Result = &out
	}
	c.JSON(http.StatusOK, resp)
}
