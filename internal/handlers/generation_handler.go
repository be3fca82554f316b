package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/dtos"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// GenerationHandler forwards admin prompts to the generation gateway
// and hands the structured output back as a create-form pre-fill.
type GenerationHandler struct {
	generator *services.GenerationService
}

func NewGenerationHandler(generator *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

func (h *GenerationHandler) Register(group *gin.RouterGroup) {
	for _, contentType := range []string{"job", "internship", "article", "roadmap", "dsa-problem", "page"} {
		group.POST("/generate-"+contentType, h.generate(contentType))
	}
	group.POST("/generate-all", h.GenerateAll)
}

// generate serves POST /generate-{type}. The prompt travels in the
// JSON body or, for older clients, the prompt query parameter.
func (h *GenerationHandler) generate(contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dtos.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if !errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
				return
			}
			req.Prompt = c.Query("prompt")
		}
		if req.Prompt == "" {
			respondError(c, apperrors.NewValidation("prompt", "is required"))
			return
		}

		raw, err := h.generator.Generate(c.Request.Context(), contentType, req.Prompt)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dtos.GenerationResponse{Success: true, Data: raw})
	}
}

// GenerateAll serves the bulk endpoint. Parameters come from the JSON
// body or from the query string.
func (h *GenerationHandler) GenerateAll(c *gin.Context) {
	var req dtos.BulkGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		req.ContentType = c.Query("content_type")
		req.Prompt = c.Query("prompt")
		req.Count, _ = strconv.Atoi(c.Query("count"))
		req.AutoSave, _ = strconv.ParseBool(c.Query("auto_save"))
	}
	if req.ContentType == "" {
		respondError(c, apperrors.NewValidation("content_type", "is required"))
		return
	}
	if req.Prompt == "" {
		respondError(c, apperrors.NewValidation("prompt", "is required"))
		return
	}

	result, err := h.generator.GenerateBulk(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
