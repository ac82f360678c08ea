package handler

import (
	"github.com/gin-gonic/gin"

	"genaizone/internal/domain"
)

// ModelHandler serves the model catalog.
type ModelHandler struct{}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

// List handles GET /api/v1/models
// @Summary List models
// @Description List the selectable completion models in display order
// @Tags models
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Model} "Model catalog"
// @Router /models [get]
func (h *ModelHandler) List(c *gin.Context) {
	RespondOK(c, domain.AvailableModels)
}
