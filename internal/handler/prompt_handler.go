package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"genaizone/internal/csvexport"
	"genaizone/internal/service"
)

// PromptHandler handles prompt submission and result endpoints.
type PromptHandler struct {
	comparisonService service.ComparisonService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(comparisonService service.ComparisonService) *PromptHandler {
	return &PromptHandler{comparisonService: comparisonService}
}

type submitPromptRequest struct {
	Prompt      string   `json:"prompt"`
	Models      []string `json:"models"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float32 `json:"temperature"`
}

// Submit handles POST /api/v1/prompts
// @Summary Compare models on a prompt
// @Description Combine the prompt with the session's documents and send it to every selected model
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body submitPromptRequest true "Prompt, models and optional generation overrides"
// @Success 200 {object} APIResponse{data=domain.Comparison} "One response per model, in request order"
// @Failure 400 {object} APIResponse "Empty prompt, no models, unsupported model or invalid overrides"
// @Router /prompts [post]
func (h *PromptHandler) Submit(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req submitPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if req.MaxTokens < 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "max_tokens must not be negative")
		return
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "temperature must be between 0 and 2")
		return
	}

	comparison, err := h.comparisonService.Submit(c.Request.Context(), service.SubmitInput{
		SessionID:   sid,
		Prompt:      req.Prompt,
		Models:      req.Models,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comparison)
}

// Results handles GET /api/v1/results
// @Summary Latest comparison
// @Description Return the session's most recent comparison
// @Tags prompts
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Comparison} "Latest comparison"
// @Failure 404 {object} APIResponse "No results yet"
// @Router /results [get]
func (h *PromptHandler) Results(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	comparison, err := h.comparisonService.Latest(c.Request.Context(), sid)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comparison)
}

// Export handles GET /api/v1/results/export
// @Summary Export results as CSV
// @Description Download the session's most recent comparison as a CSV file
// @Tags prompts
// @Produce text/csv
// @Success 200 {file} file "CSV file download"
// @Failure 404 {object} APIResponse "No results yet"
// @Router /results/export [get]
func (h *PromptHandler) Export(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	comparison, err := h.comparisonService.Latest(c.Request.Context(), sid)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, fmt.Errorf("writing csv header: %w", err))
		return
	}
	if err := w.WriteComparison(comparison); err != nil {
		HandleError(c, fmt.Errorf("writing csv rows: %w", err))
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, fmt.Errorf("flushing csv: %w", err))
		return
	}

	filename := csvexport.BuildFilename("model_comparison", comparison.CreatedAt)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
