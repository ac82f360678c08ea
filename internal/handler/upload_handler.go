package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"genaizone/internal/service"
)

// UploadHandler handles the session's document upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/v1/uploads
// @Summary Upload a document
// @Description Store a document for the current session (PDF, DOCX, XLSX, XLS, CSV, TXT, MD, HTML, JPG, PNG)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload"
// @Success 201 {object} APIResponse{data=domain.UploadedDocument} "Document uploaded"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Upload failed"
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	doc, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		SessionID: sid,
		File:      file,
		Header:    header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/uploads
// @Summary List uploaded documents
// @Description List the current session's documents in upload order
// @Tags uploads
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.UploadedDocument} "Session documents"
// @Router /uploads [get]
func (h *UploadHandler) List(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	RespondOK(c, h.uploadService.List(c.Request.Context(), sid))
}

// Remove handles DELETE /api/v1/uploads/:id
// @Summary Remove a document
// @Description Remove a document from the current session and delete its stored file
// @Tags uploads
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} APIResponse "Document removed"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Document not found"
// @Router /uploads/{id} [delete]
func (h *UploadHandler) Remove(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.uploadService.Remove(c.Request.Context(), sid, docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document removed"})
}
