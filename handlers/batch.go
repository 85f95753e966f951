package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helabhl/bank-churn-mlops/services"
)

// BatchHandler serves the CSV upload preview and the bulk scoring flow.
type BatchHandler struct {
	batchService  services.BatchService
	defaultAPIURL string
}

func NewBatchHandler(batchService services.BatchService, defaultAPIURL string) *BatchHandler {
	return &BatchHandler{
		batchService:  batchService,
		defaultAPIURL: defaultAPIURL,
	}
}

// Preview parses the uploaded CSV and returns its first rows without
// contacting the prediction API.
func (h *BatchHandler) Preview(c *gin.Context) {
	file, err := h.openUpload(c)
	if err != nil {
		return
	}
	defer file.Close()

	view, err := h.batchService.Preview(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Predict scores every row of the uploaded CSV as one batch and returns the
// merged table plus its CSV rendering for download.
func (h *BatchHandler) Predict(c *gin.Context) {
	file, err := h.openUpload(c)
	if err != nil {
		return
	}
	defer file.Close()

	baseURL := c.PostForm("api_url")
	if baseURL == "" {
		baseURL = h.defaultAPIURL
	}

	view, err := h.batchService.Process(c.Request.Context(), baseURL, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BatchHandler) openUpload(c *gin.Context) (multipart.File, error) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload: " + err.Error()})
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open upload: " + err.Error()})
		return nil, err
	}
	return file, nil
}
