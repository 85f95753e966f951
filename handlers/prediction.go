package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helabhl/bank-churn-mlops/models"
	"github.com/helabhl/bank-churn-mlops/services"
)

// PredictionHandler serves the health probe, the single prediction flow,
// and the drift check flow.
type PredictionHandler struct {
	predictionService services.PredictionService
	defaultAPIURL     string
}

func NewPredictionHandler(predictionService services.PredictionService, defaultAPIURL string) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		defaultAPIURL:     defaultAPIURL,
	}
}

// Config exposes the server-side default API URL so the page can seed its
// URL field with it.
func (h *PredictionHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"api_url": h.defaultAPIURL})
}

// Health probes the prediction API named by the api_url query parameter.
// It always answers 200; connectivity is reported in the body.
func (h *PredictionHandler) Health(c *gin.Context) {
	baseURL := h.baseURL(c.Query("api_url"))
	view := h.predictionService.CheckHealth(c.Request.Context(), baseURL)
	c.JSON(http.StatusOK, view)
}

// Predict scores a single customer.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.SinglePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.predictionService.Predict(c.Request.Context(), h.baseURL(req.APIURL), req.Customer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Drift triggers a drift check at the requested significance threshold.
func (h *PredictionHandler) Drift(c *gin.Context) {
	var req models.DriftCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.predictionService.CheckDrift(c.Request.Context(), h.baseURL(req.APIURL), req.Threshold)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *PredictionHandler) baseURL(requested string) string {
	if requested != "" {
		return requested
	}
	return h.defaultAPIURL
}
