package handlers

import (
	"github.com/helabhl/bank-churn-mlops/services"
)

// HandlerManager groups the dashboard's handlers for route setup.
type HandlerManager struct {
	PredictionHandler *PredictionHandler
	BatchHandler      *BatchHandler
}

// NewHandlerManager builds handlers on top of the service manager.
// defaultAPIURL is used whenever a request does not carry its own api_url.
func NewHandlerManager(sm *services.ServiceManager, defaultAPIURL string) *HandlerManager {
	return &HandlerManager{
		PredictionHandler: NewPredictionHandler(sm.PredictionService, defaultAPIURL),
		BatchHandler:      NewBatchHandler(sm.BatchService, defaultAPIURL),
	}
}
