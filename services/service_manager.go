package services

import (
	"github.com/helabhl/bank-churn-mlops/client"
)

// ServiceManager wires every service to the shared prediction API client.
type ServiceManager struct {
	PredictionService PredictionService
	BatchService      BatchService
}

func NewServiceManager(api *client.Client) *ServiceManager {
	return &ServiceManager{
		PredictionService: NewPredictionService(api),
		BatchService:      NewBatchService(api),
	}
}
