package services

import (
	"context"
	"fmt"

	"github.com/helabhl/bank-churn-mlops/client"
	"github.com/helabhl/bank-churn-mlops/models"
)

// Drift threshold bounds, matching the 0.01-step slider on the page.
const (
	MinDriftThreshold = 0.01
	MaxDriftThreshold = 0.10
)

type PredictionService interface {
	CheckHealth(ctx context.Context, baseURL string) models.HealthView
	Predict(ctx context.Context, baseURL string, input models.CustomerFormInput) (*models.SinglePredictionView, error)
	CheckDrift(ctx context.Context, baseURL string, threshold float64) (*models.DriftView, error)
}

type predictionService struct {
	api *client.Client
}

func NewPredictionService(api *client.Client) PredictionService {
	return &predictionService{api: api}
}

// CheckHealth probes the API once. The outcome is informational only; the
// other flows run regardless of what it reports.
func (s *predictionService) CheckHealth(ctx context.Context, baseURL string) models.HealthView {
	if err := s.api.Health(ctx, baseURL); err != nil {
		return models.HealthView{Status: "unreachable", Detail: err.Error()}
	}
	return models.HealthView{Status: "connected"}
}

func (s *predictionService) Predict(ctx context.Context, baseURL string, input models.CustomerFormInput) (*models.SinglePredictionView, error) {
	result, err := s.api.Predict(ctx, baseURL, input.Record())
	if err != nil {
		return nil, err
	}

	view := &models.SinglePredictionView{
		ChurnProbability:    result.ChurnProbability,
		ChurnProbabilityPct: fmt.Sprintf("%.2f%%", result.ChurnProbability*100),
		RiskLevel:           result.RiskLevel,
		WillChurn:           result.Prediction == 1,
		Label:               "Stay",
	}
	if view.WillChurn {
		view.Label = "Churn"
	}
	return view, nil
}

func (s *predictionService) CheckDrift(ctx context.Context, baseURL string, threshold float64) (*models.DriftView, error) {
	if threshold < MinDriftThreshold || threshold > MaxDriftThreshold {
		return nil, &ValidationError{
			Message: fmt.Sprintf("threshold must be between %.2f and %.2f", MinDriftThreshold, MaxDriftThreshold),
		}
	}

	report, err := s.api.CheckDrift(ctx, baseURL, threshold)
	if err != nil {
		return nil, err
	}
	return &models.DriftView{
		FeaturesAnalyzed: report.FeaturesAnalyzed,
		FeaturesDrifted:  report.FeaturesDrifted,
		Drifted:          report.FeaturesDrifted > 0,
	}, nil
}
