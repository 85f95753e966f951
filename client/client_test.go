package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/helabhl/bank-churn-mlops/models"
)

func testClient() *Client {
	return New(2 * time.Second)
}

func TestPredict(t *testing.T) {
	var gotPath string
	var gotPayload models.CustomerRecord
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(models.PredictionResult{
			ChurnProbability: 0.42,
			Prediction:       1,
			RiskLevel:        "High",
		})
	}))
	defer server.Close()

	record := models.CustomerRecord{CreditScore: 650, Age: 35, GeographySpain: 1}
	result, err := testClient().Predict(context.Background(), server.URL, record)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if gotPath != "/predict" {
		t.Errorf("path = %q, want /predict", gotPath)
	}
	if gotPayload.GeographySpain != 1 || gotPayload.CreditScore != 650 {
		t.Errorf("payload not forwarded: %+v", gotPayload)
	}
	if result.ChurnProbability != 0.42 || result.Prediction != 1 || result.RiskLevel != "High" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestPredictServiceErrorKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"model not loaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testClient().Predict(context.Background(), server.URL, models.CustomerRecord{})
	var sErr *ServiceError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if sErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", sErr.StatusCode)
	}
	if sErr.Error() != `{"detail":"model not loaded"}`+"\n" {
		t.Errorf("body not kept verbatim: %q", sErr.Error())
	}
}

func TestPredictTransportError(t *testing.T) {
	// Nothing listens here.
	_, err := testClient().Predict(context.Background(), "http://127.0.0.1:1", models.CustomerRecord{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var sErr *ServiceError
	if errors.As(err, &sErr) {
		t.Fatal("transport failure must not be a ServiceError")
	}
}

func TestPredictBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/batch" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var records []models.CustomerRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := models.BatchPredictionResponse{}
		for range records {
			resp.Predictions = append(resp.Predictions, models.PredictionResult{RiskLevel: "Low"})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	records := []models.CustomerRecord{{Age: 30}, {Age: 40}}
	predictions, err := testClient().PredictBatch(context.Background(), server.URL, records)
	if err != nil {
		t.Fatalf("PredictBatch: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
}

func TestPredictBatchLengthMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.BatchPredictionResponse{
			Predictions: []models.PredictionResult{{}},
		})
	}))
	defer server.Close()

	_, err := testClient().PredictBatch(context.Background(), server.URL, []models.CustomerRecord{{}, {}})
	if err == nil {
		t.Fatal("expected error when prediction count differs from record count")
	}
}

func TestCheckDriftThresholdFormatting(t *testing.T) {
	tests := []struct {
		threshold float64
		wantQuery string
	}{
		{0.05, "threshold=0.05"},
		{0.1, "threshold=0.10"},
		{0.01, "threshold=0.01"},
	}

	for _, tt := range tests {
		var gotQuery, gotPath, gotMethod string
		var gotBody int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotBody = r.ContentLength
			json.NewEncoder(w).Encode(models.DriftReport{FeaturesAnalyzed: 10, FeaturesDrifted: 2})
		}))

		report, err := testClient().CheckDrift(context.Background(), server.URL, tt.threshold)
		server.Close()
		if err != nil {
			t.Fatalf("CheckDrift(%v): %v", tt.threshold, err)
		}
		if gotQuery != tt.wantQuery {
			t.Errorf("threshold %v: query = %q, want %q", tt.threshold, gotQuery, tt.wantQuery)
		}
		if gotPath != "/drift/check" {
			t.Errorf("path = %q, want /drift/check", gotPath)
		}
		if gotMethod != http.MethodPost {
			t.Errorf("method = %q, want POST", gotMethod)
		}
		if gotBody > 0 {
			t.Errorf("drift check must not carry a body, got %d bytes", gotBody)
		}
		if report.FeaturesAnalyzed != 10 || report.FeaturesDrifted != 2 {
			t.Errorf("unexpected report: %+v", report)
		}
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if err := testClient().Health(context.Background(), server.URL); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if err := testClient().Health(context.Background(), "http://127.0.0.1:1"); err == nil {
		t.Fatal("expected error for unreachable URL")
	}
}

func TestJoinURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if err := testClient().Health(context.Background(), server.URL+"/"); err != nil {
		t.Fatalf("Health with trailing slash: %v", err)
	}
}
