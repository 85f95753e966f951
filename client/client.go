// Package client is the HTTP client for the external churn prediction API.
// The base URL is a parameter on every call rather than client state, so the
// operator can retarget the API between actions without rebuilding anything.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/helabhl/bank-churn-mlops/models"
)

// ServiceError is a non-2xx reply from the prediction API. The body is kept
// verbatim so the dashboard can show exactly what the service said.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}

// Client calls the prediction API. Safe for concurrent use.
type Client struct {
	http *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Health probes GET {baseURL}/health. A nil return means the API answered
// with a success status; any other outcome is the error to report.
func (c *Client) Health(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(baseURL, "/health"), nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// Predict scores a single customer via POST {baseURL}/predict.
func (c *Client) Predict(ctx context.Context, baseURL string, record models.CustomerRecord) (models.PredictionResult, error) {
	var result models.PredictionResult
	if err := c.postJSON(ctx, joinURL(baseURL, "/predict"), record, &result); err != nil {
		return models.PredictionResult{}, err
	}
	return result, nil
}

// PredictBatch scores an ordered set of customers via POST
// {baseURL}/predict/batch. The API contract is positional, so the only
// sanity check possible here is that the lengths line up.
func (c *Client) PredictBatch(ctx context.Context, baseURL string, records []models.CustomerRecord) ([]models.PredictionResult, error) {
	var resp models.BatchPredictionResponse
	if err := c.postJSON(ctx, joinURL(baseURL, "/predict/batch"), records, &resp); err != nil {
		return nil, err
	}
	if len(resp.Predictions) != len(records) {
		return nil, fmt.Errorf("batch response has %d predictions for %d records", len(resp.Predictions), len(records))
	}
	return resp.Predictions, nil
}

// CheckDrift runs a drift check via POST {baseURL}/drift/check. The
// threshold travels as a query parameter with two-decimal precision to match
// the 0.01 step of the control, and the request carries no body.
func (c *Client) CheckDrift(ctx context.Context, baseURL string, threshold float64) (models.DriftReport, error) {
	url := fmt.Sprintf("%s?threshold=%.2f", joinURL(baseURL, "/drift/check"), threshold)

	var report models.DriftReport
	if err := c.postJSON(ctx, url, nil, &report); err != nil {
		return models.DriftReport{}, err
	}
	return report, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServiceError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
