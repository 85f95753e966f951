package services

import (
	"context"
	"io"

	"github.com/helabhl/bank-churn-mlops/batch"
	"github.com/helabhl/bank-churn-mlops/client"
	"github.com/helabhl/bank-churn-mlops/models"
)

// ValidationError is a client-side rejection (bad upload, missing columns,
// out-of-range threshold) raised before any network call is made.
type ValidationError struct {
	Message        string
	MissingColumns []string
}

func (e *ValidationError) Error() string { return e.Message }

type BatchService interface {
	Preview(file io.Reader) (*models.BatchResultView, error)
	Process(ctx context.Context, baseURL string, file io.Reader) (*models.BatchResultView, error)
}

type batchService struct {
	api *client.Client
}

func NewBatchService(api *client.Client) BatchService {
	return &batchService{api: api}
}

// Preview parses the upload and returns its leading rows, no scoring.
func (s *batchService) Preview(file io.Reader) (*models.BatchResultView, error) {
	table, err := batch.Parse(file)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	head := table.Preview(batch.PreviewRows)
	return &models.BatchResultView{Columns: head.Columns, Rows: head.Rows}, nil
}

// Process runs the full bulk scoring flow: parse, derive geography
// indicators, validate required columns, submit, and merge the positional
// predictions back onto the original upload. It either scores every row or
// refuses the batch outright.
func (s *batchService) Process(ctx context.Context, baseURL string, file io.Reader) (*models.BatchResultView, error) {
	table, err := batch.Parse(file)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	processed := table.DeriveGeography()
	if missing := processed.MissingColumns(); len(missing) > 0 {
		return nil, &ValidationError{
			Message:        "missing columns in CSV",
			MissingColumns: missing,
		}
	}

	records, err := processed.Records()
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	predictions, err := s.api.PredictBatch(ctx, baseURL, records)
	if err != nil {
		return nil, err
	}

	merged, err := batch.Merge(table, predictions)
	if err != nil {
		return nil, err
	}

	csvText, err := merged.CSV()
	if err != nil {
		return nil, err
	}

	return &models.BatchResultView{
		Columns:   merged.Columns,
		Rows:      merged.Rows,
		Processed: len(predictions),
		CSV:       csvText,
	}, nil
}
