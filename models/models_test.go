package models

import (
	"encoding/json"
	"testing"
)

func TestEncodeGeography(t *testing.T) {
	tests := []struct {
		geography   string
		wantGermany int
		wantSpain   int
	}{
		{"France", 0, 0},
		{"Germany", 1, 0},
		{"Spain", 0, 1},
		{"", 0, 0},
		{"Italy", 0, 0},
	}

	for _, tt := range tests {
		germany, spain := EncodeGeography(tt.geography)
		if germany != tt.wantGermany || spain != tt.wantSpain {
			t.Errorf("EncodeGeography(%q) = (%d, %d), want (%d, %d)",
				tt.geography, germany, spain, tt.wantGermany, tt.wantSpain)
		}
		if germany+spain > 1 {
			t.Errorf("EncodeGeography(%q) set both indicators", tt.geography)
		}
	}
}

func TestFormInputRecordFrenchCustomer(t *testing.T) {
	input := CustomerFormInput{
		CreditScore:     650,
		Age:             35,
		Tenure:          5,
		Balance:         50000,
		NumOfProducts:   2,
		HasCrCard:       1,
		IsActiveMember:  1,
		EstimatedSalary: 75000,
		Geography:       "France",
	}

	rec := input.Record()
	if rec.GeographyGermany != 0 || rec.GeographySpain != 0 {
		t.Fatalf("France must map to zero indicators, got Germany=%d Spain=%d",
			rec.GeographyGermany, rec.GeographySpain)
	}
	if rec.CreditScore != 650 || rec.Balance != 50000 || rec.EstimatedSalary != 75000 {
		t.Fatalf("field values not carried over: %+v", rec)
	}
}

func TestCustomerRecordJSONFieldNames(t *testing.T) {
	rec := CustomerFormInput{Geography: "Germany"}.Record()

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{
		"CreditScore", "Age", "Tenure", "Balance", "NumOfProducts",
		"HasCrCard", "IsActiveMember", "EstimatedSalary",
		"Geography_Germany", "Geography_Spain",
	} {
		if _, ok := payload[field]; !ok {
			t.Errorf("payload missing field %q", field)
		}
	}
	if payload["Geography_Germany"] != float64(1) {
		t.Errorf("Geography_Germany = %v, want 1", payload["Geography_Germany"])
	}
}
