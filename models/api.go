package models

// SinglePredictionRequest is what the dashboard page (or churnctl) submits for
// the single-customer flow. Geography arrives as the raw category name and is
// encoded into indicator fields before the upstream call.
type SinglePredictionRequest struct {
	APIURL   string            `json:"api_url"`
	Customer CustomerFormInput `json:"customer"`
}

// CustomerFormInput mirrors the dashboard form: the same fields as
// CustomerRecord but with Geography as a category instead of indicators.
type CustomerFormInput struct {
	CreditScore     int     `json:"credit_score"`
	Age             int     `json:"age"`
	Tenure          int     `json:"tenure"`
	Balance         float64 `json:"balance"`
	NumOfProducts   int     `json:"num_of_products"`
	HasCrCard       int     `json:"has_cr_card"`
	IsActiveMember  int     `json:"is_active_member"`
	EstimatedSalary float64 `json:"estimated_salary"`
	Geography       string  `json:"geography"`
}

// Record encodes the form input into the payload shape the prediction API
// expects.
func (f CustomerFormInput) Record() CustomerRecord {
	germany, spain := EncodeGeography(f.Geography)
	return CustomerRecord{
		CreditScore:      f.CreditScore,
		Age:              f.Age,
		Tenure:           f.Tenure,
		Balance:          f.Balance,
		NumOfProducts:    f.NumOfProducts,
		HasCrCard:        f.HasCrCard,
		IsActiveMember:   f.IsActiveMember,
		EstimatedSalary:  f.EstimatedSalary,
		GeographyGermany: germany,
		GeographySpain:   spain,
	}
}

// SinglePredictionView is the formatted result rendered by the dashboard.
type SinglePredictionView struct {
	ChurnProbability    float64 `json:"churn_probability"`
	ChurnProbabilityPct string  `json:"churn_probability_pct"`
	Label               string  `json:"label"`
	RiskLevel           string  `json:"risk_level"`
	WillChurn           bool    `json:"will_churn"`
}

// HealthView reports the outcome of the connection probe. Status is either
// "connected" or "unreachable"; Detail carries the failure reason.
type HealthView struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// DriftCheckRequest carries the drift flow inputs from the page.
type DriftCheckRequest struct {
	APIURL    string  `json:"api_url"`
	Threshold float64 `json:"threshold"`
}

// DriftView is the formatted drift result. Drifted mirrors whether any
// feature crossed the threshold, driving the warning/success banner.
type DriftView struct {
	FeaturesAnalyzed int  `json:"features_analyzed"`
	FeaturesDrifted  int  `json:"features_drifted"`
	Drifted          bool `json:"drifted"`
}

// BatchResultView is the merged upload-plus-predictions table along with the
// ready-to-download CSV rendering of it.
type BatchResultView struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Processed int        `json:"processed"`
	CSV       string     `json:"csv"`
}
