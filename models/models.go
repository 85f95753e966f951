package models

// CustomerRecord is the feature payload the prediction API expects for one
// customer. Geography is one-hot encoded with France as the baseline: a French
// customer has both indicator fields set to 0.
type CustomerRecord struct {
	CreditScore      int     `json:"CreditScore"`
	Age              int     `json:"Age"`
	Tenure           int     `json:"Tenure"`
	Balance          float64 `json:"Balance"`
	NumOfProducts    int     `json:"NumOfProducts"`
	HasCrCard        int     `json:"HasCrCard"`
	IsActiveMember   int     `json:"IsActiveMember"`
	EstimatedSalary  float64 `json:"EstimatedSalary"`
	GeographyGermany int     `json:"Geography_Germany"`
	GeographySpain   int     `json:"Geography_Spain"`
}

// PredictionResult is one scored customer as returned by the prediction API.
type PredictionResult struct {
	ChurnProbability float64 `json:"churn_probability"`
	Prediction       int     `json:"prediction"`
	RiskLevel        string  `json:"risk_level"`
}

// BatchPredictionResponse wraps the per-row results of /predict/batch.
// The API contract is positional: predictions[i] scores request record i.
type BatchPredictionResponse struct {
	Predictions []PredictionResult `json:"predictions"`
}

// DriftReport summarizes a drift check run by the prediction API.
type DriftReport struct {
	FeaturesAnalyzed int `json:"features_analyzed"`
	FeaturesDrifted  int `json:"features_drifted"`
}

// EncodeGeography converts a geography name into the two indicator values the
// model was trained on. France is the omitted baseline category, so it (and
// any unrecognized value) maps to zero for both indicators. At most one
// indicator is ever set.
func EncodeGeography(geography string) (germany, spain int) {
	switch geography {
	case "Germany":
		return 1, 0
	case "Spain":
		return 0, 1
	default:
		return 0, 0
	}
}
