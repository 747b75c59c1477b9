package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// FeatureVector is the standardized numeric input sent to the prediction
// service for one application. The schema is fixed: fields irrelevant to the
// current loan type are serialized as explicit nulls, never omitted, because
// the model expects every column on every request.
type FeatureVector struct {
	LoanType     string  `json:"loan_type"`
	LoanAmount   float64 `json:"loan_amount"`
	Term         float64 `json:"term"`
	InterestRate float64 `json:"int_rate"`
	AnnualIncome float64 `json:"annual_income"`
	CreditScore  float64 `json:"credit_score"`
	PersonAge    float64 `json:"person_age"`
	DebtToIncome float64 `json:"debt_to_income"`

	// Raw ratio of annual income to loan amount, deliberately unscaled.
	IncomeToLoan float64 `json:"income_to_loan"`

	// Student fields.
	EducationLevel *float64 `json:"education_level"`
	CreditRisk     *float64 `json:"credit_risk"`

	// Agricultural fields.
	Mortgage      *float64 `json:"mortgage"`
	HomeOwnership *float64 `json:"home_ownership"`

	// Agricultural and business share emp_length.
	EmpLength *float64 `json:"emp_length"`

	// Business fields.
	CreditCardUsage    *float64 `json:"credit_card_usage"`
	CreditCardActivity *float64 `json:"credit_card_activity"`
}

// Hash returns a stable hex digest of the vector, used as the decision cache
// key: identical standardized inputs always produce the same key.
func (v FeatureVector) Hash() string {
	payload, err := json.Marshal(v)
	if err != nil {
		// Marshalling a struct of floats and pointers cannot fail.
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Decision is the prediction service's verdict for one feature vector.
type Decision struct {
	Approved   bool     `json:"approved"`
	Confidence float64  `json:"confidence"`
	Feedback   []string `json:"feedback"`
}
