package valueobject

// Canonical field names. These are both the form keys accepted from the UI
// layer and the JSON keys of the feature vector sent to the model service.
const (
	FieldAnnualIncome       = "annual_income"
	FieldCreditScore        = "credit_score"
	FieldPersonAge          = "person_age"
	FieldDebtToIncome       = "debt_to_income"
	FieldEducationLevel     = "education_level"
	FieldCreditRisk         = "credit_risk"
	FieldMortgage           = "mortgage"
	FieldEmpLength          = "emp_length"
	FieldCreditCardUsage    = "credit_card_usage"
	FieldCreditCardActivity = "credit_card_activity"
	FieldHomeOwnership      = "home_ownership"
	FieldLoanAmount         = "loan_amount"
	FieldTerm               = "term"
	FieldInterestRate       = "int_rate"
)

var fieldLabels = map[string]string{
	FieldAnnualIncome:       "annual income",
	FieldCreditScore:        "credit score",
	FieldPersonAge:          "age",
	FieldDebtToIncome:       "debt-to-income ratio",
	FieldEducationLevel:     "education level",
	FieldCreditRisk:         "credit risk score",
	FieldMortgage:           "mortgage amount",
	FieldEmpLength:          "employment length",
	FieldCreditCardUsage:    "credit card usage percentage",
	FieldCreditCardActivity: "credit card activity",
	FieldHomeOwnership:      "home ownership status",
	FieldLoanAmount:         "loan amount",
	FieldTerm:               "loan term",
	FieldInterestRate:       "interest rate",
}

// FieldLabel returns the user-facing label for a canonical field name.
// Unknown fields fall back to the raw name.
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
