package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
)

// StubPredictionClient is a development/test adapter that returns a
// deterministic decision derived from the feature vector itself.
// It implements port.PredictionClient.
type StubPredictionClient struct{}

// NewStubPredictionClient creates a new stub adapter.
func NewStubPredictionClient() *StubPredictionClient {
	return &StubPredictionClient{}
}

// Predict approves when the standardized credit score clears 0.5 (raw 575 on
// the 300-850 scale) and derives a stable confidence from a hash of the
// vector, so test scenarios are repeatable.
func (c *StubPredictionClient) Predict(_ context.Context, vector model.FeatureVector) (model.Decision, error) {
	approved := vector.CreditScore >= 0.5

	h := sha256.Sum256([]byte(vector.Hash()))
	confidence := 50 + float64(binary.BigEndian.Uint32(h[:4])%51) // range [50, 100]

	feedback := []string{"decision produced by stub predictor"}
	if !approved {
		feedback = append(feedback, "credit score below approval threshold")
	}

	return model.Decision{
		Approved:   approved,
		Confidence: confidence,
		Feedback:   feedback,
	}, nil
}
