package port

import (
	"context"
	"time"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/event"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ScoringRequestRepository persists and retrieves scoring requests.
type ScoringRequestRepository interface {
	Save(ctx context.Context, req model.ScoringRequest) error
	FindByID(ctx context.Context, id string) (model.ScoringRequest, error)
	FindByApplicantID(ctx context.Context, applicantID string) ([]model.ScoringRequest, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// PredictionClient obtains an approval decision for a feature vector from
// the external prediction service.
type PredictionClient interface {
	Predict(ctx context.Context, vector model.FeatureVector) (model.Decision, error)
}

// DecisionCache caches decisions keyed by feature-vector hash. Lookups and
// stores are best-effort: a cache failure must not fail the scoring request.
type DecisionCache interface {
	Get(ctx context.Context, key string) (model.Decision, bool)
	Set(ctx context.Context, key string, decision model.Decision, ttl time.Duration) error
}
