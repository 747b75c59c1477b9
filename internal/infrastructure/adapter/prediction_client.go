package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Prediction Service Adapter
// ---------------------------------------------------------------------------

// PredictionConfig holds configuration for the prediction service adapter.
type PredictionConfig struct {
	// URL is the full endpoint the feature vector is POSTed to.
	URL string
	// APIKey is the authentication credential; empty disables the header.
	APIKey string
	// TimeoutSeconds bounds each HTTP attempt.
	TimeoutSeconds int
	// MaxRetries is the number of retry attempts on transient failures.
	// The call is idempotent, but the default is 0: retry policy belongs
	// to the caller unless explicitly configured here.
	MaxRetries int
	// RetryBackoffMs is the base backoff in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultPredictionConfig returns sensible defaults for development.
func DefaultPredictionConfig() PredictionConfig {
	return PredictionConfig{
		URL:            "http://localhost:5000/predict",
		TimeoutSeconds: 10,
		MaxRetries:     0,
		RetryBackoffMs: 200,
	}
}

// PredictionClient calls the external approval-prediction model over HTTP.
// It implements port.PredictionClient.
type PredictionClient struct {
	config PredictionConfig
	client *http.Client
}

var _ port.PredictionClient = (*PredictionClient)(nil)

// NewPredictionClient creates the adapter. httpClient may be nil, in which
// case one with the configured timeout is constructed.
func NewPredictionClient(config PredictionConfig, httpClient *http.Client) *PredictionClient {
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 10
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		}
	}
	return &PredictionClient{config: config, client: httpClient}
}

// Predict POSTs the feature vector and parses the decision. All failures
// surface as *valueobject.PredictionError with a reason of timeout,
// http_error, or malformed_response.
func (c *PredictionClient) Predict(ctx context.Context, vector model.FeatureVector) (model.Decision, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := time.Duration(c.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
			select {
			case <-ctx.Done():
				return model.Decision{}, &valueobject.PredictionError{
					Reason: valueobject.PredictionReasonTimeout,
					Err:    ctx.Err(),
				}
			case <-time.After(backoff + jitter):
			}
		}

		decision, err := c.predictOnce(ctx, vector)
		if err == nil {
			return decision, nil
		}
		lastErr = err

		// Malformed responses will not improve on retry.
		var pErr *valueobject.PredictionError
		if errors.As(err, &pErr) && pErr.Reason == valueobject.PredictionReasonMalformed {
			return model.Decision{}, err
		}
	}

	return model.Decision{}, lastErr
}

func (c *PredictionClient) predictOnce(ctx context.Context, vector model.FeatureVector) (model.Decision, error) {
	body, err := json.Marshal(vector)
	if err != nil {
		return model.Decision{}, &valueobject.PredictionError{
			Reason: valueobject.PredictionReasonMalformed,
			Err:    fmt.Errorf("marshal feature vector: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return model.Decision{}, &valueobject.PredictionError{
			Reason: valueobject.PredictionReasonHTTPError,
			Err:    err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		reason := valueobject.PredictionReasonHTTPError
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			reason = valueobject.PredictionReasonTimeout
		}
		return model.Decision{}, &valueobject.PredictionError{Reason: reason, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Decision{}, &valueobject.PredictionError{
			Reason: valueobject.PredictionReasonHTTPError,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.Decision{}, &valueobject.PredictionError{
			Reason: valueobject.PredictionReasonHTTPError,
			Err:    err,
		}
	}

	var decision model.Decision
	if err := json.Unmarshal(payload, &decision); err != nil {
		return model.Decision{}, &valueobject.PredictionError{
			Reason: valueobject.PredictionReasonMalformed,
			Err:    err,
		}
	}

	return decision, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
