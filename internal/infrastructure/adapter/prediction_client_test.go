package adapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
	"github.com/Manaswita10/Finergize-sub000/internal/infrastructure/adapter"
)

func testVector() model.FeatureVector {
	risk := 0.2
	education := 0.5
	return model.FeatureVector{
		LoanType:       "student",
		LoanAmount:     0.0381,
		CreditScore:    0.7636,
		EducationLevel: &education,
		CreditRisk:     &risk,
	}
}

func newClient(url string, mutate func(*adapter.PredictionConfig)) *adapter.PredictionClient {
	cfg := adapter.DefaultPredictionConfig()
	cfg.URL = url
	if mutate != nil {
		mutate(&cfg)
	}
	return adapter.NewPredictionClient(cfg, nil)
}

func TestPredictionClient_Predict(t *testing.T) {
	t.Run("posts the vector and parses the decision", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, `"student"`, string(got["loan_type"]))
			assert.Equal(t, "null", string(got["mortgage"]), "unused columns arrive as nulls")

			_ = json.NewEncoder(w).Encode(model.Decision{
				Approved:   true,
				Confidence: 87.5,
				Feedback:   []string{"strong income"},
			})
		}))
		defer server.Close()

		decision, err := newClient(server.URL, nil).Predict(context.Background(), testVector())
		require.NoError(t, err)
		assert.True(t, decision.Approved)
		assert.Equal(t, 87.5, decision.Confidence)
		assert.Equal(t, []string{"strong income"}, decision.Feedback)
	})

	t.Run("sends a bearer token when an API key is configured", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(model.Decision{Approved: false, Confidence: 40})
		}))
		defer server.Close()

		_, err := newClient(server.URL, func(cfg *adapter.PredictionConfig) {
			cfg.APIKey = "secret-key"
		}).Predict(context.Background(), testVector())
		require.NoError(t, err)
	})

	t.Run("non-2xx status is an http_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newClient(server.URL, nil).Predict(context.Background(), testVector())
		var pErr *valueobject.PredictionError
		require.True(t, errors.As(err, &pErr))
		assert.Equal(t, valueobject.PredictionReasonHTTPError, pErr.Reason)
	})

	t.Run("malformed body is a malformed_response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		_, err := newClient(server.URL, nil).Predict(context.Background(), testVector())
		var pErr *valueobject.PredictionError
		require.True(t, errors.As(err, &pErr))
		assert.Equal(t, valueobject.PredictionReasonMalformed, pErr.Reason)
	})

	t.Run("slow service surfaces a timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		client := adapter.NewPredictionClient(adapter.PredictionConfig{URL: server.URL}, &http.Client{
			Timeout: 50 * time.Millisecond,
		})
		_, err := client.Predict(context.Background(), testVector())
		var pErr *valueobject.PredictionError
		require.True(t, errors.As(err, &pErr))
		assert.Equal(t, valueobject.PredictionReasonTimeout, pErr.Reason)
	})

	t.Run("retries transient failures up to the configured budget", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(model.Decision{Approved: true, Confidence: 75})
		}))
		defer server.Close()

		decision, err := newClient(server.URL, func(cfg *adapter.PredictionConfig) {
			cfg.MaxRetries = 3
			cfg.RetryBackoffMs = 1
		}).Predict(context.Background(), testVector())
		require.NoError(t, err)
		assert.True(t, decision.Approved)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("malformed responses are not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte("garbage"))
		}))
		defer server.Close()

		_, err := newClient(server.URL, func(cfg *adapter.PredictionConfig) {
			cfg.MaxRetries = 5
			cfg.RetryBackoffMs = 1
		}).Predict(context.Background(), testVector())
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("does not retry by default", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newClient(server.URL, nil).Predict(context.Background(), testVector())
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestStubPredictionClient(t *testing.T) {
	stub := adapter.NewStubPredictionClient()

	t.Run("is deterministic for the same vector", func(t *testing.T) {
		a, err := stub.Predict(context.Background(), testVector())
		require.NoError(t, err)
		b, err := stub.Predict(context.Background(), testVector())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("approves strong credit and declines weak credit", func(t *testing.T) {
		strong := testVector()
		strong.CreditScore = 0.9
		weak := testVector()
		weak.CreditScore = 0.1

		approved, err := stub.Predict(context.Background(), strong)
		require.NoError(t, err)
		declined, err := stub.Predict(context.Background(), weak)
		require.NoError(t, err)

		assert.True(t, approved.Approved)
		assert.False(t, declined.Approved)
	})
}
