package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Manaswita10/Finergize-sub000/internal/application/dto"
	"github.com/Manaswita10/Finergize-sub000/internal/application/usecase"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ScoringHandler exposes the scoring pipeline over HTTP.
type ScoringHandler struct {
	scoreUC    *usecase.ScoreApplicationUseCase
	getUC      *usecase.GetScoringRequestUseCase
	listUC     *usecase.ListApplicantRequestsUseCase
	logger     *slog.Logger
	decisions  metric.Int64Counter
	rejections metric.Int64Counter
}

// NewScoringHandler creates the handler. meter may be nil when metrics are
// disabled (tests).
func NewScoringHandler(
	scoreUC *usecase.ScoreApplicationUseCase,
	getUC *usecase.GetScoringRequestUseCase,
	listUC *usecase.ListApplicantRequestsUseCase,
	logger *slog.Logger,
	meter metric.Meter,
) *ScoringHandler {
	h := &ScoringHandler{
		scoreUC: scoreUC,
		getUC:   getUC,
		listUC:  listUC,
		logger:  logger,
	}
	if meter != nil {
		h.decisions, _ = meter.Int64Counter("risk_scoring_decisions_total",
			metric.WithDescription("Count of scoring decisions by outcome"))
		h.rejections, _ = meter.Int64Counter("risk_validation_rejections_total",
			metric.WithDescription("Count of validation rejections by field"))
	}
	return h
}

// RegisterRoutes attaches scoring routes to the given mux.
func (h *ScoringHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/score", h.score)
	mux.HandleFunc("GET /v1/requests/{id}", h.getRequest)
	mux.HandleFunc("GET /v1/applicants/{id}/requests", h.listRequests)
}

func (h *ScoringHandler) score(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.ScoreApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.scoreUC.Execute(ctx, req)
	if err != nil {
		h.handleScoreError(w, r, resp, err)
		return
	}

	if h.decisions != nil {
		h.decisions.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("approved", resp.Approved),
			attribute.String("loan_type", resp.LoanType),
		))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ScoringHandler) handleScoreError(w http.ResponseWriter, r *http.Request, resp dto.ScoringRequestResponse, err error) {
	ctx := r.Context()

	var vErr *valueobject.ValidationError
	if errors.As(err, &vErr) {
		if h.rejections != nil {
			h.rejections.Add(ctx, 1, metric.WithAttributes(
				attribute.String("field", vErr.Field),
				attribute.String("reason", vErr.Reason),
			))
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":      vErr.Error(),
			"field":      vErr.Field,
			"reason":     vErr.Reason,
			"request_id": resp.ID,
		})
		return
	}

	var pErr *valueobject.PredictionError
	if errors.As(err, &pErr) {
		// Never leak model-service internals to the applicant.
		h.logger.ErrorContext(ctx, "prediction service call failed",
			"reason", pErr.Reason, "error", pErr.Err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":      "scoring is temporarily unavailable, please try again",
			"request_id": resp.ID,
		})
		return
	}

	h.logger.ErrorContext(ctx, "scoring request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (h *ScoringHandler) getRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	resp, err := h.getUC.Execute(r.Context(), dto.GetScoringRequestRequest{RequestID: id})
	if err != nil {
		if errors.Is(err, valueobject.ErrScoringRequestNotFound) {
			writeError(w, http.StatusNotFound, "scoring request not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "lookup failed", "request_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ScoringHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("id")

	resps, err := h.listUC.Execute(r.Context(), dto.ListApplicantRequestsRequest{ApplicantID: applicantID})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "applicant history lookup failed",
			"applicant_id", applicantID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"requests": resps})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
