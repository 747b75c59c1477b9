package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("ApplicationScored", "req-123", "ScoringRequest")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "ApplicationScored" {
		t.Errorf("expected event type %q, got %q", "ApplicationScored", event.EventType())
	}

	if event.AggregateID() != "req-123" {
		t.Errorf("expected aggregate ID %q, got %q", "req-123", event.AggregateID())
	}

	if event.AggregateType() != "ScoringRequest" {
		t.Errorf("expected aggregate type %q, got %q", "ScoringRequest", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventMarshalsToJSON(t *testing.T) {
	event := NewBaseEvent("ScoringRequestReceived", "req-456", "ScoringRequest")

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("expected marshal to succeed, got error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	if parsed["event_type"] != "ScoringRequestReceived" {
		t.Errorf("expected event_type in payload, got %v", parsed["event_type"])
	}
	if parsed["aggregate_id"] != "req-456" {
		t.Errorf("expected aggregate_id in payload, got %v", parsed["aggregate_id"])
	}
}
