package kafka

import (
	"testing"
	"time"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.brokers[0] != "localhost:9092" {
		t.Errorf("expected broker localhost:9092, got %s", p.brokers[0])
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestNewProducerBatchTimeout(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"kafka:9092"}, BatchTimeoutMs: 50})
	if p.batch != 50*time.Millisecond {
		t.Errorf("expected 50ms batch timeout, got %v", p.batch)
	}

	p = NewProducer(Config{Brokers: []string{"kafka:9092"}})
	if p.batch != 10*time.Millisecond {
		t.Errorf("expected default 10ms batch timeout, got %v", p.batch)
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("req-123"),
		Value: []byte(`{"approved":true}`),
		Headers: map[string]string{
			"content-type": "application/json",
			"event_type":   "ApplicationScored",
		},
	}

	if string(msg.Key) != "req-123" {
		t.Errorf("expected key req-123, got %s", string(msg.Key))
	}
	if len(msg.Headers) != 2 {
		t.Errorf("expected 2 headers, got %d", len(msg.Headers))
	}
}
