package kafka

import "testing"

func TestNewProducer(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestGetOrCreateWriter(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.getOrCreateWriter("topic-a")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic returns the same writer instance.
	if w2 := p.getOrCreateWriter("topic-a"); w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	if w3 := p.getOrCreateWriter("topic-b"); w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}

	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	p.getOrCreateWriter("topic-a")

	if err := p.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected writers map cleared after Close, got %d entries", len(p.writers))
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("loan-123"),
		Value: []byte(`{"loan_amount":"100000"}`),
		Headers: map[string]string{
			"event_type": "credit.loan.issued",
		},
	}

	if string(msg.Key) != "loan-123" {
		t.Errorf("unexpected key: %s", string(msg.Key))
	}
	if msg.Headers["event_type"] != "credit.loan.issued" {
		t.Errorf("unexpected event_type header: %s", msg.Headers["event_type"])
	}
}
