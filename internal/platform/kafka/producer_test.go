package kafka

import (
	"testing"

	kafkago "github.com/segmentio/kafka-go"
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

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("merchant-42"),
		Value: []byte(`{"funding_amount":"50000"}`),
		Headers: map[string]string{
			"content-type": "application/json",
			"event_type":   "pricing.offer.priced",
		},
	}

	if string(msg.Key) != "merchant-42" {
		t.Errorf("expected key merchant-42, got %s", string(msg.Key))
	}
	if len(msg.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(msg.Headers))
	}
	if msg.Headers["event_type"] != "pricing.offer.priced" {
		t.Errorf("unexpected event_type header: %s", msg.Headers["event_type"])
	}
}

func TestGetOrCreateWriter(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092"},
	}
	p := NewProducer(cfg)

	w1 := p.getOrCreateWriter("pricing.events")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic should return the same writer instance.
	w2 := p.getOrCreateWriter("pricing.events")
	if w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	// Different topic should return a different writer.
	w3 := p.getOrCreateWriter("pricing.audit")
	if w3 == nil {
		t.Fatal("expected non-nil writer for pricing.audit")
	}
	if w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}

	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestGetOrCreateWriterTLS(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"localhost:9092"},
		TLS:     true,
	})

	w := p.getOrCreateWriter("pricing.events")
	tr, ok := w.Transport.(*kafkago.Transport)
	if !ok {
		t.Fatalf("expected *kafka.Transport, got %T", w.Transport)
	}
	if tr.TLS == nil {
		t.Fatal("expected TLS config on transport")
	}

	// Without the flag the writer keeps the default transport.
	plain := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	if pw := plain.getOrCreateWriter("pricing.events"); pw.Transport != nil {
		t.Errorf("expected nil transport without TLS, got %T", pw.Transport)
	}
}

func TestProducerClose(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092"},
	}
	p := NewProducer(cfg)

	_ = p.getOrCreateWriter("pricing.events")
	_ = p.getOrCreateWriter("pricing.audit")

	if len(p.writers) != 2 {
		t.Fatalf("expected 2 writers before close, got %d", len(p.writers))
	}

	err := p.Close()
	if err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}
