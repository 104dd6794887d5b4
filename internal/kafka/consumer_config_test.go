package kafka_test

import (
	"slices"
	"testing"
	"time"

	"github.com/Gunvolt24/checkout_gate/config"
	mykafka "github.com/Gunvolt24/checkout_gate/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first lower", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"first tabs", "\tFiRsT\t", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"explicit last -> last", "last", kafkago.LastOffset},
		{"LAST -> last", "LAST", kafkago.LastOffset},
		{"unknown -> last", "unknown", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mykafka.ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "baskets",
				GroupID:     "checkout-gate",
				StartOffset: tt.startOffset,

				// Эти поля не участвуют в ReaderConfig, но зададим любые значения
				ProcessTimeout: 3 * time.Second,
				RetryInitial:   1 * time.Second,
				RetryMax:       5 * time.Second,
			}

			rc := cfg.ReaderConfig()

			// 1) StartOffset нормализован
			if rc.StartOffset != tt.wantOffset {
				t.Fatalf("StartOffset: want %d, got %d", tt.wantOffset, rc.StartOffset)
			}

			// 2) Прокинулись базовые поля
			if !slices.Equal(rc.Brokers, cfg.Brokers) {
				t.Fatalf("Brokers: want %v, got %v", cfg.Brokers, rc.Brokers)
			}
			if rc.Topic != cfg.Topic {
				t.Fatalf("Topic: want %s, got %s", cfg.Topic, rc.Topic)
			}
			if rc.GroupID != cfg.GroupID {
				t.Fatalf("GroupID: want %s, got %s", cfg.GroupID, rc.GroupID)
			}
			// 3) Ручной коммит
			if rc.CommitInterval != 0 {
				t.Fatalf("CommitInterval: want 0, got %v", rc.CommitInterval)

			}
		})
	}

}

func TestNewConsumerConfig_FromAppConfig(t *testing.T) {
	t.Parallel()

	cfg := mykafka.NewConsumerConfig(config.Kafka{
		Brokers:        []string{"kafka:9092"},
		Topic:          "baskets",
		GroupID:        "checkout-gate",
		StartOffset:    "first",
		ProcessTimeout: 2 * time.Second,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       time.Second,
	})

	if cfg.Topic != "baskets" || cfg.GroupID != "checkout-gate" || cfg.StartOffset != "first" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ProcessTimeout != 2*time.Second || cfg.RetryInitial != 100*time.Millisecond || cfg.RetryMax != time.Second {
		t.Fatalf("timeouts not copied: %+v", cfg)
	}
	if rc := cfg.ReaderConfig(); rc.StartOffset != kafkago.FirstOffset {
		t.Fatalf("StartOffset: want first, got %d", rc.StartOffset)
	}
}
