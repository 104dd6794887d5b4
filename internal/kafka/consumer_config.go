package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/checkout_gate/config"
)

// ConsumerConfig — параметры потребителя снимков корзин.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// NewConsumerConfig — из секции Kafka конфигурации приложения.
func NewConsumerConfig(c config.Kafka) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        c.Brokers,
		Topic:          c.Topic,
		GroupID:        c.GroupID,
		StartOffset:    c.StartOffset,
		ProcessTimeout: c.ProcessTimeout,
		RetryInitial:   c.RetryInitial,
		RetryMax:       c.RetryMax,
	}
}

// ReaderConfig — конфигурация kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
