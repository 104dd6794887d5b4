//go:build integration

package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

var unsafeTopicChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// TopicFor — уникальные topic/group для теста: базовый префикс + имя теста + метка времени.
// Пример: TopicFor("baskets-itc", "TestKafka/valid") → "baskets-itc-TestKafka-valid-20250826T010203123456789".
func TopicFor(base, testName string) (topic, group string) {
	stamp := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	name := unsafeTopicChars.ReplaceAllString(testName, "-")
	topic = fmt.Sprintf("%s-%s-%s", base, name, stamp)
	return topic, topic + "-group"
}

// EnsureTopic — создаёт топик через admin-клиент (существующий топик не ошибка)
// и ждёт, пока у него появятся партиции в метаданных.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(bootstrapAddr(broker)), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, tErr)
	}

	return waitPartitions(ctx, client, topic)
}

// PublishBaskets — публикует снимки корзин (ключ сообщения — basket_id).
func PublishBaskets(ctx context.Context, brokers []string, topic string, baskets ...domain.Basket) error {
	msgs := make([]kafka.Message, 0, len(baskets))
	for _, b := range baskets {
		raw, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("marshal basket %s: %w", b.BasketID, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(b.BasketID), Value: raw})
	}
	return publish(ctx, brokers, topic, msgs...)
}

// PublishRaw — публикует произвольный payload (битые сообщения в тестах).
func PublishRaw(ctx context.Context, brokers []string, topic string, payload []byte) error {
	return publish(ctx, brokers, topic, kafka.Message{Value: payload})
}

func publish(ctx context.Context, brokers []string, topic string, msgs ...kafka.Message) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	defer w.Close()

	if err := w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// bootstrapAddr — первый адрес bootstrap-строки без схемы ("PLAINTEXT://host:port").
func bootstrapAddr(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if u, err := url.Parse(first); err == nil && u.Host != "" {
		return u.Host
	}
	return first
}

func waitPartitions(ctx context.Context, client *kafka.Client, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		switch {
		case err != nil:
			lastErr = err
		case len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0:
			return nil
		case len(meta.Topics) == 1:
			lastErr = meta.Topics[0].Error
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, lastErr)
			}
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}
