package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

//go:generate mockgen -source=consumer.go -destination=./mocks/mock_consumer.go -package=mocks

// reader — минимальный контракт над kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// snapshotSaver — разбор, структурная проверка и сохранение снимка корзины.
type snapshotSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — читает снимки корзин из топика и передаёт их в сервис корзин.
// Оффсет коммитится только после сохранения или окончательного отказа (at-least-once).
type Consumer struct {
	reader         reader
	service        snapshotSaver
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     backoff // ошибки брокера
	processPause   backoff // повтор того же сообщения после временной ошибки
	closeOnce      sync.Once
}

// NewConsumer — конструктор; нулевые таймауты конфига заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, service snapshotSaver, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, service, log,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newConsumer(r reader, cfg *ConsumerConfig, service snapshotSaver, log ports.Logger, rnd *rand.Rand) *Consumer {
	processTimeout := orDefault(cfg.ProcessTimeout, 5*time.Second)
	retryInitial := orDefault(cfg.RetryInitial, time.Second)
	retryMax := orDefault(cfg.RetryMax, 30*time.Second)

	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: processTimeout,
		fetchRetry:     backoff{initial: retryInitial, max: retryMax, rnd: rnd},
		processPause:   backoff{initial: min(retryInitial, 500*time.Millisecond), max: retryMax, rnd: rnd},
	}
}

// Run — цикл чтения до отмены контекста.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "basket consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	delay := c.fetchRetry.initial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.fetchRetry.jitter(delay)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, sleep)
			if !sleepCtx(ctx, sleep) {
				return ctx.Err()
			}
			delay = c.fetchRetry.next(delay)
			continue
		}

		delay = c.fetchRetry.initial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.process(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
		}
	}
}

// Close — закрывает reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
