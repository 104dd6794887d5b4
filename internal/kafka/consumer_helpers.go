package kafka

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/Gunvolt24/checkout_gate/pkg/ctxmeta"
	"github.com/Gunvolt24/checkout_gate/pkg/metrics"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// disposition — что делать с оффсетом после обработки сообщения.
type disposition int

const (
	commitProcessed disposition = iota // снимок сохранён
	commitSkipped                      // снимок отвергнут навсегда
	retryLater                         // временная ошибка, оффсет не коммитим
)

// process — обрабатывает сообщение, повторяя временные ошибки на том же сообщении:
// reader уже сдвинул позицию, следующий fetch его не вернёт.
// false — контекст отменён раньше успешной обработки, коммитить нельзя.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) bool {
	delay := c.processPause.initial
	for c.handleMessage(ctx, topic, msg) == retryLater {
		if !sleepCtx(ctx, c.processPause.jitter(delay)) {
			return false
		}
		delay = c.processPause.next(delay)
	}
	return true
}

// handleMessage — обработка одного снимка с таймаутом.
// Ключ сообщения (basket_id) попадает в контекст для логов.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) disposition {
	if len(msg.Key) > 0 {
		ctx = ctxmeta.WithBasketID(ctx, string(msg.Key))
	}

	processCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(processCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return commitProcessed
	case errors.Is(err, validate.ErrInvalidBasket):
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "invalid").Inc()
		c.log.Warnf(ctx, "invalid basket snapshot partition=%d offset=%d: %v (skipped)", msg.Partition, msg.Offset, err)
		return commitSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "retry").Inc()
		c.log.Warnf(ctx, "save snapshot failed partition=%d offset=%d: %v (retrying same message)", msg.Partition, msg.Offset, err)
		return retryLater
	}
}

func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// backoff — экспоненциальная задержка с equal-jitter.
type backoff struct {
	initial time.Duration
	max     time.Duration
	rnd     *rand.Rand
}

// next — удвоенная задержка, не больше max.
func (b backoff) next(d time.Duration) time.Duration {
	return min(d*2, b.max)
}

// jitter — половина задержки фиксирована, вторая половина случайна.
func (b backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleepCtx — false, если контекст отменён раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
