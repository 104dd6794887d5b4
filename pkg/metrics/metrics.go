package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of basket snapshots fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of basket snapshots processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of basket snapshots failed to process",
		},
		[]string{"topic", "kind"}, // invalid|retry
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Basket cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of baskets currently in cache",
		},
	)
)

var (
	CheckoutValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_validations_total",
			Help: "Checkout validation outcomes",
		},
		[]string{"status", "reason"},
	)
	InventoryLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_lookups_total",
			Help: "Batched store inventory lookups",
		},
		[]string{"result"}, // ok|error|skipped
	)
	InventoryLookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_lookup_duration_seconds",
			Help:    "Duration of batched store inventory lookups",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			CheckoutValidations, InventoryLookups, InventoryLookupDuration,
		)
	})
}
