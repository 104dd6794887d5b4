package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/metrics"
)

var _ ports.BasketCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	basket    *domain.Basket
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш корзин с TTL (sliding: продлевается при чтении).
// Наружу отдаются только копии.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — ttl <= 0 отключает истечение.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id string) (*domain.Basket, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneBasket(ent.basket), true
}

func (c *LRUCacheTTL) Set(_ context.Context, basket *domain.Basket) error {
	if basket == nil || basket.BasketID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[basket.BasketID]; ok {
		ent := elem.Value.(*entry)
		ent.basket = cloneBasket(basket)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        basket.BasketID,
		basket:    cloneBasket(basket),
		expiresAt: c.expiryFrom(now),
	})
	c.index[basket.BasketID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — загрузка пачки корзин; прерывается при отмене контекста.
// Корзины идут от новых к старым, поэтому вставляются с конца: самые свежие остаются в голове LRU.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, baskets []*domain.Basket) error {
	for i := len(baskets) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, baskets[i]); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число элементов.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
