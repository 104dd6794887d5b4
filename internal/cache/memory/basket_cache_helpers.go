package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.id)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if !now.After(ent.expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// cloneBasket — глубокая копия корзины: проверка пишет минимальное количество в позиции,
// и это не должно попадать в кэш.
func cloneBasket(b *domain.Basket) *domain.Basket {
	if b == nil {
		return nil
	}
	cloned := *b

	if b.ProductLineItems != nil {
		cloned.ProductLineItems = make([]*domain.ProductLineItem, len(b.ProductLineItems))
		for i, li := range b.ProductLineItems {
			cloned.ProductLineItems[i] = cloneLineItem(li)
		}
	}
	if b.Shipments != nil {
		cloned.Shipments = make([]*domain.Shipment, len(b.Shipments))
		for i, s := range b.Shipments {
			cloned.Shipments[i] = cloneShipment(s)
		}
	}
	if b.CouponLineItems != nil {
		cloned.CouponLineItems = append([]domain.CouponLineItem(nil), b.CouponLineItems...)
	}
	if b.GiftCertificateLineItems != nil {
		cloned.GiftCertificateLineItems = append([]domain.GiftCertificateLineItem(nil), b.GiftCertificateLineItems...)
	}
	return &cloned
}

func cloneLineItem(li *domain.ProductLineItem) *domain.ProductLineItem {
	if li == nil {
		return nil
	}
	cloned := *li
	if li.Product != nil {
		product := *li.Product
		cloned.Product = &product
	}
	return &cloned
}

func cloneShipment(s *domain.Shipment) *domain.Shipment {
	if s == nil {
		return nil
	}
	cloned := *s
	if s.ShippingAddress != nil {
		address := *s.ShippingAddress
		cloned.ShippingAddress = &address
	}
	return &cloned
}
