package inventory

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
)

// LookupBasketChecker — проверка остатков корзины целиком поверх пакетного lookup.
// Используется стратегией "basket", когда внешнего валидатора корзин нет.
type LookupBasketChecker struct {
	lookup   ports.InventoryLookup
	settings validate.Settings
}

var _ ports.BasketInventoryChecker = (*LookupBasketChecker)(nil)

// NewLookupBasketChecker — конструктор.
func NewLookupBasketChecker(lookup ports.InventoryLookup, settings validate.Settings) *LookupBasketChecker {
	return &LookupBasketChecker{lookup: lookup, settings: settings}
}

// CheckBasket — true, если во всех магазинах самовывоза хватает остатков.
// Товар, отсутствующий в ответе, — ErrDataIntegrity, как и в стратегии "store".
func (c *LookupBasketChecker) CheckBasket(ctx context.Context, basket *domain.Basket) (bool, error) {
	batch := validate.BuildInventoryBatch(basket, c.settings.DefaultShipmentID)
	if batch.Empty() {
		return true, nil
	}

	resp, err := c.lookup.Lookup(ctx, batch.Request)
	if err != nil {
		return false, fmt.Errorf("check basket: %w", err)
	}

	_, sufficient, err := batch.Reconcile(resp, c.settings.LimitedStockSentinel)
	if err != nil {
		return false, err
	}
	return sufficient, nil
}
