package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// applyMinQuantities — проставляет позициям минимальное количество по активным промоакциям.
// Промоакция без атрибута minQuantity пропускается; ошибка каталога прерывает проверку.
func applyMinQuantities(ctx context.Context, basket *domain.Basket, catalog ports.PromotionCatalog) error {
	for _, li := range basket.ProductLineItems {
		if li == nil {
			continue
		}
		minQty, err := minOrderQuantity(ctx, li, catalog)
		if err != nil {
			return err
		}
		li.MinOrderQuantity = minQty
	}
	return nil
}

func minOrderQuantity(ctx context.Context, li *domain.ProductLineItem, catalog ports.PromotionCatalog) (int, error) {
	best := 1
	if li.Product == nil || catalog == nil {
		return best, nil
	}

	promotions, err := catalog.ActivePromotions(ctx, li.ProductID)
	if err != nil {
		return 0, fmt.Errorf("active promotions for %s: %w", li.ProductID, err)
	}
	for _, p := range promotions {
		q, err := p.MinQuantity()
		if err != nil {
			continue
		}
		if q > best {
			best = q
		}
	}
	return best, nil
}

// checkQuantities — проверка количества по позициям в порядке корзины, первая ошибка решает.
// Выход за [min, max] даёт CauseQuantityRange, остальные нарушения — отказ без причины.
func checkQuantities(basket *domain.Basket, settings Settings) Verdict {
	for _, li := range basket.ProductLineItems {
		if li == nil {
			continue
		}
		if v := checkQuantity(basket, li, settings); v.Failed {
			return v
		}
	}
	return Pass()
}

func checkQuantity(basket *domain.Basket, li *domain.ProductLineItem, settings Settings) Verdict {
	if li.Product == nil {
		return Fail()
	}

	pickup := basket.Shipment(li.ShipmentID).IsStorePickup(settings.DefaultShipmentID)
	if li.Product.SalesChannel == domain.SalesChannelSpecial && !pickup && !li.IsClass() {
		return Fail()
	}

	maxQty := li.Product.MaxOrderQuantity
	if !settings.IgnoreMaxQuantity && maxQty > 0 && li.Quantity > maxQty {
		return FailWith(CauseQuantityRange)
	}
	if li.Quantity < li.MinOrderQuantity {
		return FailWith(CauseQuantityRange)
	}
	return Pass()
}
