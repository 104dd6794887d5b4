package validate

import (
	"fmt"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

type inventoryPair struct {
	storeID string
	item    *domain.ProductLineItem
}

// InventoryBatch — пакетный запрос остатков и позиции, которые нужно с ним сверить.
type InventoryBatch struct {
	Request domain.InventoryRequest
	pairs   []inventoryPair
}

// BuildInventoryBatch — одна группа на каждую отгрузку в магазин, товары в порядке корзины.
// Отгрузки с store id по умолчанию или без store id в запрос не попадают.
// Группы одного магазина не объединяются.
func BuildInventoryBatch(basket *domain.Basket, defaultShipmentID string) InventoryBatch {
	var batch InventoryBatch
	if basket == nil {
		return batch
	}

	for _, shipment := range basket.Shipments {
		if !shipment.IsStorePickup(defaultShipmentID) {
			continue
		}
		items := basket.ItemsOf(shipment.ShipmentID)
		if len(items) == 0 {
			continue
		}

		group := domain.InventoryGroup{
			StoreID:    shipment.StoreID,
			ProductIDs: make([]string, 0, len(items)),
		}
		for _, li := range items {
			group.ProductIDs = append(group.ProductIDs, li.ProductID)
			batch.pairs = append(batch.pairs, inventoryPair{storeID: shipment.StoreID, item: li})
		}
		batch.Request.Stores = append(batch.Request.Stores, group)
	}

	return batch
}

// Empty — в корзине нет отгрузок в магазин.
func (b InventoryBatch) Empty() bool { return b.Request.Empty() }

// Reconcile — сверяет ответ сервиса с запрошенными количествами.
// Позиция недостаточна, если остаток меньше запрошенного или равен значению-маркеру
// ограниченного остатка. Отсутствующий ключ в ответе — ErrDataIntegrity.
func (b InventoryBatch) Reconcile(resp domain.InventoryResponse, limitedStockSentinel int) (domain.InventoryMatrix, bool, error) {
	matrix := make(domain.InventoryMatrix, len(b.Request.Stores))
	sufficient := true

	for _, p := range b.pairs {
		entry, ok := resp[domain.InventoryKey(p.storeID, p.item.ProductID)]
		if !ok {
			return nil, false, fmt.Errorf("%w: no inventory for store=%s product=%s",
				ErrDataIntegrity, p.storeID, p.item.ProductID)
		}

		rec := domain.InventoryRecord{
			Quantity:     entry.Quantity,
			Requested:    p.item.Quantity,
			Availability: domain.Available,
		}
		if entry.Quantity < p.item.Quantity || entry.Quantity == limitedStockSentinel {
			rec.Availability = domain.Unavailable
			sufficient = false
		}
		matrix.Put(p.storeID, p.item.ProductID, rec)
	}

	return matrix, sufficient, nil
}
