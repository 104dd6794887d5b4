package validate

import (
	"encoding/json"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testSettings() Settings {
	s := DefaultSettings()
	s.DefaultShipmentID = "me"
	return s
}

func newTestValidator(s Settings, lookup ports.InventoryLookup, promotions ports.PromotionCatalog) *CheckoutValidator {
	return NewCheckoutValidator(s, NewStoreInventoryEvaluator(lookup, s), promotions,
		WithClock(func() time.Time { return testNow }))
}

// newBasket — корзина с одной отгрузкой на адрес, суммы рассчитаны.
func newBasket(items ...*domain.ProductLineItem) *domain.Basket {
	return &domain.Basket{
		BasketID:         "basket-1",
		CustomerID:       "customer-1",
		ProductLineItems: items,
		Shipments: []*domain.Shipment{{
			ShipmentID:      "home",
			Default:         true,
			ShippingAddress: &domain.Address{Address1: "1 Main St", City: "Springfield"},
		}},
		MerchandizeTotal: domain.NewMoney("25.00", "USD"),
		TotalTax:         domain.NewMoney("2.10", "USD"),
	}
}

func webItem(productID string, qty int) *domain.ProductLineItem {
	return &domain.ProductLineItem{
		ProductID:  productID,
		ShipmentID: "home",
		Quantity:   qty,
		Product: &domain.Product{
			ProductID:    productID,
			Online:       true,
			Availability: domain.AvailabilityModel{ATS: 100},
		},
		Attributes: domain.LineItemAttributes{ProductType: domain.ProductTypeProduct},
	}
}

// addPickup — добавляет отгрузку самовывоза и позицию в неё.
func addPickup(b *domain.Basket, shipmentID, storeID, productID string, qty int) *domain.ProductLineItem {
	b.Shipments = append(b.Shipments, &domain.Shipment{ShipmentID: shipmentID, StoreID: storeID})
	li := webItem(productID, qty)
	li.ShipmentID = shipmentID
	b.ProductLineItems = append(b.ProductLineItems, li)
	return li
}

func classItem(productID string, start time.Time) *domain.ProductLineItem {
	li := webItem(productID, 1)
	li.Product.SalesChannel = domain.SalesChannelSpecial
	li.Attributes.ProductType = domain.ProductTypeClass
	li.Attributes.ClassPayload = classPayloadJSON(start.Format(DefaultClassDateLayout))
	return li
}

func classPayloadJSON(date string) string {
	raw, _ := json.Marshal(map[string]string{"classDate": date})
	return string(raw)
}
