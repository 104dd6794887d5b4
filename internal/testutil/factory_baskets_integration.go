//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeBasket — мини-генератор валидной корзины: одна отгрузка на адрес, один товар в наличии.
func MakeBasket(opts ...func(*domain.Basket)) domain.Basket {
	now := time.Now().UTC().Truncate(time.Second)

	b := domain.Basket{
		BasketID:   "bsk-" + UniqSuffix(),
		CustomerID: "cust-" + UniqSuffix(),
		ProductLineItems: []*domain.ProductLineItem{
			makeLineItem("sku-"+UniqSuffix(), "home", 1),
		},
		Shipments: []*domain.Shipment{{
			ShipmentID:      "home",
			Default:         true,
			ShippingAddress: &domain.Address{FirstName: "John", LastName: "Smith", Address1: "Main st 1", City: "Metropolis"},
		}},
		MerchandizeTotal: domain.NewMoney("100.00", "USD"),
		TotalTax:         domain.NewMoney("8.25", "USD"),
		UpdatedAt:        now,
	}

	for _, fn := range opts {
		fn(&b)
	}
	return b
}

func makeLineItem(productID, shipmentID string, qty int) *domain.ProductLineItem {
	return &domain.ProductLineItem{
		UUID:       "li-" + UniqSuffix(),
		ProductID:  productID,
		ShipmentID: shipmentID,
		Quantity:   qty,
		Product: &domain.Product{
			ProductID:    productID,
			Name:         "Widget",
			Online:       true,
			Availability: domain.AvailabilityModel{ATS: 50},
		},
		Attributes: domain.LineItemAttributes{ProductType: domain.ProductTypeProduct},
	}
}

func WithCustomer(cust string) func(*domain.Basket) {
	return func(b *domain.Basket) { b.CustomerID = cust }
}

func WithBasketID(id string) func(*domain.Basket) {
	return func(b *domain.Basket) { b.BasketID = id }
}

func WithUpdatedAt(ts time.Time) func(*domain.Basket) {
	return func(b *domain.Basket) { b.UpdatedAt = ts }
}

// WithStorePickup — добавляет отгрузку в магазин и позицию в неё.
func WithStorePickup(storeID, productID string, qty int) func(*domain.Basket) {
	return func(b *domain.Basket) {
		shipmentID := "pickup-" + storeID
		b.Shipments = append(b.Shipments, &domain.Shipment{ShipmentID: shipmentID, StoreID: storeID})
		b.ProductLineItems = append(b.ProductLineItems, makeLineItem(productID, shipmentID, qty))
	}
}

// WithItems — заменяет позиции на n товаров в отгрузке по умолчанию.
func WithItems(n int) func(*domain.Basket) {
	return func(b *domain.Basket) {
		b.ProductLineItems = make([]*domain.ProductLineItem, 0, n)
		for i := 0; i < n; i++ {
			b.ProductLineItems = append(b.ProductLineItems, makeLineItem("sku-"+UniqSuffix(), "home", i+1))
		}
	}
}
