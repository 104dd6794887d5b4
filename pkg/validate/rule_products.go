package validate

import "github.com/Gunvolt24/checkout_gate/internal/domain"

// checkProducts — товары позиций с доставкой по адресу существуют и онлайн.
// Enable — И по всем веб-позициям: ни одна не уходит в уровень «недоступно».
// Позиции самовывоза пропускаются.
func checkProducts(basket *domain.Basket, defaultShipmentID string) Verdict {
	webAvailable := true

	for _, li := range basket.ProductLineItems {
		if li == nil {
			continue
		}
		if basket.Shipment(li.ShipmentID).IsStorePickup(defaultShipmentID) {
			continue
		}
		if li.Product == nil || !li.Product.Online {
			v := Fail()
			v.Enable = webAvailable
			return v
		}
		if li.Product.Availability.Levels(li.Quantity).NotAvailable > 0 {
			webAvailable = false
		}
	}

	return Verdict{Enable: webAvailable}
}
