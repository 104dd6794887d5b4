package validate

import (
	"regexp"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// "PO Box", "P.O. Box", "P O B", "PO-Box", "P/O Box", "Post Office Box", "PO #12", "PO12".
var poBoxPattern = regexp.MustCompile(`(?i)^\s*p(ost)?[.\-/\s]*o(ffice)?[.\-/\s]*(b(ox)?\b|#|\d)`)

// IsPOBox — первая строка адреса похожа на абонентский ящик.
func IsPOBox(address1 string) bool {
	return poBoxPattern.MatchString(address1)
}

// checkPOBox — опасные и drop-ship товары нельзя отправить на абонентский ящик.
// Адрес берётся из отгрузки по умолчанию, товары проверяются по всем отгрузкам.
// Нет отгрузок, адреса или первой строки адреса — правило проходит.
func checkPOBox(basket *domain.Basket) Verdict {
	shipment := basket.DefaultShipment()
	if shipment == nil || shipment.ShippingAddress == nil {
		return Pass()
	}
	if !IsPOBox(shipment.ShippingAddress.Address1) {
		return Pass()
	}

	for _, li := range basket.ProductLineItems {
		if li == nil || li.Attributes.ProductType != domain.ProductTypeProduct {
			continue
		}
		if li.Attributes.Hazardous || li.Attributes.SourceChannel == domain.SourceChannelDropShip {
			return Fail().BlockCheckout()
		}
	}
	return Pass()
}
