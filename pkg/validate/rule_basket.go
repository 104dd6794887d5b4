package validate

import "github.com/Gunvolt24/checkout_gate/internal/domain"

// checkContent — в корзине есть хотя бы один товар или подарочный сертификат.
func checkContent(basket *domain.Basket) Verdict {
	if len(basket.ProductLineItems) > 0 || len(basket.GiftCertificateLineItems) > 0 {
		return Pass()
	}
	return Fail().BlockCheckout()
}

// checkCoupons — все купоны признаны валидными движком промоакций.
func checkCoupons(basket *domain.Basket) Verdict {
	for _, c := range basket.CouponLineItems {
		if !c.Valid {
			return Fail()
		}
	}
	return Pass()
}

// checkTax — налог рассчитан; без запроса проверки правило проходит.
func checkTax(basket *domain.Basket, required bool) Verdict {
	if !required || basket.TotalTax.Available() {
		return Pass()
	}
	return Fail()
}
