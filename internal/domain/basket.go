package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueState — состояние вычисляемого значения корзины (итог, налог).
type ValueState string

const (
	ValueAvailable ValueState = "available" // значение рассчитано
	ValuePending   ValueState = "pending"   // ещё не рассчитано
	ValueError     ValueState = "error"     // расчёт завершился ошибкой
)

// Money — денежная сумма корзины с признаком доступности.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	State    ValueState      `json:"state" validate:"omitempty,oneof=available pending error"`
}

// NewMoney — рассчитанная (available) сумма из строки; некорректная строка даёт ноль.
func NewMoney(amount, currency string) Money {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		value = decimal.Zero
	}
	return Money{Amount: value, Currency: currency, State: ValueAvailable}
}

// Available — значение рассчитано и может использоваться.
func (m Money) Available() bool { return m.State == ValueAvailable }

// Basket — корзина, проверяемая перед оформлением заказа.
type Basket struct {
	BasketID                 string                    `json:"basket_id" validate:"required"`
	CustomerID               string                    `json:"customer_id"`
	ProductLineItems         []*ProductLineItem        `json:"product_line_items" validate:"dive,required"`
	CouponLineItems          []CouponLineItem          `json:"coupon_line_items"`
	GiftCertificateLineItems []GiftCertificateLineItem `json:"gift_certificate_line_items"`
	Shipments                []*Shipment               `json:"shipments" validate:"dive,required"`
	MerchandizeTotal         Money                     `json:"merchandize_total"`
	TotalTax                 Money                     `json:"total_tax"`
	UpdatedAt                time.Time                 `json:"updated_at"`
}

// Shipment — возвращает отгрузку по ID или nil.
func (b *Basket) Shipment(id string) *Shipment {
	for _, s := range b.Shipments {
		if s != nil && s.ShipmentID == id {
			return s
		}
	}
	return nil
}

// DefaultShipment — отгрузка по умолчанию: помеченная Default, иначе первая.
func (b *Basket) DefaultShipment() *Shipment {
	for _, s := range b.Shipments {
		if s != nil && s.Default {
			return s
		}
	}
	if len(b.Shipments) > 0 {
		return b.Shipments[0]
	}
	return nil
}

// ItemsOf — товарные позиции конкретной отгрузки в порядке корзины.
func (b *Basket) ItemsOf(shipmentID string) []*ProductLineItem {
	var items []*ProductLineItem
	for _, li := range b.ProductLineItems {
		if li != nil && li.ShipmentID == shipmentID {
			items = append(items, li)
		}
	}
	return items
}

// Shipment — отгрузка корзины: доставка по адресу или самовывоз из магазина.
type Shipment struct {
	ShipmentID      string   `json:"shipment_id" validate:"required"`
	Default         bool     `json:"default,omitempty"`
	StoreID         string   `json:"store_id,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

// IsStorePickup — отгрузка направлена в магазин (store id задан и не равен идентификатору по умолчанию).
func (s *Shipment) IsStorePickup(defaultID string) bool {
	return s != nil && s.StoreID != "" && s.StoreID != defaultID
}

// Address — адрес доставки.
type Address struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	StateCode  string `json:"state_code,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// CouponLineItem — применённый купон; валидность определяет движок промоакций.
type CouponLineItem struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// GiftCertificateLineItem — подарочный сертификат в корзине.
type GiftCertificateLineItem struct {
	GiftCertificateID string          `json:"gift_certificate_id"`
	Amount            decimal.Decimal `json:"amount"`
}
