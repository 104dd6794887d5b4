package domain

// Status — итоговый статус проверки корзины.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// Reason — код причины отказа (только вместе со StatusError).
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonClassDate    Reason = "jclass-date-error"
	ReasonWithin48Hour Reason = "within-48-hours"
	ReasonQuantity     Reason = "quantity-error"
	ReasonCoupon       Reason = "coupon-error"
	ReasonTax          Reason = "tax-error"
	ReasonPOBox        Reason = "pobox-error"
)

// Outcome — результат проверки корзины перед оформлением.
type Outcome struct {
	Status         Status          `json:"status"`
	Reason         Reason          `json:"reason,omitempty"`
	EnableCheckout bool            `json:"enable_checkout"`
	Inventory      InventoryMatrix `json:"inventory,omitempty"`
}

// OK — статус OK.
func (o Outcome) OK() bool { return o.Status == StatusOK }
