package domain

// ProductType — тип товара из атрибутов позиции.
type ProductType string

const (
	ProductTypeProduct ProductType = "Product" // обычный товар
	ProductTypeClass   ProductType = "Class"   // занятие по расписанию
)

const (
	// SalesChannelSpecial — канал продаж "S" (специальные/расписанные позиции).
	SalesChannelSpecial = "S"
	// SourceChannelDropShip — позиция отгружается поставщиком напрямую.
	SourceChannelDropShip = "drop-ship"
)

// ProductLineItem — товарная позиция корзины.
// Product == nil означает, что товар удалён или снят с продажи.
type ProductLineItem struct {
	UUID             string             `json:"uuid,omitempty"`
	ProductID        string             `json:"product_id" validate:"required"`
	Product          *Product           `json:"product,omitempty"`
	ShipmentID       string             `json:"shipment_id"`
	Quantity         int                `json:"quantity" validate:"gte=0"`
	MinOrderQuantity int                `json:"min_order_quantity,omitempty"`
	Attributes       LineItemAttributes `json:"attributes"`
}

// LineItemAttributes — кастомные атрибуты позиции.
type LineItemAttributes struct {
	ProductType   ProductType `json:"product_type,omitempty"`
	Hazardous     bool        `json:"hazardous,omitempty"`
	SourceChannel string      `json:"source_channel,omitempty"`
	ClassPayload  string      `json:"class_payload,omitempty"` // JSON с датой занятия
}

// SalesChannel — канал продаж товара позиции ("" если товара нет).
func (li *ProductLineItem) SalesChannel() string {
	if li.Product == nil {
		return ""
	}
	return li.Product.SalesChannel
}

// IsClass — позиция является занятием по расписанию.
func (li *ProductLineItem) IsClass() bool {
	return li.Attributes.ProductType == ProductTypeClass
}

// Product — товар каталога в том виде, в каком он нужен проверкам.
type Product struct {
	ProductID        string            `json:"product_id"`
	Name             string            `json:"name,omitempty"`
	Online           bool              `json:"online"`
	SalesChannel     string            `json:"sales_channel,omitempty"`
	MaxOrderQuantity int               `json:"max_order_quantity,omitempty"` // 0 — не задан
	Availability     AvailabilityModel `json:"availability"`
}

// AvailabilityModel — модель доступности товара в веб-канале.
type AvailabilityModel struct {
	ATS                 int  `json:"ats"`
	BackorderAllocation int  `json:"backorder_allocation,omitempty"`
	Perpetual           bool `json:"perpetual,omitempty"`
}

// AvailabilityLevels — раскладка запрошенного количества по уровням доступности.
type AvailabilityLevels struct {
	InStock      int `json:"in_stock"`
	Backorder    int `json:"backorder"`
	NotAvailable int `json:"not_available"`
}

// Levels — распределяет quantity по уровням: сначала склад, затем бэкордер,
// остаток считается недоступным.
func (m AvailabilityModel) Levels(quantity int) AvailabilityLevels {
	if quantity <= 0 {
		return AvailabilityLevels{}
	}
	if m.Perpetual {
		return AvailabilityLevels{InStock: quantity}
	}

	var levels AvailabilityLevels
	rest := quantity

	levels.InStock = min(rest, max(m.ATS, 0))
	rest -= levels.InStock

	levels.Backorder = min(rest, max(m.BackorderAllocation, 0))
	rest -= levels.Backorder

	levels.NotAvailable = rest
	return levels
}
