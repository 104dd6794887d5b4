package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAvailabilityModel_Levels(t *testing.T) {
	tests := []struct {
		name  string
		model AvailabilityModel
		qty   int
		want  AvailabilityLevels
	}{
		{"zero quantity", AvailabilityModel{ATS: 5}, 0, AvailabilityLevels{}},
		{"in stock", AvailabilityModel{ATS: 5}, 3, AvailabilityLevels{InStock: 3}},
		{"backorder", AvailabilityModel{ATS: 2, BackorderAllocation: 2}, 3, AvailabilityLevels{InStock: 2, Backorder: 1}},
		{"not available", AvailabilityModel{ATS: 1}, 4, AvailabilityLevels{InStock: 1, NotAvailable: 3}},
		{"negative ats", AvailabilityModel{ATS: -3}, 2, AvailabilityLevels{NotAvailable: 2}},
		{"perpetual", AvailabilityModel{Perpetual: true}, 100, AvailabilityLevels{InStock: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.Levels(tt.qty); got != tt.want {
				t.Fatalf("Levels(%d) = %+v, want %+v", tt.qty, got, tt.want)
			}
		})
	}
}

func TestPromotion_MinQuantity(t *testing.T) {
	tests := []struct {
		name    string
		attrs   map[string]any
		want    int
		wantErr bool
	}{
		{"int", map[string]any{AttrMinQuantity: 3}, 3, false},
		{"float", map[string]any{AttrMinQuantity: float64(4)}, 4, false},
		{"json number", map[string]any{AttrMinQuantity: json.Number("5")}, 5, false},
		{"string", map[string]any{AttrMinQuantity: "6"}, 6, false},
		{"missing", map[string]any{}, 0, true},
		{"nil", map[string]any{AttrMinQuantity: nil}, 0, true},
		{"bad string", map[string]any{AttrMinQuantity: "many"}, 0, true},
		{"bool", map[string]any{AttrMinQuantity: true}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Promotion{PromotionID: "p", Attributes: tt.attrs}.MinQuantity()
			if tt.wantErr {
				if !errors.Is(err, ErrAttributeMissing) {
					t.Fatalf("want ErrAttributeMissing, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("MinQuantity() = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestBasket_DefaultShipment(t *testing.T) {
	b := &Basket{}
	if b.DefaultShipment() != nil {
		t.Fatalf("no shipments: want nil")
	}

	b.Shipments = []*Shipment{{ShipmentID: "a"}, {ShipmentID: "b", Default: true}}
	if got := b.DefaultShipment(); got.ShipmentID != "b" {
		t.Fatalf("want flagged shipment b, got %s", got.ShipmentID)
	}

	b.Shipments[1].Default = false
	if got := b.DefaultShipment(); got.ShipmentID != "a" {
		t.Fatalf("want first shipment a, got %s", got.ShipmentID)
	}
	if b.Shipment("missing") != nil {
		t.Fatalf("unknown id must return nil")
	}
}

func TestBasket_ItemsOf(t *testing.T) {
	b := &Basket{ProductLineItems: []*ProductLineItem{
		{ProductID: "p1", ShipmentID: "s1"},
		nil,
		{ProductID: "p2", ShipmentID: "s2"},
		{ProductID: "p3", ShipmentID: "s1"},
	}}

	items := b.ItemsOf("s1")
	if len(items) != 2 || items[0].ProductID != "p1" || items[1].ProductID != "p3" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if len(b.ItemsOf("none")) != 0 {
		t.Fatalf("unknown shipment must have no items")
	}
}

func TestShipment_IsStorePickup(t *testing.T) {
	var nilShipment *Shipment
	tests := []struct {
		name string
		s    *Shipment
		want bool
	}{
		{"nil", nilShipment, false},
		{"no store", &Shipment{ShipmentID: "home"}, false},
		{"default id", &Shipment{StoreID: "me"}, false},
		{"store", &Shipment{StoreID: "store-1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsStorePickup("me"); got != tt.want {
				t.Fatalf("IsStorePickup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewMoney(t *testing.T) {
	m := NewMoney("12.50", "USD")
	if !m.Available() || m.Amount.String() != "12.5" || m.Currency != "USD" {
		t.Fatalf("unexpected money: %+v", m)
	}

	bad := NewMoney("abc", "USD")
	if !bad.Amount.IsZero() || !bad.Available() {
		t.Fatalf("bad amount must be zero and available: %+v", bad)
	}

	if (Money{State: ValuePending}).Available() {
		t.Fatalf("pending must not be available")
	}
}

func TestInventoryMatrix_Put(t *testing.T) {
	m := InventoryMatrix{}
	m.Put("s1", "p1", InventoryRecord{Quantity: 1, Requested: 1, Availability: Available})
	m.Put("s1", "p2", InventoryRecord{Quantity: 0, Requested: 2, Availability: Unavailable})

	if len(m) != 1 || len(m["s1"]) != 2 || m["s1"]["p2"].Availability != Unavailable {
		t.Fatalf("unexpected matrix: %+v", m)
	}
	if InventoryKey("s1", "p1") != "s1p1" {
		t.Fatalf("unexpected key: %s", InventoryKey("s1", "p1"))
	}
	// ключ без разделителя: префиксные id магазинов дают одинаковый ключ
	if InventoryKey("s1", "23") != InventoryKey("s12", "3") {
		t.Fatalf("key format changed: %s vs %s", InventoryKey("s1", "23"), InventoryKey("s12", "3"))
	}
}

func TestLineItem_SalesChannelAndClass(t *testing.T) {
	li := &ProductLineItem{}
	if li.SalesChannel() != "" || li.IsClass() {
		t.Fatalf("empty line item: unexpected channel/class")
	}
	li.Product = &Product{SalesChannel: SalesChannelSpecial}
	li.Attributes.ProductType = ProductTypeClass
	if li.SalesChannel() != SalesChannelSpecial || !li.IsClass() {
		t.Fatalf("class line item not recognized")
	}
}
