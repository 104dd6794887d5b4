package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// StaticLookup — остатки из фиксированной таблицы store → product → quantity
// (офлайн-проверка файлов корзин, тесты).
// Товары, которых нет в таблице, в ответ не попадают.
type StaticLookup struct {
	stock map[string]map[string]int
}

var _ ports.InventoryLookup = (*StaticLookup)(nil)

// NewStaticLookup — конструктор; stock не копируется.
func NewStaticLookup(stock map[string]map[string]int) *StaticLookup {
	if stock == nil {
		stock = map[string]map[string]int{}
	}
	return &StaticLookup{stock: stock}
}

// LoadStaticLookup — читает таблицу остатков из JSON вида {"store-1": {"sku-1": 5}}.
func LoadStaticLookup(path string) (*StaticLookup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory fixture: %w", err)
	}
	var stock map[string]map[string]int
	if err := json.Unmarshal(raw, &stock); err != nil {
		return nil, fmt.Errorf("parse inventory fixture: %w", err)
	}
	return NewStaticLookup(stock), nil
}

// Lookup — ответ в формате сервиса остатков.
func (s *StaticLookup) Lookup(ctx context.Context, req domain.InventoryRequest) (domain.InventoryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := make(domain.InventoryResponse)
	for _, group := range req.Stores {
		row, ok := s.stock[group.StoreID]
		if !ok {
			continue
		}
		for _, productID := range group.ProductIDs {
			qty, ok := row[productID]
			if !ok {
				continue
			}
			resp[domain.InventoryKey(group.StoreID, productID)] = domain.InventoryEntry{
				Quantity:     qty,
				Availability: availabilityMarker(qty),
			}
		}
	}
	return resp, nil
}

func availabilityMarker(qty int) int {
	if qty > 0 {
		return domain.Available
	}
	return domain.Unavailable
}
