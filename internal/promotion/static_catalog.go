package promotion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// StaticCatalog — активные промоакции из фиксированной таблицы product → promotions
// (офлайн-проверка файлов корзин).
type StaticCatalog struct {
	byProduct map[string][]domain.Promotion
}

var _ ports.PromotionCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog(byProduct map[string][]domain.Promotion) *StaticCatalog {
	if byProduct == nil {
		byProduct = map[string][]domain.Promotion{}
	}
	return &StaticCatalog{byProduct: byProduct}
}

// LoadStaticCatalog — читает JSON вида {"sku-1": [{"promotion_id": "p", "attributes": {"minQuantity": 3}}]}.
// Числа атрибутов сохраняются как json.Number.
func LoadStaticCatalog(path string) (*StaticCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read promotions fixture: %w", err)
	}
	defer f.Close()

	var byProduct map[string][]domain.Promotion
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&byProduct); err != nil {
		return nil, fmt.Errorf("parse promotions fixture: %w", err)
	}
	return NewStaticCatalog(byProduct), nil
}

func (c *StaticCatalog) ActivePromotions(ctx context.Context, productID string) ([]domain.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.byProduct[productID], nil
}
