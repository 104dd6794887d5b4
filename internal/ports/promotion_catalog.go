package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// PromotionCatalog — активные промоакции, применимые к товару.
type PromotionCatalog interface {
	ActivePromotions(ctx context.Context, productID string) ([]domain.Promotion, error)
}
