package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// BasketRepository — хранилище снимков корзин.
type BasketRepository interface {
	Save(ctx context.Context, basket *domain.Basket) error
	GetByID(ctx context.Context, basketID string) (*domain.Basket, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Basket, error)
	LastN(ctx context.Context, n int) ([]*domain.Basket, error)
}
