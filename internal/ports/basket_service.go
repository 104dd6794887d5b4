package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// BasketService — сервис чтения и проверки корзин для транспортного слоя.
type BasketService interface {
	GetBasket(ctx context.Context, basketID string) (*domain.Basket, error)
	BasketsByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Basket, error)
	ValidateCheckout(ctx context.Context, basketID string, taxRequired bool) (domain.Outcome, error)
	ValidateSnapshot(ctx context.Context, basket *domain.Basket, taxRequired bool) (domain.Outcome, error)
}
