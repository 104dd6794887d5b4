package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// BasketValidator — структурная проверка входящего снимка корзины.
type BasketValidator interface {
	Validate(ctx context.Context, basket *domain.Basket) error
}

// CheckoutValidator — проверка корзины перед оформлением заказа.
// Бизнес-отказы возвращаются в Outcome, ошибка — только для некорректных/неполных данных.
type CheckoutValidator interface {
	Validate(ctx context.Context, basket *domain.Basket, taxRequired bool) (domain.Outcome, error)
}
