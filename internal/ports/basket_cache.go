package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// BasketCache — интерфейс кэша корзин.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type BasketCache interface {
	// Get — вернуть корзину по ID; (basket, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, basketID string) (*domain.Basket, bool)

	// Set — сохранить/обновить корзину в кэше.
	Set(ctx context.Context, basket *domain.Basket) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, baskets []*domain.Basket) error
}
