package ports

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// InventoryLookup — внешний сервис остатков магазинов (один пакетный вызов на проверку).
type InventoryLookup interface {
	Lookup(ctx context.Context, req domain.InventoryRequest) (domain.InventoryResponse, error)
}

// BasketInventoryChecker — внешний валидатор остатков всей корзины.
type BasketInventoryChecker interface {
	CheckBasket(ctx context.Context, basket *domain.Basket) (bool, error)
}
