package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

var _ ports.InventoryLookup = (*InventoryRepository)(nil)

// InventoryRepository — остатки магазинов из таблицы store_inventory.
// Отвечает в формате внешнего сервиса остатков; отсутствующих пар в ответе нет.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository - конструктор InventoryRepository.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// Lookup — один запрос на весь пакет (store, product).
func (r *InventoryRepository) Lookup(ctx context.Context, req domain.InventoryRequest) (domain.InventoryResponse, error) {
	resp := make(domain.InventoryResponse)

	var stores, products []string
	for _, group := range req.Stores {
		for _, productID := range group.ProductIDs {
			stores = append(stores, group.StoreID)
			products = append(products, productID)
		}
	}
	if len(stores) == 0 {
		return resp, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT si.store_id, si.product_id, si.quantity
		FROM store_inventory si
		JOIN unnest($1::text[], $2::text[]) AS req(store_id, product_id)
			ON si.store_id = req.store_id AND si.product_id = req.product_id
	`, stores, products)
	if err != nil {
		return nil, fmt.Errorf("select store inventory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			storeID, productID string
			quantity           int
		)
		if err := rows.Scan(&storeID, &productID, &quantity); err != nil {
			return nil, fmt.Errorf("scan store inventory: %w", err)
		}
		entry := domain.InventoryEntry{Quantity: quantity, Availability: domain.Unavailable}
		if quantity > 0 {
			entry.Availability = domain.Available
		}
		resp[domain.InventoryKey(storeID, productID)] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store inventory rows: %w", err)
	}
	return resp, nil
}

// SetQuantity — upsert остатка (загрузка остатков, тесты).
func (r *InventoryRepository) SetQuantity(ctx context.Context, storeID, productID string, quantity int) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO store_inventory (store_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (store_id, product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			updated_at = EXCLUDED.updated_at
	`, storeID, productID, quantity); err != nil {
		return fmt.Errorf("upsert store inventory: %w", err)
	}
	return nil
}
