package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// Проверка, что BasketRepository удовлетворяет интерфейсу BasketRepository.
var _ ports.BasketRepository = (*BasketRepository)(nil)

// BasketRepository — снимки корзин в Postgres (pgxpool).
// Корзина хранится целиком в JSONB, позиции дублируются в basket_line_items для выборок по товару.
type BasketRepository struct {
	pool *pgxpool.Pool
}

// NewBasketRepository - конструктор BasketRepository.
func NewBasketRepository(pool *pgxpool.Pool) *BasketRepository { return &BasketRepository{pool: pool} }

// Save — транзакционно сохраняет снимок корзины (идемпотентный upsert, позиции заменяются).
func (r *BasketRepository) Save(ctx context.Context, basket *domain.Basket) error {
	if basket == nil || basket.BasketID == "" {
		return errors.New("basket is empty or basket_id is required")
	}
	if basket.CustomerID == "" {
		return errors.New("customer_id is required")
	}

	snapshot := *basket
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = time.Now().UTC()
	}
	updatedAt := snapshot.UpdatedAt
	payload, err := json.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("marshal basket: %w", err)
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) customers — upsert (чтобы не падать на FK).
	if _, err = transaction.Exec(ctx, `
		INSERT INTO customers (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`, basket.CustomerID); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	// 2) baskets — upsert по basket_id.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO baskets (basket_id, customer_id, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (basket_id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, basket.BasketID, basket.CustomerID, payload, updatedAt); err != nil {
		return fmt.Errorf("upsert basket: %w", err)
	}

	// 3) line items — replace: удаляем и вставляем список заново.
	if _, err = transaction.Exec(ctx, `DELETE FROM basket_line_items WHERE basket_id = $1`, basket.BasketID); err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}
	if len(basket.ProductLineItems) > 0 {
		if err = copyLineItems(ctx, transaction, basket); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — корзина по ID. Если не нашли, возвращает (nil, nil).
func (r *BasketRepository) GetByID(ctx context.Context, basketID string) (*domain.Basket, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM baskets WHERE basket_id = $1`, basketID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select basket: %w", err)
	}
	return decodeBasket(payload)
}

// ListByCustomer — постраничный список корзин клиента, новые первыми.
func (r *BasketRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Basket, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM baskets
		WHERE customer_id = $1
		ORDER BY updated_at DESC, basket_id DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customer baskets: %w", err)
	}
	return collectBaskets(rows, limit)
}

// LastN — последние N корзин (для прогрева кэша).
func (r *BasketRepository) LastN(ctx context.Context, n int) ([]*domain.Basket, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM baskets
		ORDER BY updated_at DESC, basket_id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last baskets: %w", err)
	}
	return collectBaskets(rows, n)
}

func collectBaskets(rows pgx.Rows, capacity int) ([]*domain.Basket, error) {
	defer rows.Close()

	baskets := make([]*domain.Basket, 0, capacity)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan basket: %w", err)
		}
		basket, err := decodeBasket(payload)
		if err != nil {
			return nil, err
		}
		baskets = append(baskets, basket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("baskets rows: %w", err)
	}
	return baskets, nil
}

func decodeBasket(payload []byte) (*domain.Basket, error) {
	var basket domain.Basket
	if err := json.Unmarshal(payload, &basket); err != nil {
		return nil, fmt.Errorf("decode basket payload: %w", err)
	}
	return &basket, nil
}

// copyLineItems — вставка позиций через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyLineItems(ctx context.Context, tx pgx.Tx, basket *domain.Basket) error {
	rows := make([][]any, 0, len(basket.ProductLineItems))
	for i, li := range basket.ProductLineItems {
		if li == nil {
			continue
		}
		storeID := ""
		if s := basket.Shipment(li.ShipmentID); s != nil {
			storeID = s.StoreID
		}
		rows = append(rows, []any{basket.BasketID, i, li.ProductID, li.ShipmentID, storeID, li.Quantity})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"basket_line_items"},
		[]string{"basket_id", "position", "product_id", "shipment_id", "store_id", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy line items: %w", err)
	}
	return nil
}
