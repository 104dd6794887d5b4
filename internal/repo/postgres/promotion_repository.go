package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

var _ ports.PromotionCatalog = (*PromotionRepository)(nil)

// PromotionRepository — каталог промоакций (promotions + promotion_products).
type PromotionRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPromotionRepository - конструктор PromotionRepository.
func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool, now: time.Now}
}

// ActivePromotions — включённые промоакции товара, действующие на текущий момент.
func (r *PromotionRepository) ActivePromotions(ctx context.Context, productID string) ([]domain.Promotion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.promotion_id, p.attributes
		FROM promotions p
		JOIN promotion_products pp ON pp.promotion_id = p.promotion_id
		WHERE pp.product_id = $1
			AND p.enabled
			AND (p.starts_at IS NULL OR p.starts_at <= $2)
			AND (p.ends_at IS NULL OR p.ends_at > $2)
		ORDER BY p.promotion_id
	`, productID, r.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("select promotions: %w", err)
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		var (
			promotion domain.Promotion
			raw       []byte
		)
		if err := rows.Scan(&promotion.PromotionID, &raw); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		// битые атрибуты не валят каталог: правило просто пропустит промоакцию
		if err := json.Unmarshal(raw, &promotion.Attributes); err != nil {
			promotion.Attributes = nil
		}
		promotions = append(promotions, promotion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("promotions rows: %w", err)
	}
	return promotions, nil
}

// SavePromotion — upsert промоакции и её товаров (загрузка каталога, тесты).
func (r *PromotionRepository) SavePromotion(ctx context.Context, promotion domain.Promotion, productIDs []string) error {
	attrs, err := json.Marshal(promotion.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO promotions (promotion_id, attributes) VALUES ($1, $2)
		ON CONFLICT (promotion_id) DO UPDATE SET attributes = EXCLUDED.attributes
	`, promotion.PromotionID, attrs); err != nil {
		return fmt.Errorf("upsert promotion: %w", err)
	}
	for _, productID := range productIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO promotion_products (promotion_id, product_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, promotion.PromotionID, productID); err != nil {
			return fmt.Errorf("insert promotion product: %w", err)
		}
	}
	return tx.Commit(ctx)
}
