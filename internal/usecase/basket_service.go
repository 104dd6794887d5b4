package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/ctxmeta"
	"github.com/Gunvolt24/checkout_gate/pkg/telemetry"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
)

var _ ports.BasketService = (*BasketService)(nil)

// BasketService — прикладная логика работы с корзинами (без знаний о транспорте).
type BasketService struct {
	repo     ports.BasketRepository
	cache    ports.BasketCache
	log      ports.Logger
	snapshot ports.BasketValidator
	checkout ports.CheckoutValidator
}

// NewBasketService — DI-конструктор.
func NewBasketService(
	repo ports.BasketRepository,
	cache ports.BasketCache,
	log ports.Logger,
	snapshot ports.BasketValidator,
	checkout ports.CheckoutValidator,
) *BasketService {
	return &BasketService{
		repo:     repo,
		cache:    cache,
		log:      log,
		snapshot: snapshot,
		checkout: checkout,
	}
}

// GetBasket — корзина по ID: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (nil, nil), если записи нет.
func (s *BasketService) GetBasket(ctx context.Context, basketID string) (*domain.Basket, error) {
	if basket, found := s.cache.Get(ctx, basketID); found {
		s.log.Infof(ctx, "cache hit for basket=%s", basketID)
		return basket, nil
	}
	s.log.Infof(ctx, "cache miss for basket=%s", basketID)

	start := time.Now()
	basket, err := s.repo.GetByID(ctx, basketID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed basket_id=%s err=%v", basketID, err)
		return nil, err
	}

	if basket != nil {
		if setErr := s.cache.Set(ctx, basket); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed basket_id=%s err=%v", basketID, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch basket_id=%s took=%s", basketID, time.Since(start))
	return basket, nil
}

// BasketsByCustomer — проксирование в репозиторий (пагинация уже проверена на верхнем уровне).
func (s *BasketService) BasketsByCustomer(
	ctx context.Context,
	customerID string,
	limit, offset int,
) ([]*domain.Basket, error) {
	return s.repo.ListByCustomer(ctx, customerID, limit, offset)
}

// SaveFromMessage — сохранить снимок корзины, пришедший из Kafka (raw JSON).
// Невалидный снимок возвращает ошибку, обёрнутую в validate.ErrInvalidBasket.
func (s *BasketService) SaveFromMessage(ctx context.Context, raw []byte) error {
	basket, err := validate.ValidateBasketFromJSON(ctx, s.snapshot, raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid basket snapshot err=%v", err)
		return fmt.Errorf("snapshot rejected: %w", err)
	}
	ctx = ctxmeta.WithBasketID(ctx, basket.BasketID)

	if err := s.repo.Save(ctx, basket); err != nil {
		s.log.Errorf(ctx, "repo.Save failed basket_id=%s err=%v", basket.BasketID, err)
		return fmt.Errorf("failed to save basket: %w", err)
	}

	if err := s.cache.Set(ctx, basket); err != nil {
		s.log.Warnf(ctx, "cache.Set failed basket_id=%s err=%v", basket.BasketID, err)
	}

	s.log.Infof(ctx, "basket saved id=%s items=%d", basket.BasketID, len(basket.ProductLineItems))
	return nil
}

// WarmUpCache — прогрев кэша последними N корзинами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *BasketService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d baskets in %s", len(list), time.Since(start))
	return nil
}

// ValidateCheckout — проверка сохранённой корзины перед оформлением.
// Нет корзины — ErrBasketNotFound.
func (s *BasketService) ValidateCheckout(ctx context.Context, basketID string, taxRequired bool) (domain.Outcome, error) {
	ctx = ctxmeta.WithBasketID(ctx, basketID)
	ctx, span := telemetry.Tracer().Start(ctx, "BasketService.ValidateCheckout",
		trace.WithAttributes(attribute.String("basket.id", basketID), attribute.Bool("checkout.tax_required", taxRequired)))
	defer span.End()

	basket, err := s.GetBasket(ctx, basketID)
	if err != nil {
		return s.validationFailed(ctx, span, err)
	}
	if basket == nil {
		return s.validationFailed(ctx, span, fmt.Errorf("%w: id=%s", ErrBasketNotFound, basketID))
	}

	return s.runCheckout(ctx, span, basket, taxRequired)
}

// ValidateSnapshot — проверка корзины, переданной целиком (без сохранения).
func (s *BasketService) ValidateSnapshot(ctx context.Context, basket *domain.Basket, taxRequired bool) (domain.Outcome, error) {
	if basket != nil {
		ctx = ctxmeta.WithBasketID(ctx, basket.BasketID)
	}
	ctx, span := telemetry.Tracer().Start(ctx, "BasketService.ValidateSnapshot",
		trace.WithAttributes(attribute.Bool("checkout.tax_required", taxRequired)))
	defer span.End()

	if err := s.snapshot.Validate(ctx, basket); err != nil {
		return s.validationFailed(ctx, span, err)
	}
	span.SetAttributes(attribute.String("basket.id", basket.BasketID))

	return s.runCheckout(ctx, span, basket, taxRequired)
}

func (s *BasketService) runCheckout(ctx context.Context, span trace.Span, basket *domain.Basket, taxRequired bool) (domain.Outcome, error) {
	start := time.Now()
	outcome, err := s.checkout.Validate(ctx, basket, taxRequired)
	if err != nil {
		return s.validationFailed(ctx, span, err)
	}

	span.SetAttributes(
		attribute.String("checkout.status", string(outcome.Status)),
		attribute.String("checkout.reason", string(outcome.Reason)),
		attribute.Bool("checkout.enabled", outcome.EnableCheckout),
	)
	s.log.Infof(ctx, "checkout validated basket_id=%s status=%s reason=%q enable=%t took=%s",
		basket.BasketID, outcome.Status, outcome.Reason, outcome.EnableCheckout, time.Since(start))
	return outcome, nil
}

func (s *BasketService) validationFailed(ctx context.Context, span trace.Span, err error) (domain.Outcome, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.log.Warnf(ctx, "checkout validation failed err=%v", err)
	return domain.Outcome{Status: domain.StatusError}, err
}
