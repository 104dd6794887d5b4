package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/metrics"
)

// InventoryEvaluator — стратегия проверки остатков.
// webAvailable — результат проверки веб-доступности товаров (правило products).
type InventoryEvaluator interface {
	Evaluate(ctx context.Context, basket *domain.Basket, webAvailable bool) (Verdict, domain.InventoryMatrix, error)
}

var (
	_ InventoryEvaluator = (*StoreInventoryEvaluator)(nil)
	_ InventoryEvaluator = (*BasketInventoryEvaluator)(nil)
)

// StoreInventoryEvaluator — проверка остатков магазинов одним пакетным запросом.
type StoreInventoryEvaluator struct {
	lookup   ports.InventoryLookup
	settings Settings
}

// NewStoreInventoryEvaluator — конструктор.
func NewStoreInventoryEvaluator(lookup ports.InventoryLookup, settings Settings) *StoreInventoryEvaluator {
	return &StoreInventoryEvaluator{lookup: lookup, settings: settings}
}

// Evaluate — агрегирует запрос, вызывает сервис остатков и сверяет ответ.
func (e *StoreInventoryEvaluator) Evaluate(ctx context.Context, basket *domain.Basket, webAvailable bool) (Verdict, domain.InventoryMatrix, error) {
	batch := BuildInventoryBatch(basket, e.settings.DefaultShipmentID)
	if batch.Empty() {
		metrics.InventoryLookups.WithLabelValues("skipped").Inc()
		return inventoryVerdict(true, webAvailable), nil, nil
	}

	var resp domain.InventoryResponse
	err := e.settings.boundedLookup(ctx, func(ctx context.Context) (err error) {
		resp, err = e.lookup.Lookup(ctx, batch.Request)
		return err
	})
	if err != nil {
		return Verdict{}, nil, fmt.Errorf("inventory lookup: %w", err)
	}

	matrix, sufficient, err := batch.Reconcile(resp, e.settings.LimitedStockSentinel)
	if err != nil {
		metrics.InventoryLookups.WithLabelValues("integrity_error").Inc()
		return Verdict{}, nil, err
	}
	metrics.InventoryLookups.WithLabelValues("ok").Inc()

	return inventoryVerdict(sufficient, webAvailable), matrix, nil
}

// BasketInventoryEvaluator — проверка остатков внешним валидатором корзины.
type BasketInventoryEvaluator struct {
	checker  ports.BasketInventoryChecker
	settings Settings
}

// NewBasketInventoryEvaluator — конструктор.
func NewBasketInventoryEvaluator(checker ports.BasketInventoryChecker, settings Settings) *BasketInventoryEvaluator {
	return &BasketInventoryEvaluator{checker: checker, settings: settings}
}

// Evaluate — делегирует проверку внешнему валидатору; матрица остатков не строится.
// ErrDataIntegrity от валидатора возвращается как есть (обёрнутым).
func (e *BasketInventoryEvaluator) Evaluate(ctx context.Context, basket *domain.Basket, webAvailable bool) (Verdict, domain.InventoryMatrix, error) {
	var ok bool
	err := e.settings.boundedLookup(ctx, func(ctx context.Context) (err error) {
		ok, err = e.checker.CheckBasket(ctx, basket)
		return err
	})
	if err != nil {
		return Verdict{}, nil, fmt.Errorf("basket inventory check: %w", err)
	}
	metrics.InventoryLookups.WithLabelValues("ok").Inc()
	return inventoryVerdict(ok, webAvailable), nil, nil
}

// NewInventoryEvaluator — выбирает стратегию по настройкам.
func NewInventoryEvaluator(settings Settings, lookup ports.InventoryLookup, checker ports.BasketInventoryChecker) (InventoryEvaluator, error) {
	switch settings.InventoryStrategy {
	case StrategyBasket:
		if checker == nil {
			return nil, fmt.Errorf("inventory strategy %q: checker is nil", settings.InventoryStrategy)
		}
		return NewBasketInventoryEvaluator(checker, settings), nil
	case StrategyStore, "":
		if lookup == nil {
			return nil, fmt.Errorf("inventory strategy %q: lookup is nil", StrategyStore)
		}
		return NewStoreInventoryEvaluator(lookup, settings), nil
	default:
		return nil, fmt.Errorf("unknown inventory strategy %q", settings.InventoryStrategy)
	}
}

// boundedLookup — вызов сервиса остатков под InventoryLookupTimeout с метриками длительности и ошибок.
// Ошибка целостности данных считается отдельно от сбоя сервиса.
func (s Settings) boundedLookup(ctx context.Context, call func(ctx context.Context) error) error {
	if s.InventoryLookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.InventoryLookupTimeout)
		defer cancel()
	}

	start := time.Now()
	err := call(ctx)
	metrics.InventoryLookupDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
	case errors.Is(err, ErrDataIntegrity):
		metrics.InventoryLookups.WithLabelValues("integrity_error").Inc()
	default:
		metrics.InventoryLookups.WithLabelValues("error").Inc()
	}
	return err
}

// Остатки проходят, только если хватает и в магазинах, и в веб-канале.
func inventoryVerdict(storeSufficient, webAvailable bool) Verdict {
	if !storeSufficient || !webAvailable {
		return Fail().BlockCheckout()
	}
	return Pass()
}
