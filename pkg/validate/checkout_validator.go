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

// CheckoutValidator — проверка корзины перед оформлением заказа.
// Выполняет все правила, затем выбирает итог по фиксированному приоритету.
type CheckoutValidator struct {
	settings   Settings
	inventory  InventoryEvaluator
	promotions ports.PromotionCatalog
	now        func() time.Time
}

var _ ports.CheckoutValidator = (*CheckoutValidator)(nil)

// Option — опция конструктора CheckoutValidator.
type Option func(*CheckoutValidator)

// WithClock — источник текущего времени для проверки дат занятий.
func WithClock(now func() time.Time) Option {
	return func(v *CheckoutValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// NewCheckoutValidator — конструктор. promotions может быть nil (минимум = 1 для всех позиций).
func NewCheckoutValidator(settings Settings, inventory InventoryEvaluator, promotions ports.PromotionCatalog, opts ...Option) *CheckoutValidator {
	v := &CheckoutValidator{
		settings:   settings,
		inventory:  inventory,
		promotions: promotions,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ruleResults — вердикты всех правил одного прогона.
type ruleResults struct {
	priceAvailable bool
	products       Verdict
	inventory      Verdict
	classes        Verdict
	quantity       Verdict
	content        Verdict
	coupons        Verdict
	tax            Verdict
	pobox          Verdict
	matrix         domain.InventoryMatrix
}

// enable — логическое И вкладов всех правил.
func (r ruleResults) enable() bool {
	for _, v := range []Verdict{r.products, r.inventory, r.classes, r.quantity, r.content, r.coupons, r.tax, r.pobox} {
		if !v.Enable {
			return false
		}
	}
	return true
}

// Validate — проверяет корзину. Бизнес-отказы возвращаются в Outcome без ошибки.
// Ошибка возвращается для отсутствующей корзины (ErrInvalidBasket), повреждённых данных
// (ErrDataIntegrity) и сбоев внешних сервисов; Outcome в этом случае ERROR без причины.
func (v *CheckoutValidator) Validate(ctx context.Context, basket *domain.Basket, taxRequired bool) (domain.Outcome, error) {
	if basket == nil {
		return v.failed(fmt.Errorf("%w: basket is missing", ErrInvalidBasket))
	}

	results, err := v.evaluate(ctx, basket, taxRequired)
	if err != nil {
		return v.failed(err)
	}

	out := decide(results)
	metrics.CheckoutValidations.WithLabelValues(string(out.Status), string(out.Reason)).Inc()
	return out, nil
}

func (v *CheckoutValidator) evaluate(ctx context.Context, basket *domain.Basket, taxRequired bool) (ruleResults, error) {
	var (
		r   ruleResults
		err error
	)

	r.priceAvailable = basket.MerchandizeTotal.Available()
	r.products = checkProducts(basket, v.settings.DefaultShipmentID)

	r.inventory, r.matrix, err = v.inventory.Evaluate(ctx, basket, r.products.Enable)
	if err != nil {
		return r, err
	}

	r.classes, err = checkClassDates(basket, v.settings, v.now())
	if err != nil {
		return r, err
	}

	if err = applyMinQuantities(ctx, basket, v.promotions); err != nil {
		return r, err
	}
	r.quantity = checkQuantities(basket, v.settings)

	r.content = checkContent(basket)
	r.coupons = checkCoupons(basket)
	r.tax = checkTax(basket, taxRequired)
	r.pobox = checkPOBox(basket)

	return r, nil
}

// decide — таблица решений, первое совпадение выигрывает.
func decide(r ruleResults) domain.Outcome {
	out := domain.Outcome{
		Status:         domain.StatusError,
		EnableCheckout: r.enable(),
		Inventory:      r.matrix,
	}

	switch {
	case !r.priceAvailable || r.products.Failed || (r.quantity.Failed && r.quantity.Cause == CauseNone):
	case r.inventory.Failed:
	case r.classes.Is(CauseClassDatePassed):
		out.Reason = domain.ReasonClassDate
	case r.classes.Is(CauseClassWithin48h):
		out.Reason = domain.ReasonWithin48Hour
	case r.quantity.Is(CauseQuantityRange):
		out.Reason = domain.ReasonQuantity
	case r.coupons.Failed:
		out.Reason = domain.ReasonCoupon
	case r.content.Failed:
		// пустая корзина: статус OK, но оформление запрещено
		out.Status = domain.StatusOK
		out.EnableCheckout = false
	case r.tax.Failed:
		out.Reason = domain.ReasonTax
	case r.pobox.Failed:
		out.Reason = domain.ReasonPOBox
	default:
		out.Status = domain.StatusOK
	}

	return out
}

func (v *CheckoutValidator) failed(err error) (domain.Outcome, error) {
	label := "failure"
	switch {
	case errors.Is(err, ErrInvalidBasket):
		label = "invalid"
	case errors.Is(err, ErrDataIntegrity):
		label = "integrity"
	}
	metrics.CheckoutValidations.WithLabelValues(string(domain.StatusError), label).Inc()

	return domain.Outcome{Status: domain.StatusError}, err
}
