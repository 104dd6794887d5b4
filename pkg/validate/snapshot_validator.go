package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// SnapshotValidator — структурная проверка снимка корзины (теги validate + межполевые правила).
type SnapshotValidator struct {
	v *validatorv10.Validate
}

var _ ports.BasketValidator = (*SnapshotValidator)(nil)

// NewSnapshotValidator — валидатор с зарегистрированной struct-level проверкой корзины.
func NewSnapshotValidator() *SnapshotValidator {
	v := validatorv10.New()
	v.RegisterStructValidation(basketStructValidation, domain.Basket{})
	return &SnapshotValidator{v: v}
}

// Validate — возвращает ErrInvalidBasket с перечнем нарушенных полей.
func (s *SnapshotValidator) Validate(_ context.Context, basket *domain.Basket) error {
	if basket == nil {
		return fmt.Errorf("%w: basket is nil", ErrInvalidBasket)
	}
	if err := s.v.Struct(basket); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBasket, describe(err))
	}
	return nil
}

// Позиции ссылаются на существующие отгрузки, отгрузка по умолчанию не больше одной.
func basketStructValidation(sl validatorv10.StructLevel) {
	basket := sl.Current().Interface().(domain.Basket)

	defaults := 0
	for _, s := range basket.Shipments {
		if s != nil && s.Default {
			defaults++
		}
	}
	if defaults > 1 {
		sl.ReportError(basket.Shipments, "shipments", "Shipments", "single_default", "")
	}

	if len(basket.Shipments) == 0 {
		return
	}
	for _, li := range basket.ProductLineItems {
		if li == nil {
			continue
		}
		if basket.Shipment(li.ShipmentID) == nil {
			sl.ReportError(li.ShipmentID, "shipment_id", "ShipmentID", "shipment_exists", li.ShipmentID)
		}
	}
}

func describe(err error) string {
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.StructNamespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
