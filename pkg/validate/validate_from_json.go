package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
)

// DecodeBasket — строгий разбор JSON корзины: неизвестные поля и данные после объекта запрещены.
func DecodeBasket(raw []byte) (*domain.Basket, error) {
	var basket domain.Basket
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&basket); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidBasket, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidBasket)
	}
	return &basket, nil
}

// ValidateBasketFromJSON — разбор и структурная валидация корзины из JSON.
func ValidateBasketFromJSON(ctx context.Context, validator ports.BasketValidator, raw []byte) (*domain.Basket, error) {
	basket, err := DecodeBasket(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// FileChecker — проверки, применяемые к каждой корзине из файла.
type FileChecker struct {
	Snapshot    ports.BasketValidator
	Checkout    ports.CheckoutValidator
	TaxRequired bool
}

// Report — строка отчёта по одной корзине.
type Report struct {
	BasketID string `json:"basket_id,omitempty"`
	domain.Outcome
	Error string `json:"error,omitempty"`
}

// Allowed — корзину можно оформлять.
func (r Report) Allowed() bool { return r.Error == "" && r.OK() && r.EnableCheckout }

// Check — разбирает JSON корзины и прогоняет проверку оформления.
// При ошибке Report содержит её текст (и ID корзины, если он успел разобраться).
func (c FileChecker) Check(ctx context.Context, raw []byte) (Report, error) {
	basket, err := ValidateBasketFromJSON(ctx, c.Snapshot, raw)
	if err != nil {
		return Report{Outcome: domain.Outcome{Status: domain.StatusError}, Error: err.Error()}, err
	}

	outcome, err := c.Checkout.Validate(ctx, basket, c.TaxRequired)
	report := Report{BasketID: basket.BasketID, Outcome: outcome}
	if err != nil {
		report.Error = err.Error()
		return report, err
	}
	return report, nil
}

// validateJSONArray — массив корзин: по строке отчёта на элемент, ошибки элементов не прерывают проверку.
func validateJSONArray(ctx context.Context, checker FileChecker, raw []byte, ow io.Writer) (Summary, error) {
	var res Summary

	var items []json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&items); err != nil {
		return res, fmt.Errorf("%w: invalid json array: %v", ErrInvalidBasket, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return res, fmt.Errorf("%w: invalid json array: trailing data", ErrInvalidBasket)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		report, err := checker.Check(ctx, item)
		res.add(report, err)
		if err := writeReport(ow, report); err != nil {
			return res, err
		}
	}
	return res, nil
}

func writeReport(ow io.Writer, report Report) error {
	line, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := ow.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
