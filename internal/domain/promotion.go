package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// AttrMinQuantity — атрибут промоакции с минимальным количеством товара.
const AttrMinQuantity = "minQuantity"

// ErrAttributeMissing — у промоакции нет нужного атрибута.
var ErrAttributeMissing = errors.New("promotion attribute missing")

// Promotion — активная промоакция каталога.
type Promotion struct {
	PromotionID string         `json:"promotion_id"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// MinQuantity — минимальное количество товара по промоакции.
// Возвращает ErrAttributeMissing, если атрибут не задан или не является числом.
func (p Promotion) MinQuantity() (int, error) {
	raw, ok := p.Attributes[AttrMinQuantity]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: promotion=%s attr=%s", ErrAttributeMissing, p.PromotionID, AttrMinQuantity)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: promotion=%s: %v", ErrAttributeMissing, p.PromotionID, err)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: promotion=%s: %v", ErrAttributeMissing, p.PromotionID, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: promotion=%s: unsupported type %T", ErrAttributeMissing, p.PromotionID, raw)
	}
}
