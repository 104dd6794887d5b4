package validate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
)

// ClassWarningWindow — занятие, до начала которого осталось меньше этого окна, оформить нельзя.
const ClassWarningWindow = 48 * time.Hour

type classPayload struct {
	ClassDate string `json:"classDate"`
}

// checkClassDates — занятия канала "S" не должны начинаться в прошлом или в ближайшие 48 часов.
// Останавливается на первой неподходящей позиции.
func checkClassDates(basket *domain.Basket, settings Settings, now time.Time) (Verdict, error) {
	for _, li := range basket.ProductLineItems {
		if li == nil || !li.IsClass() || li.SalesChannel() != domain.SalesChannelSpecial {
			continue
		}

		start, err := ParseClassDate(li.Attributes.ClassPayload, settings.ClassDateLayout, settings.ClassLocation)
		if err != nil {
			return Verdict{}, fmt.Errorf("line item %s: %w", li.ProductID, err)
		}

		switch {
		case !start.After(now):
			return FailWith(CauseClassDatePassed).BlockCheckout(), nil
		case start.Sub(now) < ClassWarningWindow:
			return FailWith(CauseClassWithin48h).BlockCheckout(), nil
		}
	}
	return Pass(), nil
}

// ParseClassDate — извлекает дату начала занятия из JSON payload позиции.
// Символы вне ASCII удаляются до разбора. Ошибки оборачиваются в ErrDataIntegrity.
func ParseClassDate(payload, layout string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(payload) == "" {
		return time.Time{}, fmt.Errorf("%w: empty class payload", ErrDataIntegrity)
	}

	var p classPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return time.Time{}, fmt.Errorf("%w: class payload: %v", ErrDataIntegrity, err)
	}

	raw := strings.TrimSpace(stripNonASCII(p.ClassDate))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: class date is empty", ErrDataIntegrity)
	}

	if layout == "" {
		layout = DefaultClassDateLayout
	}
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(layout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: class date %q: %v", ErrDataIntegrity, raw, err)
	}
	return start, nil
}

func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
