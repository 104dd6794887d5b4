package validate

import (
	"fmt"
	"time"
	_ "time/tzdata" // зоны для CHECKOUT_CLASS_TIMEZONE в минимальных образах

	"github.com/Gunvolt24/checkout_gate/config"
)

// InventoryStrategy — способ проверки остатков, выбирается один раз при сборке.
type InventoryStrategy string

const (
	StrategyStore  InventoryStrategy = "store"  // пакетный запрос остатков магазинов
	StrategyBasket InventoryStrategy = "basket" // внешний валидатор остатков корзины
)

// DefaultClassDateLayout — формат даты занятия в payload позиции.
const DefaultClassDateLayout = "01/02/2006 03:04 PM"

// Settings — настройки правил, передаются в валидатор один раз при сборке.
type Settings struct {
	DefaultShipmentID      string
	LimitedStockSentinel   int
	IgnoreMaxQuantity      bool
	InventoryStrategy      InventoryStrategy
	ClassDateLayout        string
	ClassLocation          *time.Location
	InventoryLookupTimeout time.Duration
}

// DefaultSettings — значения по умолчанию (совпадают с дефолтами конфигурации).
func DefaultSettings() Settings {
	return Settings{
		DefaultShipmentID:      "me",
		InventoryStrategy:      StrategyStore,
		ClassDateLayout:        DefaultClassDateLayout,
		ClassLocation:          time.UTC,
		InventoryLookupTimeout: 2 * time.Second,
	}
}

// NewSettings — собирает Settings из секций конфигурации.
func NewSettings(c config.Checkout, inv config.Inventory) (Settings, error) {
	s := DefaultSettings()

	s.DefaultShipmentID = c.DefaultShipmentID
	s.LimitedStockSentinel = c.LimitedStockSentinel
	s.IgnoreMaxQuantity = c.IgnoreMaxQuantity
	s.InventoryLookupTimeout = inv.LookupTimeout

	switch InventoryStrategy(c.InventoryStrategy) {
	case StrategyStore, "":
		s.InventoryStrategy = StrategyStore
	case StrategyBasket:
		s.InventoryStrategy = StrategyBasket
	default:
		return Settings{}, fmt.Errorf("unknown inventory strategy %q", c.InventoryStrategy)
	}

	if c.ClassDateLayout != "" {
		s.ClassDateLayout = c.ClassDateLayout
	}
	if c.ClassTimezone != "" {
		loc, err := time.LoadLocation(c.ClassTimezone)
		if err != nil {
			return Settings{}, fmt.Errorf("class timezone: %w", err)
		}
		s.ClassLocation = loc
	}

	return s, nil
}
