package app

import (
	"testing"
	"time"

	"github.com/Gunvolt24/checkout_gate/config"
	"github.com/Gunvolt24/checkout_gate/internal/inventory"
	"github.com/Gunvolt24/checkout_gate/internal/repo/postgres"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
)

func TestBuildInventory_Postgres(t *testing.T) {
	lookup, checker, err := buildInventory(config.Inventory{Source: "postgres"}, validate.DefaultSettings(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lookup.(*postgres.InventoryRepository); !ok {
		t.Fatalf("want *postgres.InventoryRepository, got %T", lookup)
	}
	if _, ok := checker.(*inventory.LookupBasketChecker); !ok {
		t.Fatalf("want *inventory.LookupBasketChecker, got %T", checker)
	}
}

func TestBuildInventory_HTTP(t *testing.T) {
	lookup, checker, err := buildInventory(
		config.Inventory{Source: " HTTP ", URL: "http://inventory:8080", LookupTimeout: time.Second},
		validate.DefaultSettings(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lookup.(*inventory.HTTPClient); !ok {
		t.Fatalf("want *inventory.HTTPClient, got %T", lookup)
	}
	if _, ok := checker.(*inventory.HTTPClient); !ok {
		t.Fatalf("want *inventory.HTTPClient checker, got %T", checker)
	}
}

func TestBuildInventory_UnknownSource(t *testing.T) {
	if _, _, err := buildInventory(config.Inventory{Source: "redis"}, validate.DefaultSettings(), nil); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestBuildCheckoutValidator_BadStrategy(t *testing.T) {
	cfg, err := config.LoadWithPrefix("CHECKOUT_TEST_WIRING")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}
	cfg.Checkout.InventoryStrategy = "warehouse"

	if _, err := buildCheckoutValidator(&cfg, nil); err == nil {
		t.Fatalf("expected error for unknown inventory strategy")
	}
}

func TestBuildCheckoutValidator_Defaults(t *testing.T) {
	cfg, err := config.LoadWithPrefix("CHECKOUT_TEST_WIRING_OK")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	v, err := buildCheckoutValidator(&cfg, nil)
	if err != nil || v == nil {
		t.Fatalf("unexpected: v=%v err=%v", v, err)
	}
}
