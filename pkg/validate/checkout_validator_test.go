package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports/mocks"
)

func TestCheckoutValidator_NilBasket(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	out, err := v.Validate(context.Background(), nil, false)
	if !errors.Is(err, ErrInvalidBasket) {
		t.Fatalf("expected ErrInvalidBasket, got %v", err)
	}
	if out.Status != domain.StatusError || out.Reason != domain.ReasonNone || out.EnableCheckout {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestCheckoutValidator_AllRulesPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	// отгрузок в магазин нет — сервис остатков не вызывается
	lookup := mocks.NewMockInventoryLookup(ctrl)
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket(webItem("p-1", 2), webItem("p-2", 1))
	out, err := v.Validate(context.Background(), basket, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() || out.Reason != domain.ReasonNone || !out.EnableCheckout {
		t.Fatalf("expected OK with checkout enabled, got %+v", out)
	}
	if out.Inventory != nil {
		t.Fatalf("inventory matrix must be empty without store shipments, got %v", out.Inventory)
	}
}

func TestCheckoutValidator_ProductFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *domain.Basket)
	}{
		{"null product", func(b *domain.Basket) { b.ProductLineItems[0].Product = nil }},
		{"offline product", func(b *domain.Basket) { b.ProductLineItems[0].Product.Online = false }},
		{"price unavailable", func(b *domain.Basket) { b.MerchandizeTotal.State = domain.ValuePending }},
		{"special channel via web", func(b *domain.Basket) {
			b.ProductLineItems[0].Product.SalesChannel = domain.SalesChannelSpecial
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

			basket := newBasket(webItem("p-1", 1))
			// купон тоже невалиден, но отказ по товару приоритетнее
			basket.CouponLineItems = []domain.CouponLineItem{{Code: "X", Valid: false}}
			tt.mutate(basket)

			out, err := v.Validate(context.Background(), basket, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Status != domain.StatusError || out.Reason != domain.ReasonNone {
				t.Fatalf("expected ERROR without reason, got %+v", out)
			}
		})
	}
}

func TestCheckoutValidator_WebAvailabilityShortage(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	li := webItem("p-1", 5)
	li.Product.Availability = domain.AvailabilityModel{ATS: 1, BackorderAllocation: 2}
	out, err := v.Validate(context.Background(), newBasket(li), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusError || out.Reason != domain.ReasonNone {
		t.Fatalf("expected ERROR without reason, got %+v", out)
	}
	if out.EnableCheckout {
		t.Fatalf("checkout must be blocked on web shortage")
	}
}

func TestCheckoutValidator_StoreInventory(t *testing.T) {
	tests := []struct {
		name       string
		sentinel   int
		available  int
		requested  int
		wantOK     bool
		wantMarker int
	}{
		{"sufficient", -100, 10, 2, true, domain.Available},
		{"exact amount", -100, 2, 2, true, domain.Available},
		{"shortage", -100, 1, 2, false, domain.Unavailable},
		{"limited stock sentinel", 5, 5, 1, false, domain.Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookup := mocks.NewMockInventoryLookup(ctrl)

			s := testSettings()
			s.LimitedStockSentinel = tt.sentinel
			v := newTestValidator(s, lookup, nil)

			basket := newBasket(webItem("p-1", 1))
			addPickup(basket, "pickup-1", "store-7", "p-2", tt.requested)

			lookup.EXPECT().
				Lookup(gomock.Any(), gomock.Any()).
				Return(domain.InventoryResponse{
					domain.InventoryKey("store-7", "p-2"): {Quantity: tt.available, Availability: 1},
				}, nil).
				Times(1)

			out, err := v.Validate(context.Background(), basket, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.OK() != tt.wantOK || out.EnableCheckout != tt.wantOK {
				t.Fatalf("unexpected outcome: %+v", out)
			}
			if !tt.wantOK && out.Reason != domain.ReasonNone {
				t.Fatalf("store shortage must not carry a reason, got %q", out.Reason)
			}

			rec := out.Inventory["store-7"]["p-2"]
			want := domain.InventoryRecord{Quantity: tt.available, Requested: tt.requested, Availability: tt.wantMarker}
			if rec != want {
				t.Fatalf("inventory record = %+v, want %+v", rec, want)
			}
		})
	}
}

func TestCheckoutValidator_StorePickupSkipsOnlineCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket()
	li := addPickup(basket, "pickup-1", "store-7", "p-1", 1)
	li.Product.Online = false
	li.Product.Availability = domain.AvailabilityModel{}

	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(domain.InventoryResponse{"store-7p-1": {Quantity: 3}}, nil)

	out, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() || !out.EnableCheckout {
		t.Fatalf("expected OK for store pickup, got %+v", out)
	}
}

func TestCheckoutValidator_DefaultStoreIDIsNotPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl) // вызовов быть не должно
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket()
	li := addPickup(basket, "ship-2", "me", "p-1", 1)
	li.Product = nil

	out, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusError || out.Reason != domain.ReasonNone {
		t.Fatalf("default store id must be treated as web shipment, got %+v", out)
	}
}

func TestCheckoutValidator_MissingInventoryKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket()
	addPickup(basket, "pickup-1", "store-7", "p-1", 1)
	addPickup(basket, "pickup-2", "store-8", "p-2", 1)

	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(domain.InventoryResponse{"store-7p-1": {Quantity: 3}}, nil)

	out, err := v.Validate(context.Background(), basket, false)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
	if out.Status != domain.StatusError || out.EnableCheckout {
		t.Fatalf("unexpected outcome on integrity error: %+v", out)
	}
}

func TestCheckoutValidator_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket()
	addPickup(basket, "pickup-1", "store-7", "p-1", 1)

	boom := errors.New("connection refused")
	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := v.Validate(context.Background(), basket, false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("transport failure must not be reported as integrity error")
	}
}

func TestCheckoutValidator_LookupDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)

	s := testSettings()
	s.InventoryLookupTimeout = 50 * time.Millisecond
	v := newTestValidator(s, lookup, nil)

	basket := newBasket()
	addPickup(basket, "pickup-1", "store-7", "p-1", 1)

	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.InventoryRequest) (domain.InventoryResponse, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("lookup context must carry a deadline")
			}
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := v.Validate(context.Background(), basket, false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCheckoutValidator_ClassDates(t *testing.T) {
	tests := []struct {
		name       string
		start      time.Time
		wantStatus domain.Status
		wantReason domain.Reason
	}{
		{"already started", testNow.Add(-time.Hour), domain.StatusError, domain.ReasonClassDate},
		{"starts now", testNow, domain.StatusError, domain.ReasonClassDate},
		{"in one hour", testNow.Add(time.Hour), domain.StatusError, domain.ReasonWithin48Hour},
		{"in 47 hours", testNow.Add(47 * time.Hour), domain.StatusError, domain.ReasonWithin48Hour},
		{"in exactly 48 hours", testNow.Add(48 * time.Hour), domain.StatusOK, domain.ReasonNone},
		{"in 72 hours", testNow.Add(72 * time.Hour), domain.StatusOK, domain.ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

			out, err := v.Validate(context.Background(), newBasket(classItem("class-1", tt.start)), false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Status != tt.wantStatus || out.Reason != tt.wantReason {
				t.Fatalf("got %s/%q, want %s/%q", out.Status, out.Reason, tt.wantStatus, tt.wantReason)
			}
			if out.EnableCheckout != (tt.wantStatus == domain.StatusOK) {
				t.Fatalf("unexpected enable checkout: %+v", out)
			}
		})
	}
}

func TestCheckoutValidator_ClassOutsideSpecialChannelIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	li := classItem("class-1", testNow.Add(-time.Hour))
	li.Product.SalesChannel = ""
	li.Attributes.ClassPayload = "not json at all"

	out, err := v.Validate(context.Background(), newBasket(li), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() {
		t.Fatalf("class outside channel S must not be checked, got %+v", out)
	}
}

func TestCheckoutValidator_MalformedClassPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	li := classItem("class-1", testNow.Add(72*time.Hour))
	li.Attributes.ClassPayload = classPayloadJSON("next tuesday")

	out, err := v.Validate(context.Background(), newBasket(li), false)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
	if out.Status != domain.StatusError {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestCheckoutValidator_QuantityLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	promotions := mocks.NewMockPromotionCatalog(ctrl)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), promotions)

	promotions.EXPECT().ActivePromotions(gomock.Any(), "p-1").Return([]domain.Promotion{
		{PromotionID: "promo-a", Attributes: map[string]any{domain.AttrMinQuantity: 2}},
		{PromotionID: "promo-b", Attributes: map[string]any{domain.AttrMinQuantity: float64(3)}},
		{PromotionID: "promo-broken", Attributes: map[string]any{"discount": 10}},
	}, nil)

	li := webItem("p-1", 1)
	out, err := v.Validate(context.Background(), newBasket(li), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusError || out.Reason != domain.ReasonQuantity {
		t.Fatalf("expected quantity-error, got %+v", out)
	}
	if li.MinOrderQuantity != 3 {
		t.Fatalf("min order quantity = %d, want 3", li.MinOrderQuantity)
	}
}

func TestCheckoutValidator_MaxQuantity(t *testing.T) {
	tests := []struct {
		name      string
		ignoreMax bool
		wantOK    bool
	}{
		{"max enforced", false, false},
		{"max ignored by site setting", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			promotions := mocks.NewMockPromotionCatalog(ctrl)
			promotions.EXPECT().ActivePromotions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			s := testSettings()
			s.IgnoreMaxQuantity = tt.ignoreMax
			v := newTestValidator(s, mocks.NewMockInventoryLookup(ctrl), promotions)

			li := webItem("p-1", 6)
			li.Product.MaxOrderQuantity = 5

			out, err := v.Validate(context.Background(), newBasket(li), false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.OK() != tt.wantOK {
				t.Fatalf("unexpected outcome: %+v", out)
			}
			if !tt.wantOK && out.Reason != domain.ReasonQuantity {
				t.Fatalf("expected quantity-error, got %q", out.Reason)
			}
		})
	}
}

func TestCheckoutValidator_PromotionCatalogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	promotions := mocks.NewMockPromotionCatalog(ctrl)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), promotions)

	boom := errors.New("catalog down")
	promotions.EXPECT().ActivePromotions(gomock.Any(), "p-1").Return(nil, boom)

	_, err := v.Validate(context.Background(), newBasket(webItem("p-1", 1)), false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected catalog error, got %v", err)
	}
}

func TestCheckoutValidator_InvalidCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	basket := newBasket(webItem("p-1", 1))
	basket.CouponLineItems = []domain.CouponLineItem{{Code: "OK10", Valid: true}, {Code: "EXPIRED", Valid: false}}
	basket.TotalTax.State = domain.ValueError

	out, err := v.Validate(context.Background(), basket, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// купон приоритетнее налога
	if out.Status != domain.StatusError || out.Reason != domain.ReasonCoupon {
		t.Fatalf("expected coupon-error, got %+v", out)
	}
}

func TestCheckoutValidator_EmptyBasket(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	basket := newBasket()
	basket.TotalTax.State = domain.ValuePending

	out, err := v.Validate(context.Background(), basket, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() || out.Reason != domain.ReasonNone || out.EnableCheckout {
		t.Fatalf("expected OK with checkout blocked, got %+v", out)
	}
}

func TestCheckoutValidator_GiftCertificateOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

	basket := newBasket()
	basket.GiftCertificateLineItems = []domain.GiftCertificateLineItem{{GiftCertificateID: "gc-1"}}

	out, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() || !out.EnableCheckout {
		t.Fatalf("gift certificate basket must pass, got %+v", out)
	}
}

func TestCheckoutValidator_Tax(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.ValueState
		required bool
		want     domain.Reason
	}{
		{"pending and required", domain.ValuePending, true, domain.ReasonTax},
		{"error and required", domain.ValueError, true, domain.ReasonTax},
		{"pending not required", domain.ValuePending, false, domain.ReasonNone},
		{"available and required", domain.ValueAvailable, true, domain.ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

			basket := newBasket(webItem("p-1", 1))
			basket.TotalTax.State = tt.state

			out, err := v.Validate(context.Background(), basket, tt.required)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Reason != tt.want || out.OK() != (tt.want == domain.ReasonNone) {
				t.Fatalf("unexpected outcome: %+v", out)
			}
		})
	}
}

func TestCheckoutValidator_POBox(t *testing.T) {
	tests := []struct {
		name    string
		address *domain.Address
		mutate  func(li *domain.ProductLineItem)
		want    domain.Reason
	}{
		{"hazardous to PO box", &domain.Address{Address1: "PO Box 123"},
			func(li *domain.ProductLineItem) { li.Attributes.Hazardous = true }, domain.ReasonPOBox},
		{"drop-ship to P.O. box", &domain.Address{Address1: "p.o. box 9"},
			func(li *domain.ProductLineItem) { li.Attributes.SourceChannel = domain.SourceChannelDropShip }, domain.ReasonPOBox},
		{"regular goods to PO box", &domain.Address{Address1: "PO Box 123"},
			func(*domain.ProductLineItem) {}, domain.ReasonNone},
		{"hazardous to street address", &domain.Address{Address1: "12 Pool St"},
			func(li *domain.ProductLineItem) { li.Attributes.Hazardous = true }, domain.ReasonNone},
		{"hazardous class item to PO box", &domain.Address{Address1: "PO Box 123"},
			func(li *domain.ProductLineItem) {
				li.Attributes.Hazardous = true
				li.Attributes.ProductType = domain.ProductTypeClass
			}, domain.ReasonNone},
		{"no address", nil,
			func(li *domain.ProductLineItem) { li.Attributes.Hazardous = true }, domain.ReasonNone},
		{"empty address line", &domain.Address{City: "Springfield"},
			func(li *domain.ProductLineItem) { li.Attributes.Hazardous = true }, domain.ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), nil)

			li := webItem("p-1", 1)
			tt.mutate(li)
			basket := newBasket(li)
			basket.Shipments[0].ShippingAddress = tt.address

			out, err := v.Validate(context.Background(), basket, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Reason != tt.want || out.OK() != (tt.want == domain.ReasonNone) {
				t.Fatalf("unexpected outcome: %+v", out)
			}
			if tt.want == domain.ReasonPOBox && out.EnableCheckout {
				t.Fatalf("PO box mismatch must block checkout")
			}
		})
	}
}

func TestCheckoutValidator_POBoxChecksAllShipments(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	v := newTestValidator(testSettings(), lookup, nil)

	basket := newBasket(webItem("p-1", 1))
	basket.Shipments[0].ShippingAddress.Address1 = "Post Office Box 77"
	li := addPickup(basket, "pickup-1", "store-7", "p-2", 1)
	li.Attributes.Hazardous = true

	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(domain.InventoryResponse{"store-7p-2": {Quantity: 10}}, nil)

	out, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reason != domain.ReasonPOBox {
		t.Fatalf("expected pobox-error, got %+v", out)
	}
}

func TestCheckoutValidator_Precedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	promotions := mocks.NewMockPromotionCatalog(ctrl)
	promotions.EXPECT().ActivePromotions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	v := newTestValidator(testSettings(), mocks.NewMockInventoryLookup(ctrl), promotions)

	// прошедшее занятие + превышение максимума + невалидный купон + PO box
	class := classItem("class-1", testNow.Add(-2*time.Hour))
	tooMany := webItem("p-1", 10)
	tooMany.Product.MaxOrderQuantity = 2
	tooMany.Attributes.Hazardous = true

	basket := newBasket(class, tooMany)
	basket.CouponLineItems = []domain.CouponLineItem{{Code: "BAD"}}
	basket.Shipments[0].ShippingAddress.Address1 = "PO Box 1"

	out, err := v.Validate(context.Background(), basket, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reason != domain.ReasonClassDate {
		t.Fatalf("class date must win, got %q", out.Reason)
	}
	// флаг накоплен всеми правилами
	if out.EnableCheckout {
		t.Fatalf("checkout must be blocked")
	}
}

func TestCheckoutValidator_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	promotions := mocks.NewMockPromotionCatalog(ctrl)
	v := newTestValidator(testSettings(), lookup, promotions)

	promotions.EXPECT().ActivePromotions(gomock.Any(), gomock.Any()).Return([]domain.Promotion{
		{PromotionID: "promo-a", Attributes: map[string]any{domain.AttrMinQuantity: "2"}},
	}, nil).AnyTimes()
	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		Return(domain.InventoryResponse{"store-7p-2": {Quantity: 1}}, nil).
		Times(2)

	basket := newBasket(webItem("p-1", 2))
	addPickup(basket, "pickup-1", "store-7", "p-2", 2)

	first, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := v.Validate(context.Background(), basket, false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("outcomes differ: %+v vs %+v", first, second)
	}
	for _, li := range basket.ProductLineItems {
		if li.MinOrderQuantity != 2 {
			t.Fatalf("min order quantity = %d, want 2", li.MinOrderQuantity)
		}
	}
}

func TestCheckoutValidator_BasketInventoryStrategy(t *testing.T) {
	tests := []struct {
		name   string
		result bool
		wantOK bool
	}{
		{"checker accepts", true, true},
		{"checker rejects", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checker := mocks.NewMockBasketInventoryChecker(ctrl)

			s := testSettings()
			s.InventoryStrategy = StrategyBasket
			evaluator, err := NewInventoryEvaluator(s, nil, checker)
			if err != nil {
				t.Fatalf("new evaluator: %v", err)
			}
			v := NewCheckoutValidator(s, evaluator, nil, WithClock(func() time.Time { return testNow }))

			basket := newBasket(webItem("p-1", 1))
			checker.EXPECT().CheckBasket(gomock.Any(), basket).Return(tt.result, nil)

			out, err := v.Validate(context.Background(), basket, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.OK() != tt.wantOK || out.EnableCheckout != tt.wantOK {
				t.Fatalf("unexpected outcome: %+v", out)
			}
		})
	}
}

func TestNewInventoryEvaluator(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockInventoryLookup(ctrl)
	checker := mocks.NewMockBasketInventoryChecker(ctrl)

	s := testSettings()
	got, err := NewInventoryEvaluator(s, lookup, checker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(*StoreInventoryEvaluator); !ok {
		t.Fatalf("store strategy expected, got %T", got)
	}

	s.InventoryStrategy = StrategyBasket
	got, err = NewInventoryEvaluator(s, lookup, checker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(*BasketInventoryEvaluator); !ok {
		t.Fatalf("basket strategy expected, got %T", got)
	}

	if _, err := NewInventoryEvaluator(s, lookup, nil); err == nil {
		t.Fatalf("expected error for missing checker")
	}
	s.InventoryStrategy = "warehouse"
	if _, err := NewInventoryEvaluator(s, lookup, checker); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestCheckoutValidator_BasketStrategyErrors(t *testing.T) {
	t.Run("integrity error is not a shortage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockBasketInventoryChecker(ctrl)

		s := testSettings()
		s.InventoryStrategy = StrategyBasket
		v := NewCheckoutValidator(s, NewBasketInventoryEvaluator(checker, s), nil,
			WithClock(func() time.Time { return testNow }))

		basket := newBasket(webItem("p-1", 1))
		checker.EXPECT().CheckBasket(gomock.Any(), basket).
			Return(false, fmt.Errorf("%w: no inventory for store=store-7 product=p-1", ErrDataIntegrity))

		out, err := v.Validate(context.Background(), basket, false)
		if !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("want ErrDataIntegrity, got out=%+v err=%v", out, err)
		}
	})

	t.Run("check runs under lookup deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := mocks.NewMockBasketInventoryChecker(ctrl)

		s := testSettings()
		s.InventoryStrategy = StrategyBasket
		s.InventoryLookupTimeout = 50 * time.Millisecond
		v := NewCheckoutValidator(s, NewBasketInventoryEvaluator(checker, s), nil,
			WithClock(func() time.Time { return testNow }))

		checker.EXPECT().CheckBasket(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *domain.Basket) (bool, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Errorf("basket check context must carry a deadline")
				}
				<-ctx.Done()
				return false, ctx.Err()
			})

		_, err := v.Validate(context.Background(), newBasket(webItem("p-1", 1)), false)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})
}
