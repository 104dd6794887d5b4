package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/ctxmeta"
)

const (
	lookupPath      = "/inventory/lookup"
	basketCheckPath = "/inventory/basket"

	maxResponseBytes = 4 << 20
)

// HTTPClient — клиент внешнего сервиса остатков магазинов.
// Реализует и пакетный запрос остатков, и проверку корзины целиком.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var (
	_ ports.InventoryLookup        = (*HTTPClient)(nil)
	_ ports.BasketInventoryChecker = (*HTTPClient)(nil)
)

// NewHTTPClient — клиент с трассировкой исходящих запросов.
// timeout ограничивает весь запрос; дедлайн вызова задаётся контекстом.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Lookup — POST {stores:[{storeId, products}]} → {storeId+productId: {quantity, availability}}.
func (c *HTTPClient) Lookup(ctx context.Context, req domain.InventoryRequest) (domain.InventoryResponse, error) {
	var resp domain.InventoryResponse
	if err := c.post(ctx, lookupPath, req, &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = domain.InventoryResponse{}
	}
	return resp, nil
}

type basketCheckResponse struct {
	Valid bool `json:"valid"`
}

// CheckBasket — POST корзины во внешний валидатор остатков → {valid}.
func (c *HTTPClient) CheckBasket(ctx context.Context, basket *domain.Basket) (bool, error) {
	var resp basketCheckResponse
	if err := c.post(ctx, basketCheckPath, basket, &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLookupFailed, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: status %d: %s", ErrLookupFailed, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode: %w", ErrLookupFailed, path, err)
	}
	return nil
}
