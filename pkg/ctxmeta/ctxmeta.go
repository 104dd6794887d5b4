// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, basket_id, trace_id).
// HTTP-слой, консьюмер и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyBasketID  ctxKey = "basket_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyRequestID)
}

// WithBasketID кладёт basket_id проверяемой корзины в контекст.
func WithBasketID(ctx context.Context, basketID string) context.Context {
	return withValue(ctx, KeyBasketID, basketID)
}

// BasketIDFromContext достаёт basket_id из контекста.
func BasketIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyBasketID)
}

func withValue(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func valueOf(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
