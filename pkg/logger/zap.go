package logger

import (
	"context"

	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/pkg/ctxmeta"
	"go.uber.org/zap"
)

// Проверка, что ZapLogger удовлетворяет интерфейсу ports.Logger.
var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger — реализация ports.Logger поверх zap.
// Метаданные запроса из контекста (request_id, basket_id, trace_id, span_id)
// добавляются к записи структурированными полями.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — конструктор; возвращает логгер и функцию Sync для завершения.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := newFromZap(logger, isProd)

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

func newFromZap(logger *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

// withContext — sugared-логгер с полями из контекста (без аллокаций, если полей нет).
func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}

	var fields []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if bid, ok := ctxmeta.BasketIDFromContext(ctx); ok {
		fields = append(fields, "basket_id", bid)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tid)
	}
	if sid, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", sid)
	}

	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
